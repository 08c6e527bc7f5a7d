package event_test

import (
	"context"
	"errors"
	statsDto "petstay/internal/domains/stats/model/dto"
	statsMocks "petstay/internal/domains/stats/mocks"
	"petstay/internal/events"
	eventMocks "petstay/internal/events/mocks"
	"petstay/transport/event"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConsumer_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(bus *eventMocks.MockBus, stats *statsMocks.MockStats)
		wantErr   bool
	}{
		{
			name: "warms snapshot then dispatches events",
			setupMock: func(bus *eventMocks.MockBus, stats *statsMocks.MockStats) {
				gomock.InOrder(
					stats.EXPECT().Publish(gomock.Any()).Return(statsDto.Snapshot{}, nil),
					bus.EXPECT().Subscribe(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, handler events.Handler) error {
						handler(ctx, events.Event{ID: "E1", Type: events.BookingCheckedIn, BookingID: "B1"})

						return nil
					}),
				)
				stats.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e events.Event) {
					assert.Equal(t, "B1", e.BookingID)
				})
			},
		},
		{
			name: "initial snapshot failure is not fatal",
			setupMock: func(bus *eventMocks.MockBus, stats *statsMocks.MockStats) {
				stats.EXPECT().Publish(gomock.Any()).Return(statsDto.Snapshot{}, errors.New("redis down"))
				bus.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(context.Canceled)
			},
		},
		{
			name: "broker failure",
			setupMock: func(bus *eventMocks.MockBus, stats *statsMocks.MockStats) {
				stats.EXPECT().Publish(gomock.Any()).Return(statsDto.Snapshot{}, nil)
				bus.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bus := eventMocks.NewMockBus(ctrl)
			stats := statsMocks.NewMockStats(ctrl)

			tt.setupMock(bus, stats)

			err := event.New(bus, stats).Run(context.Background())
			if tt.wantErr {
				assert.ErrorContains(t, err, "failed to consume booking events")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
