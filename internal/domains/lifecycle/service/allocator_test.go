package service_test

import (
	"context"
	"errors"
	otelMocks "petstay/infras/otel/mocks"
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/internal/domains/lifecycle/mocks"
	"petstay/internal/domains/lifecycle/service"
	roomModel "petstay/internal/domains/room/model"
	"petstay/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAllocator_Allocate(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(store *mocks.MockStore)
		want      string
		reason    string
	}{
		{
			name: "first free room",
			setupMock: func(store *mocks.MockStore) {
				store.EXPECT().FindFreeRooms(gomock.Any(), "Dog").Return([]roomModel.Room{newRoom("D102", "Dog"), newRoom("D105", "Dog")}, nil)
			},
			want: "D102",
		},
		{
			name: "empty table is seeded once",
			setupMock: func(store *mocks.MockStore) {
				gomock.InOrder(
					store.EXPECT().FindFreeRooms(gomock.Any(), "Cat").Return(nil, nil),
					store.EXPECT().CountRooms(gomock.Any()).Return(0, nil),
					store.EXPECT().
						SeedRooms(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, rooms []roomModel.Room) (int, error) {
							assert.Len(t, rooms, 20)
							assert.Equal(t, "D101", rooms[0].RoomNumber)
							assert.Equal(t, "C201", rooms[10].RoomNumber)

							return len(rooms), nil
						}),
					store.EXPECT().FindFreeRooms(gomock.Any(), "Cat").Return([]roomModel.Room{newRoom("C201", "Cat")}, nil),
				)
			},
			want: "C201",
		},
		{
			name: "full inventory",
			setupMock: func(store *mocks.MockStore) {
				store.EXPECT().FindFreeRooms(gomock.Any(), "Dog").Return([]roomModel.Room{}, nil)
				store.EXPECT().CountRooms(gomock.Any()).Return(20, nil)
			},
			reason: failure.ReasonNoRoomAvailable,
		},
		{
			name: "scan failure",
			setupMock: func(store *mocks.MockStore) {
				store.EXPECT().FindFreeRooms(gomock.Any(), "Dog").Return(nil, errors.New("timeout"))
			},
			reason: failure.ReasonInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStore(ctrl)
			tt.setupMock(store)

			category := bookingModel.CategoryDog
			if tt.want == "C201" {
				category = bookingModel.CategoryCat
			}

			room, err := service.NewAllocator(store, newConfig(), otelMocks.NewOtel()).Allocate(context.Background(), category)

			if tt.reason != "" {
				assert.Equal(t, tt.reason, failure.GetReason(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, room.RoomNumber)
		})
	}
}
