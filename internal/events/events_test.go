package events_test

import (
	"context"
	"errors"
	"petstay/config"
	"petstay/infras/kafka"
	kafkaMocks "petstay/infras/kafka/mocks"
	otelMocks "petstay/infras/otel/mocks"
	rabbitMocks "petstay/infras/rabbitmq/mocks"
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/internal/events"
	eventMocks "petstay/internal/events/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConfig(driver string) *config.Config {
	cfg := &config.Config{}
	cfg.Events.Driver = driver
	cfg.Events.Topic = "petstay.booking.events"
	cfg.Events.Source = "PetStay.Booking"

	return cfg
}

func checkedIn() bookingModel.Booking {
	return bookingModel.Booking{
		ID:         "B1",
		OwnerName:  "Alice",
		Status:     bookingModel.StatusCheckedIn,
		RoomNumber: "D101",
	}
}

func TestNew(t *testing.T) {
	event := events.New("PetStay.Booking", events.BookingCheckedIn, checkedIn())

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, events.BookingCheckedIn, event.Type)
	assert.Equal(t, "PetStay.Booking", event.Source)
	assert.Equal(t, "B1", event.BookingID)
	assert.Equal(t, "Checked-In", event.Status)
	assert.Equal(t, "D101", event.RoomNumber)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestKafkaBusPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	rabbitClient := rabbitMocks.NewMockClient(ctrl)

	event := events.New("PetStay.Booking", events.BookingConfirmed, checkedIn())

	kafkaClient.EXPECT().
		SendMessages(gomock.Any(), "petstay.booking.events", kafka.Message{Key: "B1", Value: event}).
		Return(nil)

	bus := events.NewBus(newConfig(events.DriverKafka), kafkaClient, rabbitClient)

	assert.NoError(t, bus.Publish(context.Background(), event))
}

func TestRabbitBusPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	rabbitClient := rabbitMocks.NewMockClient(ctrl)

	event := events.New("PetStay.Booking", events.BookingCheckedOut, checkedIn())

	rabbitClient.EXPECT().PublishJSON(gomock.Any(), "BookingCheckedOut", event).Return(nil)

	bus := events.NewBus(newConfig(events.DriverRabbitMQ), kafkaClient, rabbitClient)

	assert.NoError(t, bus.Publish(context.Background(), event))
}

func TestEmitterSwallowsFailures(t *testing.T) {
	tests := []struct {
		name       string
		publishErr error
	}{
		{name: "published"},
		{name: "broker down", publishErr: errors.New("broker down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bus := eventMocks.NewMockBus(ctrl)

			bus.EXPECT().
				Publish(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, event events.Event) error {
					assert.NoError(t, ctx.Err())
					assert.Equal(t, events.BookingCheckedIn, event.Type)
					assert.Equal(t, "PetStay.Booking", event.Source)

					return tt.publishErr
				})

			emitter := events.NewEmitter(bus, newConfig(events.DriverKafka), otelMocks.NewOtel())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			emitter.Emit(ctx, events.BookingCheckedIn, checkedIn())
		})
	}
}
