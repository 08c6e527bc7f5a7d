package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"petstay/config"
	"petstay/infras/otel/mocks"
	bookingMocks "petstay/internal/domains/booking/mocks"
	bookingModel "petstay/internal/domains/booking/model"
	roomMocks "petstay/internal/domains/room/mocks"
	roomModel "petstay/internal/domains/room/model"
	"petstay/internal/domains/stats/model/dto"
	"petstay/internal/domains/stats/service"
	"petstay/internal/events"
	cacheMocks "petstay/shared/cache/mocks"
	"petstay/shared/timezone"
)

type fixture struct {
	bookings *bookingMocks.MockBooking
	rooms    *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
	svc      service.Stats
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Stats.Channel = "petstay:admin:stats"

	f := fixture{
		bookings: bookingMocks.NewMockBooking(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.bookings, f.rooms, f.cache, cfg, mocks.NewOtel())

	return f
}

func date(t *testing.T, value string) time.Time {
	t.Helper()

	d, err := timezone.ParseDate(value)
	require.NoError(t, err)

	return d
}

func (f fixture) expectScans(t *testing.T) {
	t.Helper()

	today := date(t, timezone.Today())

	f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{
		{RoomNumber: "D101", PetType: "Dog", Occupied: true},
		{RoomNumber: "D102", PetType: "Dog"},
		{RoomNumber: "C201", PetType: "Cat"},
	}, nil)

	f.bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), bookingModel.FieldPetSpecies, bookingModel.FieldCheckInDate).
		Return([]bookingModel.Booking{
			{PetSpecies: "Dog", CheckInDate: today},
			{PetSpecies: "Dog", CheckInDate: date(t, "2025-01-10")},
			{PetSpecies: "Cat", CheckInDate: today},
			{PetSpecies: "", CheckInDate: date(t, "2025-01-10")},
		}, nil)
}

func TestStatsService_Compute(t *testing.T) {
	f := newFixture(t)
	f.expectScans(t)

	res, err := f.svc.Compute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentGuests)
	assert.Equal(t, 2, res.AvailableRooms)
	assert.Equal(t, dto.Occupancy{Occupied: 1, Total: 2}, res.Occupancy["Dog"])
	assert.Equal(t, dto.Occupancy{Occupied: 0, Total: 1}, res.Occupancy["Cat"])
	assert.Equal(t, map[string]int{"Dog": 2, "Cat": 1, "Unknown": 1}, res.PetSpecies)
	assert.Equal(t, 2, res.BookingTrendPoint)
	assert.NotEmpty(t, res.ComputedAt)
}

func TestStatsService_Publish(t *testing.T) {
	t.Run("pushes the snapshot to the channel", func(t *testing.T) {
		f := newFixture(t)
		f.expectScans(t)

		f.cache.EXPECT().Save(gomock.Any(), "stats:latest", gomock.Any(), 0).Return(nil)
		f.cache.EXPECT().
			Publish(gomock.Any(), "petstay:admin:stats", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, message any) error {
				telemetry, ok := message.(dto.Telemetry)
				require.True(t, ok)
				assert.Equal(t, "bookingUpdate", telemetry.Metric)
				assert.Equal(t, 1, telemetry.Value.CurrentGuests)

				return nil
			})

		_, err := f.svc.Publish(context.Background())

		assert.NoError(t, err)
	})

	t.Run("channel failure is returned", func(t *testing.T) {
		f := newFixture(t)
		f.expectScans(t)

		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		f.cache.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		_, err := f.svc.Publish(context.Background())

		assert.Error(t, err)
	})

	t.Run("scan failure publishes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := f.svc.Publish(context.Background())

		assert.Error(t, err)
	})
}

func TestStatsService_Latest(t *testing.T) {
	t.Run("cached snapshot", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "stats:latest", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				snapshot, _ := value.(*dto.Snapshot)
				snapshot.CurrentGuests = 7

				return nil
			})

		res, err := f.svc.Latest(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 7, res.CurrentGuests)
	})

	t.Run("falls back to a fresh computation", func(t *testing.T) {
		f := newFixture(t)
		f.expectScans(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))

		res, err := f.svc.Latest(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, res.CurrentGuests)
	})
}

func TestStatsService_Trend(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{
			{CheckInDate: date(t, "2025-03-02")},
			{CheckInDate: date(t, "2025-03-01")},
			{CheckInDate: date(t, "2025-03-02")},
			{},
		}, nil)

	res, err := f.svc.Trend(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []dto.TrendPoint{
		{Time: "2025-03-01", Count: 1},
		{Time: "2025-03-02", Count: 2},
	}, res)
}

func TestStatsService_HandleEvent(t *testing.T) {
	f := newFixture(t)
	f.expectScans(t)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	f.svc.HandleEvent(context.Background(), events.Event{ID: "e1", Type: events.BookingCheckedIn, BookingID: "B1"})
}
