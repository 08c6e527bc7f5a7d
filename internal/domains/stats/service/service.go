package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"maps"
	"petstay/config"
	"petstay/infras/otel"
	bookingModel "petstay/internal/domains/booking/model"
	bookingRepo "petstay/internal/domains/booking/repository"
	roomRepo "petstay/internal/domains/room/repository"
	"petstay/internal/domains/stats/model/dto"
	"petstay/internal/events"
	"petstay/shared/cache"
	"petstay/shared/constant"
	gDto "petstay/shared/dto"
	"petstay/shared/timezone"
	"slices"

	"github.com/rs/zerolog/log"
)

const (
	cacheLatest = "stats:latest"

	unknownSpecies = "Unknown"
)

type Stats interface {
	Compute(ctx context.Context) (dto.Snapshot, error)
	Publish(ctx context.Context) (dto.Snapshot, error)
	Latest(ctx context.Context) (dto.Snapshot, error)
	Trend(ctx context.Context) ([]dto.TrendPoint, error)
	HandleEvent(ctx context.Context, event events.Event)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	rooms    roomRepo.Room
	cache    cache.RedisCache
	cfg      *config.Config
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, rooms roomRepo.Room, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Stats {
	return &serviceImpl{
		bookings: bookings,
		rooms:    rooms,
		cache:    cache,
		cfg:      cfg,
		otel:     otel,
	}
}

// Compute scans rooms and bookings and folds them into one dashboard snapshot.
func (s *serviceImpl) Compute(ctx context.Context) (res dto.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stats.Compute")
	defer scope.End()
	defer scope.TraceIfError(&err)

	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to scan rooms")

		return res, fmt.Errorf("failed to scan rooms: %w", err)
	}

	bookings, err := s.scanBookings(ctx)
	if err != nil {
		return res, err
	}

	res.Occupancy = map[string]dto.Occupancy{}
	res.PetSpecies = map[string]int{}

	for _, room := range rooms {
		occupancy := res.Occupancy[room.PetType]
		occupancy.Total++

		if room.Occupied {
			occupancy.Occupied++
			res.CurrentGuests++
		} else {
			res.AvailableRooms++
		}

		res.Occupancy[room.PetType] = occupancy
	}

	today := timezone.Today()

	for _, booking := range bookings {
		species := booking.PetSpecies
		if species == constant.Empty {
			species = unknownSpecies
		}

		res.PetSpecies[species]++

		if timezone.FormatDate(booking.CheckInDate) == today {
			res.BookingTrendPoint++
		}
	}

	res.ComputedAt = timezone.Format(timezone.Now(), constant.DateFormat)

	return res, nil
}

// Publish recomputes the snapshot, stores it as the latest and pushes it to the stats channel.
func (s *serviceImpl) Publish(ctx context.Context) (res dto.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stats.Publish")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.Compute(ctx)
	if err != nil {
		return res, err
	}

	if err = s.cache.Save(ctx, cacheLatest, res, 0); err != nil {
		log.Error().Err(err).Msg("failed to keep latest stats snapshot")
	}

	err = s.cache.Publish(ctx, s.cfg.Stats.Channel, dto.Telemetry{Metric: dto.MetricBookingUpdate, Value: res})
	if err != nil {
		log.Error().Err(err).Str("channel", s.cfg.Stats.Channel).Msg("failed to publish stats")

		return res, fmt.Errorf("failed to publish stats: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Latest(ctx context.Context) (res dto.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stats.Latest")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.cache.Get(ctx, cacheLatest, &res); err == nil {
		return res, nil
	}

	return s.Compute(ctx)
}

// Trend counts bookings per planned check-in date, oldest date first.
func (s *serviceImpl) Trend(ctx context.Context) (res []dto.TrendPoint, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stats.Trend")
	defer scope.End()
	defer scope.TraceIfError(&err)

	bookings, err := s.scanBookings(ctx)
	if err != nil {
		return nil, err
	}

	perDay := map[string]int{}

	for _, booking := range bookings {
		if booking.CheckInDate.IsZero() {
			continue
		}

		perDay[timezone.FormatDate(booking.CheckInDate)]++
	}

	res = []dto.TrendPoint{}
	for _, day := range slices.Sorted(maps.Keys(perDay)) {
		res = append(res, dto.TrendPoint{Time: day, Count: perDay[day]})
	}

	return res, nil
}

// HandleEvent refreshes the dashboard on any booking event. Replays only cause a recompute.
func (s *serviceImpl) HandleEvent(ctx context.Context, event events.Event) {
	log.Info().
		Str("type", string(event.Type)).
		Str("booking_id", event.BookingID).
		Msg("refreshing stats")

	if _, err := s.Publish(ctx); err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Msg("failed to refresh stats")
	}
}

func (s *serviceImpl) scanBookings(ctx context.Context) ([]bookingModel.Booking, error) {
	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, bookingModel.FieldPetSpecies, bookingModel.FieldCheckInDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to scan bookings")

		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}

	return bookings, nil
}
