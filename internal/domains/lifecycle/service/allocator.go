package service

import (
	"context"
	"fmt"
	"petstay/config"
	"petstay/infras/otel"
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/internal/domains/lifecycle/repository"
	roomModel "petstay/internal/domains/room/model"
	"petstay/shared/constant"
	"petstay/shared/failure"

	"github.com/rs/zerolog/log"
)

const systemUser = "system"

// Allocator picks a candidate room for a check-in. The pick is only a candidate: the
// commit that follows decides whether it is still free.
type Allocator interface {
	Allocate(ctx context.Context, category bookingModel.Category) (roomModel.Room, error)
}

type allocatorImpl struct {
	store repository.Store
	cfg   *config.Config
	otel  otel.Otel
}

func NewAllocator(store repository.Store, cfg *config.Config, otel otel.Otel) Allocator {
	return &allocatorImpl{
		store: store,
		cfg:   cfg,
		otel:  otel,
	}
}

// Allocate returns the free room with the lowest number. An empty room table is seeded
// with the default inventory once, then scanned again.
func (a *allocatorImpl) Allocate(ctx context.Context, category bookingModel.Category) (room roomModel.Room, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Allocate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	rooms, err := a.store.FindFreeRooms(ctx, string(category))
	if err != nil {
		log.Error().Err(err).Str("category", string(category)).Msg("failed to scan free rooms")

		return room, fmt.Errorf("failed to scan free rooms: %w", err)
	}

	if len(rooms) == 0 {
		rooms, err = a.reseed(ctx, category)
		if err != nil {
			return room, err
		}
	}

	if len(rooms) == 0 {
		return room, failure.NoRoomAvailable(fmt.Sprintf("no %s rooms available", category)) // nolint:wrapcheck
	}

	return rooms[0], nil
}

func (a *allocatorImpl) reseed(ctx context.Context, category bookingModel.Category) ([]roomModel.Room, error) {
	total, err := a.store.CountRooms(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}

	if total > 0 {
		return nil, nil
	}

	created, err := a.store.SeedRooms(ctx, roomModel.Inventory(roomModel.Layouts(a.cfg), systemUser))
	if err != nil {
		log.Error().Err(err).Msg("failed to seed rooms")

		return nil, fmt.Errorf("failed to seed rooms: %w", err)
	}

	log.Info().Int("created", created).Msg("room table was empty, seeded default inventory")

	rooms, err := a.store.FindFreeRooms(ctx, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to scan free rooms: %w", err)
	}

	return rooms, nil
}
