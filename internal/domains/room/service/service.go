package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"petstay/config"
	"petstay/infras/otel"
	"petstay/internal/domains/room/model"
	"petstay/internal/domains/room/model/dto"
	"petstay/internal/domains/room/repository"
	"petstay/shared"
	"petstay/shared/cache"
	"petstay/shared/constant"
	gDto "petstay/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheAvailability = model.CachePrefix + ":availability"

	seedUser = "system"
)

type Room interface {
	Availability(ctx context.Context) (dto.AvailabilityResponse, error)
	Seed(ctx context.Context) (dto.SeedResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Availability counts free rooms per pet type. An empty room table is seeded first.
func (s *serviceImpl) Availability(ctx context.Context) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Availability")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.cache.Get(ctx, cacheAvailability, &res); err == nil {
		log.Info().Str("cacheKey", cacheAvailability).Msg("cache hit for room availability")

		return res, nil
	}

	rooms, err := s.list(ctx)
	if err != nil {
		return res, err
	}

	if len(rooms) == 0 {
		log.Info().Msg("no rooms found, seeding default inventory")

		if _, err = s.seed(ctx); err != nil {
			return res, err
		}

		if rooms, err = s.list(ctx); err != nil {
			return res, err
		}
	}

	res.FromModels(rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheAvailability, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room availability to cache")
		}
	}()

	return res, nil
}

// Seed creates the configured default rooms. Room numbers already present are kept as they are.
func (s *serviceImpl) Seed(ctx context.Context) (res dto.SeedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Seed")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if user == constant.Empty {
		user = seedUser
	}

	inventory := model.Inventory(model.Layouts(s.cfg), user)

	created, err := s.repo.InsertMissing(ctx, inventory)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed rooms")

		return res, fmt.Errorf("failed to seed rooms: %w", err)
	}

	log.Info().Int("created", created).Int("inventory", len(inventory)).Msg("rooms seeded")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CachePrefix)
	}()

	res.Created = created
	res.Total = len(inventory)

	return res, nil
}

func (s *serviceImpl) seed(ctx context.Context) (int, error) {
	res, err := s.Seed(ctx)

	return res.Created, err
}

func (s *serviceImpl) list(ctx context.Context) ([]model.Room, error) {
	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldRoomNumber,
		SortDir: gDto.SortDirAsc,
	}

	rooms, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return rooms, nil
}
