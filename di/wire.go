//go:build wireinject
// +build wireinject

package di

import (
	"petstay/config"
	"petstay/infras/jwt"
	"petstay/infras/kafka"
	"petstay/infras/otel"
	"petstay/infras/postgres"
	"petstay/infras/rabbitmq"
	"petstay/infras/redis"
	"petstay/infras/s3"
	"petstay/infras/ses"
	"petstay/internal/events"
	"petstay/internal/notification"
	"petstay/internal/visualtoken"
	"petstay/permissions"
	"petstay/shared/cache"
	gRepository "petstay/shared/repository"
	"petstay/transport/event"
	"petstay/transport/http"
	"petstay/transport/http/middleware"
	"petstay/transport/http/router"

	bookingRepository "petstay/internal/domains/booking/repository"
	bookingService "petstay/internal/domains/booking/service"
	lifecycleRepository "petstay/internal/domains/lifecycle/repository"
	lifecycleService "petstay/internal/domains/lifecycle/service"
	roomRepository "petstay/internal/domains/room/repository"
	roomService "petstay/internal/domains/room/service"
	statsService "petstay/internal/domains/stats/service"

	bookingHandler "petstay/internal/handlers/booking"
	healthHandler "petstay/internal/handlers/health"
	lifecycleHandler "petstay/internal/handlers/lifecycle"
	roomHandler "petstay/internal/handlers/room"
	statsHandler "petstay/internal/handlers/stats"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	ses.New,
	kafka.New,
	rabbitmq.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	gRepository.NewTransactor,
	permissions.NewPolicy,
	visualtoken.New,
	notification.New,
	events.NewBus,
	events.NewEmitter,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var lifecycleDomain = wire.NewSet(
	lifecycleRepository.New,
	lifecycleService.NewAllocator,
	lifecycleService.NewCoordinator,
	lifecycleService.New,
)

var statsDomain = wire.NewSet(
	statsService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	roomDomain,
	lifecycleDomain,
	statsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	bookingHandler.New,
	lifecycleHandler.New,
	roomHandler.New,
	statsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeStatsConsumer() *event.Consumer {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		bookingRepository.New,
		roomRepository.New,
		statsDomain,
		event.New,
	)

	return &event.Consumer{}
}
