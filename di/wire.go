//go:build wireinject
// +build wireinject

package di

import (
	"rooming/config"
	"rooming/infras/jwt"
	"rooming/infras/otel"
	"rooming/infras/postgres"
	"rooming/infras/redis"
	"rooming/permissions"
	"rooming/shared/activity"
	"rooming/shared/cache"
	"rooming/transport/http"
	"rooming/transport/http/middleware"
	"rooming/transport/http/router"

	"github.com/google/wire"

	authService "rooming/internal/domains/auth/service"
	bookingRepository "rooming/internal/domains/booking/repository"
	bookingService "rooming/internal/domains/booking/service"
	dataRepository "rooming/internal/domains/data/repository"
	dataService "rooming/internal/domains/data/service"
	dataSource "rooming/internal/domains/data/source"
	eventRepository "rooming/internal/domains/event/repository"
	eventService "rooming/internal/domains/event/service"
	roomingListRepository "rooming/internal/domains/roominglist/repository"
	roomingListService "rooming/internal/domains/roominglist/service"
	linkRepository "rooming/internal/domains/roominglistbooking/repository"
	userRepository "rooming/internal/domains/user/repository"
	authHandler "rooming/internal/handlers/auth"
	bookingHandler "rooming/internal/handlers/booking"
	dataHandler "rooming/internal/handlers/data"
	eventHandler "rooming/internal/handlers/event"
	roomingListHandler "rooming/internal/handlers/roominglist"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	wire.Bind(new(postgres.Pinger), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	activity.New,
)

var repositories = wire.NewSet(
	eventRepository.New,
	bookingRepository.New,
	roomingListRepository.New,
	linkRepository.New,
	userRepository.New,
	dataRepository.New,
)

var domains = wire.NewSet(
	eventService.New,
	bookingService.New,
	roomingListService.New,
	authService.New,
	dataSource.New,
	dataService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	eventHandler.New,
	bookingHandler.New,
	roomingListHandler.New,
	dataHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
