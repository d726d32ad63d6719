//go:build wireinject
// +build wireinject

package di

import (
	"coworking/config"
	"coworking/infras/otel"
	"coworking/infras/redis"
	"coworking/internal/seed"
	"coworking/permissions"
	"coworking/shared/cache"
	"coworking/transport/console"
	"coworking/transport/http"
	"coworking/transport/http/middleware"
	"coworking/transport/http/router"

	bookingRepository "coworking/internal/domains/booking/repository"
	bookingService "coworking/internal/domains/booking/service"
	resourceRepository "coworking/internal/domains/resource/repository"
	resourceService "coworking/internal/domains/resource/service"
	userRepository "coworking/internal/domains/user/repository"
	userService "coworking/internal/domains/user/service"

	"github.com/google/wire"

	bookingHandler "coworking/internal/handlers/booking"
	resourceHandler "coworking/internal/handlers/resource"
	userHandler "coworking/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var resourceDomain = wire.NewSet(
	resourceRepository.New,
	resourceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	wire.Bind(new(resourceService.Ledger), new(bookingService.Booking)),
)

var domains = wire.NewSet(
	userDomain,
	resourceDomain,
	bookingDomain,
	seed.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	resourceHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeConsole() *ConsoleApp {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		console.New,
		wire.Struct(new(ConsoleApp), "*"),
	)

	return &ConsoleApp{}
}

func InitializeService() *ServerApp {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(ServerApp), "*"),
	)

	return &ServerApp{}
}
