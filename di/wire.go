//go:build wireinject
// +build wireinject

package di

import (
	"habitrack/config"
	"habitrack/infras/database"
	"habitrack/infras/otel"
	"habitrack/infras/redis"
	"habitrack/shared/cache"
	"habitrack/transport/http"
	"habitrack/transport/http/middleware"
	"habitrack/transport/http/router"

	checkinRepository "habitrack/internal/domains/checkin/repository"
	checkinService "habitrack/internal/domains/checkin/service"
	habitRepository "habitrack/internal/domains/habit/repository"
	habitService "habitrack/internal/domains/habit/service"
	summaryRepository "habitrack/internal/domains/summary/repository"
	summaryService "habitrack/internal/domains/summary/service"
	checkinHandler "habitrack/internal/handlers/checkin"
	habitHandler "habitrack/internal/handlers/habit"
	summaryHandler "habitrack/internal/handlers/summary"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var habitDomain = wire.NewSet(
	habitRepository.New,
	habitService.New,
)

var checkinDomain = wire.NewSet(
	checkinRepository.New,
	checkinService.New,
)

var summaryDomain = wire.NewSet(
	summaryRepository.New,
	summaryService.New,
)

var domains = wire.NewSet(
	habitDomain,
	checkinDomain,
	summaryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	habitHandler.New,
	checkinHandler.New,
	summaryHandler.New,
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

// InitializeWithConnection builds the server around an already opened
// database and tracer.
func InitializeWithConnection(cfg *config.Config, db *database.Connection, otl otel.Otel) *http.HTTP {
	wire.Build(
		redis.New,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
