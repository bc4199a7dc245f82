//go:build wireinject
// +build wireinject

package di

import (
	"viasol/config"
	"viasol/infras/jwt"
	"viasol/infras/kafka"
	"viasol/infras/otel"
	"viasol/infras/postgres"
	"viasol/infras/redis"
	"viasol/infras/s3"
	"viasol/permissions"
	"viasol/shared/cache"
	"viasol/transport/http"
	"viasol/transport/http/middleware"
	"viasol/transport/http/router"

	"github.com/google/wire"

	authService "viasol/internal/domains/auth/service"
	inquiryService "viasol/internal/domains/inquiry/service"
	mediaService "viasol/internal/domains/media/service"
	packagesRepository "viasol/internal/domains/packages/repository"
	packagesService "viasol/internal/domains/packages/service"
	userRepository "viasol/internal/domains/user/repository"
	userService "viasol/internal/domains/user/service"
	wizardService "viasol/internal/domains/wizard/service"

	authHandler "viasol/internal/handlers/auth"
	inquiryHandler "viasol/internal/handlers/inquiry"
	mediaHandler "viasol/internal/handlers/media"
	packagesHandler "viasol/internal/handlers/packages"
	userHandler "viasol/internal/handlers/user"
	wizardHandler "viasol/internal/handlers/wizard"
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
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var packagesDomain = wire.NewSet(
	packagesRepository.New,
	packagesService.New,
	mediaService.New,
)

var wizardDomain = wire.NewSet(
	wizardService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryService.New,
)

var domains = wire.NewSet(
	authDomain,
	packagesDomain,
	wizardDomain,
	inquiryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	packagesHandler.New,
	wizardHandler.New,
	inquiryHandler.New,
	mediaHandler.New,
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
