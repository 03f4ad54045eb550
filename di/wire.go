//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	authService "hotel/internal/domains/auth/service"
	guestRepository "hotel/internal/domains/guest/repository"
	guestService "hotel/internal/domains/guest/service"
	"hotel/internal/domains/reservation/event"
	reservationRepository "hotel/internal/domains/reservation/repository"
	reservationService "hotel/internal/domains/reservation/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	userRepository "hotel/internal/domains/user/repository"
	userService "hotel/internal/domains/user/service"
	authHandler "hotel/internal/handlers/auth"
	guestHandler "hotel/internal/handlers/guest"
	reservationHandler "hotel/internal/handlers/reservation"
	roomHandler "hotel/internal/handlers/room"
	userHandler "hotel/internal/handlers/user"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/shared/clock"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	provideKafka,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewRoomType,
	roomService.New,
	roomService.NewRoomType,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	event.NewPublisher,
	reservationService.NewAvailability,
	reservationService.New,
)

var domains = wire.NewSet(
	authDomain,
	guestDomain,
	roomDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	guestHandler.New,
	roomHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
