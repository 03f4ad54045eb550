package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/clock"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuest       = "guest:get"
	cacheGetGuestByUser = "guest:user"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	Get(ctx context.Context, id int64) (dto.GuestResponse, error)
	GetByUserID(ctx context.Context, userID int64) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	clock clock.Clock
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, clk clock.Clock) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		clock: clk,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterActiveByID(req.UserID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check guest profile existence")

		return res, fmt.Errorf("failed to check guest profile existence: %w", err)
	}

	if exist {
		return res, failure.Conflict("guest profile already exists for this user")
	}

	id, err := s.repo.InsertReturningID(ctx, req.ToModel(s.clock.Now(), user))
	if err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.getBy(ctx, model.FieldID, id, shared.BuildCacheKey(cacheGetGuest, id))
}

func (s *serviceImpl) GetByUserID(ctx context.Context, userID int64) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetByUserID")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.getBy(ctx, model.FieldUserID, userID, shared.BuildCacheKey(cacheGetGuestByUser, userID))
}

func (s *serviceImpl) getBy(ctx context.Context, field string, value int64, cacheKey string) (res dto.GuestResponse, err error) {
	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	guest, err := s.repo.Get(ctx, shared.FilterActiveByID(value, field, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == 0 {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterActiveByID(id, model.FieldID, model.TableName)

	guest, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check guest existence")

		return fmt.Errorf("failed to check guest existence: %w", err)
	}

	if guest.ID == 0 {
		return failure.NotFound("guest not found")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	s.evict(ctx, guest)

	return nil
}

// Delete marks the guest as deleted. Reservations keep referencing the row.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterActiveByID(id, model.FieldID, model.TableName)

	guest, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check guest existence")

		return fmt.Errorf("failed to check guest existence: %w", err)
	}

	if guest.ID == 0 {
		return failure.NotFound("guest not found")
	}

	now := s.clock.Now()
	fields := map[string]any{
		constant.FieldDeletedAt:  now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	s.evict(ctx, guest)

	return nil
}

func (s *serviceImpl) evict(ctx context.Context, guest model.Guest) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, guest.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuestByUser, guest.UserID)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest cache")
		}
	}()
}
