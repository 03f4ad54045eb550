package service

//go:generate go run go.uber.org/mock/mockgen -source=./room_type.go -destination=./mocks/room_type_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/clock"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomType    = "room_type:get"
	cacheGetAllRoomType = "room_type:gets"
)

type RoomType interface {
	Create(ctx context.Context, req dto.CreateRoomTypeRequest) (dto.RoomTypeResponse, error)
	GetAll(ctx context.Context) ([]dto.RoomTypeResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomTypeResponse, error)
	UploadImage(ctx context.Context, id int64, req dto.UploadRoomTypeImageRequest) (dto.RoomTypeResponse, error)
}

type roomTypeServiceImpl struct {
	repo  repository.RoomType
	cfg   *config.Config
	cache cache.RedisCache
	s3    s3.S3
	otel  otel.Otel
	clock clock.Clock
}

func NewRoomType(repo repository.RoomType, cfg *config.Config, cache cache.RedisCache, s3 s3.S3, otel otel.Otel, clk clock.Clock) RoomType {
	return &roomTypeServiceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		s3:    s3,
		otel:  otel,
		clock: clk,
	}
}

func (s *roomTypeServiceImpl) Create(ctx context.Context, req dto.CreateRoomTypeRequest) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	roomType, err := req.ToModel(s.clock.Now(), user)
	if err != nil {
		return res, err
	}

	exist, err := s.repo.Exist(ctx, shared.FilterActiveByID(req.TypeName, model.FieldTypeName, model.RoomTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type name")

		return res, fmt.Errorf("failed to check room type name: %w", err)
	}

	if exist {
		return res, failure.Conflict("room type already exists")
	}

	id, err := s.repo.InsertReturningID(ctx, roomType)
	if err != nil {
		log.Error().Err(err).Msg("failed to create room type")

		return res, fmt.Errorf("failed to create room type: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
	}()

	return s.Get(ctx, id)
}

func (s *roomTypeServiceImpl) GetAll(ctx context.Context) (res []dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := cacheGetAllRoomType

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.RoomTypeTableName, model.FieldTypeName),
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    constant.FieldDeletedAt,
				Operator: gDto.FilterIsNull,
				Table:    model.RoomTypeTableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res = dto.RoomTypesFromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

func (s *roomTypeServiceImpl) Get(ctx context.Context, id int64) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoomType, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	roomType, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(roomType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type to cache")
		}
	}()

	return res, nil
}

// UploadImage replaces the image of a room type. The previous object is removed only after
// the new URL is stored.
func (s *roomTypeServiceImpl) UploadImage(ctx context.Context, id int64, req dto.UploadRoomTypeImageRequest) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type.UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	url, err := s.s3.UploadImage(ctx, model.RoomTypeEntityName, req.ImageFile, req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room type image")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	fields := map[string]any{
		model.FieldImageURL:      url,
		constant.FieldModifiedAt: s.clock.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterActiveByID(id, model.FieldRoomTypeIDOnType, model.RoomTypeTableName)); err != nil {
		log.Error().Err(err).Msg("failed to update room type image")

		s.deleteImage(ctx, url)

		return res, fmt.Errorf("failed to update room type image: %w", err)
	}

	if current.ImageURL != constant.Empty {
		s.deleteImage(ctx, current.ImageURL)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomType, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room type cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		// rooms embed their type
		shared.InvalidateCaches(c, s.cache, cacheGetRoom)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()

	current.ImageURL = url
	res.FromModel(current)

	return res, nil
}

func (s *roomTypeServiceImpl) get(ctx context.Context, id int64) (model.RoomType, error) {
	roomType, err := s.repo.Get(ctx, shared.FilterActiveByID(id, model.FieldRoomTypeIDOnType, model.RoomTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == 0 {
		return roomType, failure.NotFound("room type not found")
	}

	return roomType, nil
}

func (s *roomTypeServiceImpl) deleteImage(ctx context.Context, url string) {
	name := s.s3.ObjectNameFromURL(model.RoomTypeEntityName, url)
	if name == constant.Empty {
		return
	}

	if err := s.s3.DeleteObject(ctx, model.RoomTypeEntityName, name); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to delete room type image")
	}
}
