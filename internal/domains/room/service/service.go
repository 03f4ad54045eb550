package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/clock"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

var sortableColumns = []string{
	model.FieldID,
	model.FieldRoomNumber,
	model.FieldStatus,
	constant.FieldCreatedAt,
	constant.FieldModifiedAt,
}

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateRoomStatusRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	SearchRooms(ctx context.Context, term string, req gDto.QueryParams) (dto.GetRoomsResponse, error)
	// SearchAvailableRooms lists every bookable room free for the whole stay, ordered by id.
	// Results always come from the database.
	SearchAvailableRooms(ctx context.Context, req dto.SearchAvailableRoomsRequest) (dto.SearchAvailableRoomsResponse, error)
}

type serviceImpl struct {
	repo         repository.Room
	roomTypeRepo repository.RoomType
	transactor   postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	clock        clock.Clock
}

func New(
	repo repository.Room,
	roomTypeRepo repository.RoomType,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	clk clock.Clock,
) Room {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		transactor:   transactor,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		clock:        clk,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	typeExist, err := s.roomTypeRepo.Exist(ctx, shared.FilterActiveByID(req.RoomTypeID, model.FieldRoomTypeIDOnType, model.RoomTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type existence")

		return res, fmt.Errorf("failed to check room type existence: %w", err)
	}

	if !typeExist {
		return res, failure.NotFound("room type not found")
	}

	numberTaken, err := s.repo.Exist(ctx, shared.FilterActiveByID(req.RoomNumber, model.FieldRoomNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number")

		return res, fmt.Errorf("failed to check room number: %w", err)
	}

	if numberTaken {
		return res, failure.Conflict("room number already exists")
	}

	var id int64

	err = s.transactor.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		var txErr error

		id, txErr = s.repo.InsertReturningIDTx(ctx, tx, req.ToModel(s.clock.Now(), user))
		if txErr != nil {
			return txErr
		}

		return s.repo.AssignFeaturesTx(ctx, tx, id, req.FeatureIDs)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidateLists(ctx)

	return s.Get(ctx, id)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Qualify(model.TableName, sortableColumns...)
	filter = activeOnly(filter)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	features, err := s.repo.GetFeatures(ctx, roomIDs(models))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room features")

		return res, fmt.Errorf("failed to get room features: %w", err)
	}

	res.FromModels(models, features, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterActiveByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	features, err := s.repo.GetFeatures(ctx, []int64{room.ID})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room features")

		return res, fmt.Errorf("failed to get room features: %w", err)
	}

	res.FromModel(room, features[room.ID])

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

// UpdateStatus changes the housekeeping status of a room. Existing reservations are untouched;
// a room that is not Available simply stops appearing in availability results.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateRoomStatusRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterActiveByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found")
	}

	fields := map[string]any{
		model.FieldStatus:        model.Status(req.Status),
		constant.FieldModifiedAt: s.clock.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	s.evict(ctx, id)

	return nil
}

// Delete soft deletes the room so reservations keep a valid reference.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterActiveByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	now := s.clock.Now()
	fields := map[string]any{
		constant.FieldDeletedAt:  now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.evict(ctx, id)

	return nil
}

func (s *serviceImpl) SearchRooms(ctx context.Context, term string, req gDto.QueryParams) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.SearchRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.GetAll(ctx, req, repository.KeywordFilter(term))
}

func (s *serviceImpl) SearchAvailableRooms(ctx context.Context, req dto.SearchAvailableRoomsRequest) (res dto.SearchAvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.SearchAvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := req.Stay()
	if err != nil {
		return res, err
	}

	criteria := repository.AvailabilityCriteria{
		MinCapacity: req.MinCapacity,
		RoomTypeID:  req.RoomTypeID,
		MaxPrice:    req.MaxPriceValue(),
	}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.TableName, model.FieldID),
		SortDir: gDto.SortDirAsc,
	}

	rooms, err := s.repo.GetAll(ctx, params, repository.AvailableFilter(stay, criteria))
	if err != nil {
		log.Error().Err(err).Msg("failed to search available rooms")

		return res, fmt.Errorf("failed to search available rooms: %w", err)
	}

	features, err := s.repo.GetFeatures(ctx, roomIDs(rooms))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room features")

		return res, fmt.Errorf("failed to get room features: %w", err)
	}

	if err = res.FromModels(stay, rooms, features); err != nil {
		return res, fmt.Errorf("failed to price available rooms: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) evict(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}

func activeOnly(filter gDto.FilterGroup) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			filter,
			gDto.Filter{
				Field:    constant.FieldDeletedAt,
				Operator: gDto.FilterIsNull,
				Table:    model.TableName,
			},
		},
	}
}

func roomIDs(rooms []model.Room) []int64 {
	ids := make([]int64, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}

	return ids
}
