package repository

//go:generate go run go.uber.org/mock/mockgen -source=./room_type.go -destination=../mocks/room_type_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type RoomType interface {
	InsertReturningID(ctx context.Context, model model.RoomType) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type roomTypeRepositoryImpl struct {
	gRepo.Repository[model.RoomType]
}

func NewRoomType(db *postgres.Connection, otel otel.Otel) RoomType {
	return &roomTypeRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.RoomTypeEntityName, model.RoomTypeTableName, model.FieldRoomTypeIDOnType, db, otel),
	}
}
