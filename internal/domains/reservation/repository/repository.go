package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/reservation/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

const argExcludeID = "exclude_id"

type Reservation interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	InsertReturningIDTx(ctx context.Context, tx *sqlx.Tx, model model.Reservation) (int64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	// HasOverlap reports whether an active reservation of the room overlaps stay. A nil tx
	// reads from the replica pool.
	HasOverlap(ctx context.Context, tx *sqlx.Tx, roomID int64, stay model.DateRange, excludeID *int64) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) HasOverlap(ctx context.Context, tx *sqlx.Tx, roomID int64, stay model.DateRange, excludeID *int64) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.HasOverlap")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"room_id": roomID,
		"stay":    stay.String(),
	})

	filter := OverlapFilter(roomID, stay, excludeID)
	if tx == nil {
		return r.Exist(ctx, filter)
	}

	return r.ExistTx(ctx, tx, filter)
}

// OverlapFilter selects the reservations of roomID that conflict with stay.
func OverlapFilter(roomID int64, stay model.DateRange, excludeID *int64) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    roomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Value:    model.ConflictPredicate(model.TableName),
			Operator: gDto.FilterPlainQuery,
			Args:     stay.ConflictArgs(),
		},
	}

	if excludeID != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  argExcludeID,
			Field:    model.FieldID,
			Value:    *excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}
