package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	queryGetFeatures = `SELECT a.room_id, f.name
		FROM ` + model.FeatureAssignmentTableName + ` a
		JOIN ` + model.FeatureTableName + ` f ON f.id = a.feature_id
		WHERE a.room_id = ANY($1)
		ORDER BY a.room_id, f.name`

	queryAssignFeatures = `INSERT INTO ` + model.FeatureAssignmentTableName + ` (room_id, feature_id)
		SELECT $1, feature_id FROM unnest($2::bigint[]) AS feature_id
		ON CONFLICT DO NOTHING`
)

type Room interface {
	InsertReturningIDTx(ctx context.Context, tx *sqlx.Tx, model model.Room) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetFeatures(ctx context.Context, roomIDs []int64) (map[int64][]string, error)
	AssignFeaturesTx(ctx context.Context, tx *sqlx.Tx, roomID int64, featureIDs []int64) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetFeatures returns the feature names of each room, keyed by room id.
func (r *repositoryImpl) GetFeatures(ctx context.Context, roomIDs []int64) (map[int64][]string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetFeatures")
	defer scope.End()

	res := make(map[int64][]string, len(roomIDs))
	if len(roomIDs) == 0 {
		return res, nil
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetFeatures)

	var features []model.RoomFeature
	if err := r.db.Read.SelectContext(ctx, &features, queryGetFeatures, pq.Array(roomIDs)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get room features: %w", err)
	}

	for _, f := range features {
		res[f.RoomID] = append(res[f.RoomID], f.Name)
	}

	return res, nil
}

func (r *repositoryImpl) AssignFeaturesTx(ctx context.Context, tx *sqlx.Tx, roomID int64, featureIDs []int64) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.AssignFeaturesTx")
	defer scope.End()

	if len(featureIDs) == 0 {
		return nil
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAssignFeatures)

	if _, err := tx.ExecContext(ctx, queryAssignFeatures, roomID, pq.Array(featureIDs)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to assign room features: %w", gRepo.TranslateError(err))
	}

	return nil
}
