package service

//go:generate go run go.uber.org/mock/mockgen -source=./availability.go -destination=../mocks/availability_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/infras/otel"
	"hotel/internal/domains/reservation/model"
	"hotel/internal/domains/reservation/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Availability decides whether a room can take a stay. It never reads from a cache.
type Availability interface {
	// IsAvailable fails closed: a store error or an invalid range reports false.
	IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeReservationID *int64) bool
	// CheckAvailability surfaces store errors. With a non-nil tx the room row is locked
	// until the transaction ends.
	CheckAvailability(ctx context.Context, tx *sqlx.Tx, roomID int64, stay model.DateRange, excludeReservationID *int64) (bool, error)
}

type availabilityImpl struct {
	repo     repository.Reservation
	roomRepo roomRepo.Room
	otel     otel.Otel
}

func NewAvailability(repo repository.Reservation, roomRepo roomRepo.Room, otel otel.Otel) Availability {
	return &availabilityImpl{
		repo:     repo,
		roomRepo: roomRepo,
		otel:     otel,
	}
}

func (a *availabilityImpl) IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeReservationID *int64) bool {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.IsAvailable")
	defer scope.End()

	stay, err := model.NewDateRange(checkIn, checkOut)
	if err != nil {
		return false
	}

	available, err := a.CheckAvailability(ctx, nil, roomID, stay, excludeReservationID)
	if err != nil {
		log.Error().Err(err).Int64("room_id", roomID).Str("stay", stay.String()).Msg("availability check failed, reporting unavailable")
		scope.TraceError(err)

		return false
	}

	return available
}

func (a *availabilityImpl) CheckAvailability(ctx context.Context, tx *sqlx.Tx, roomID int64, stay model.DateRange, excludeReservationID *int64) (bool, error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.CheckAvailability")
	defer scope.End()

	filter := shared.FilterActiveByID(roomID, roomModel.FieldID, roomModel.TableName)

	var (
		room roomModel.Room
		err  error
	)

	if tx != nil {
		room, err = a.roomRepo.GetForUpdateTx(ctx, tx, filter)
	} else {
		room, err = a.roomRepo.Get(ctx, filter)
	}

	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to get room: %w", err)
	}

	if !room.IsBookable() {
		return false, nil
	}

	overlap, err := a.repo.HasOverlap(ctx, tx, roomID, stay, excludeReservationID)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check overlapping reservations: %w", err)
	}

	return !overlap, nil
}
