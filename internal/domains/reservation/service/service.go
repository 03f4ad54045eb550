package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	guestModel "hotel/internal/domains/guest/model"
	guestRepo "hotel/internal/domains/guest/repository"
	"hotel/internal/domains/reservation/event"
	"hotel/internal/domains/reservation/model"
	"hotel/internal/domains/reservation/model/dto"
	"hotel/internal/domains/reservation/pricing"
	"hotel/internal/domains/reservation/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/clock"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	defaultMaxNights = 30

	msgRoomUnavailable = "room not available for requested dates"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Get(ctx context.Context, id int64) (dto.ReservationResponse, error)
	GetByGuest(ctx context.Context, guestID int64) ([]dto.ReservationResponse, error)
	// Cancel, CheckIn and CheckOut report false when the reservation is missing or not in
	// the state the operation starts from. Errors are reserved for store failures.
	Cancel(ctx context.Context, id int64) (bool, error)
	CheckIn(ctx context.Context, id int64) (bool, error)
	CheckOut(ctx context.Context, id int64) (bool, error)
}

type serviceImpl struct {
	repo         repository.Reservation
	roomRepo     roomRepo.Room
	guestRepo    guestRepo.Guest
	availability Availability
	transactor   postgres.Transactor
	publisher    event.Publisher
	cfg          *config.Config
	otel         otel.Otel
	clock        clock.Clock
}

func New(
	repo repository.Reservation,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	availability Availability,
	transactor postgres.Transactor,
	publisher event.Publisher,
	cfg *config.Config,
	otel otel.Otel,
	clk clock.Clock,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		guestRepo:    guestRepo,
		availability: availability,
		transactor:   transactor,
		publisher:    publisher,
		cfg:          cfg,
		otel:         otel,
		clock:        clk,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var created model.Reservation

	err = s.transactor.WithTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(tx *sqlx.Tx) error {
		guest, err := s.guestRepo.GetTx(ctx, tx, shared.FilterActiveByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get guest: %w", err)
		}

		if guest.ID == 0 {
			return failure.NotFound("guest not found")
		}

		room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterActiveByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == 0 {
			return failure.NotFound("room not found")
		}

		stay, err := s.validateStay(req)
		if err != nil {
			return err
		}

		available, err := s.availability.CheckAvailability(ctx, tx, room.ID, stay, nil)
		if err != nil {
			return fmt.Errorf("failed to check room availability: %w", err)
		}

		if !available {
			return failure.Conflict(msgRoomUnavailable)
		}

		totals, err := pricing.ComputeTotals(room.BasePrice, stay.Nights())
		if err != nil {
			return err
		}

		created = req.ToModel(stay, totals, s.clock.Now(), user)

		id, err := s.repo.InsertReturningIDTx(ctx, tx, created)
		if err != nil {
			if failure.IsCode(err, http.StatusConflict) {
				return failure.Conflict(msgRoomUnavailable)
			}

			return fmt.Errorf("failed to insert reservation: %w", err)
		}

		created.ID = id

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("guest_id", req.GuestID).Int64("room_id", req.RoomID).Msg("failed to create reservation")

		return res, err
	}

	log.Info().Int64("reservation_id", created.ID).Int64("room_id", created.RoomID).Str("stay", created.Stay().String()).Msg("reservation created")

	s.publish(ctx, event.New(event.TypeCreated, created, s.clock.Now()))

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) validateStay(req dto.CreateReservationRequest) (model.DateRange, error) {
	stay, err := req.Stay()
	if err != nil {
		return stay, err
	}

	if stay.Start.Before(timezone.Today(s.clock.Now())) {
		return stay, failure.BadRequestFromString("check-in date cannot be in the past")
	}

	maxNights := s.cfg.App.Booking.MaxNights
	if maxNights <= 0 {
		maxNights = defaultMaxNights
	}

	if stay.Nights() > maxNights {
		return stay, failure.BadRequestFromString(fmt.Sprintf("stay cannot exceed %d nights", maxNights))
	}

	return stay, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterActiveByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	return res, nil
}

// GetByGuest lists the guest's reservations, latest check-in first.
func (s *serviceImpl) GetByGuest(ctx context.Context, guestID int64) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetByGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.TableName, model.FieldCheckInDate),
		SortDir: "DESC",
	}

	reservations, err := s.repo.GetAll(ctx, params, shared.FilterActiveByID(guestID, model.FieldGuestID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest reservations")

		return res, fmt.Errorf("failed to get guest reservations: %w", err)
	}

	return dto.FromModels(reservations), nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id int64) (bool, error) {
	return s.transition(ctx, id, model.OperationCancel)
}

func (s *serviceImpl) CheckIn(ctx context.Context, id int64) (bool, error) {
	return s.transition(ctx, id, model.OperationCheckIn)
}

func (s *serviceImpl) CheckOut(ctx context.Context, id int64) (bool, error) {
	return s.transition(ctx, id, model.OperationCheckOut)
}

func (s *serviceImpl) transition(ctx context.Context, id int64, op model.Operation) (applied bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation."+string(op))
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterActiveByID(id, model.FieldID, model.TableName)

	var updated model.Reservation

	err = s.transactor.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get reservation: %w", err)
		}

		if current.ID == 0 {
			log.Info().Int64("reservation_id", id).Str("operation", string(op)).Msg("reservation not found")

			return nil
		}

		next, err := model.Transition(current.Status, op)
		if errors.Is(err, model.ErrInvalidTransition) {
			log.Info().Err(err).Int64("reservation_id", id).Msg("transition rejected")

			return nil
		}

		now := s.clock.Now()
		fields := map[string]any{
			model.FieldStatus:        next,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update reservation status: %w", err)
		}

		current.Status = next
		current.ModifiedAt = now
		current.ModifiedBy = user
		updated = current

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("reservation_id", id).Str("operation", string(op)).Msg("failed to change reservation status")

		return false, err
	}

	if updated.ID == 0 {
		return false, nil
	}

	s.publish(ctx, event.New(event.TypeOf(op), updated, updated.ModifiedAt))

	return true, nil
}

func (s *serviceImpl) publish(ctx context.Context, evt event.Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, evt); err != nil {
			log.Warn().Err(err).Str("type", string(evt.Type)).Int64("reservation_id", evt.ReservationID).Msg("reservation event not delivered")
		}
	}()
}
