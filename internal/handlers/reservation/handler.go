package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/reservation/model/dto"
	"hotel/internal/domains/reservation/service"
	"hotel/internal/handlers"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/guest/{guestId}", handler.GetGuestReservations)
		routerGroup.Get("/{id}", handler.GetReservation)
		routerGroup.Put("/{id}/cancel", handler.CancelReservation)
		routerGroup.Put("/{id}/checkin", handler.CheckIn)
		routerGroup.Put("/{id}/checkout", handler.CheckOut)
	})
}

// CreateReservation books a room for a stay. Guests book for themselves; guest_id may be
// omitted and defaults to the caller's profile.
// @Summary Create a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)))

		return
	}

	if req.GuestID == 0 {
		req.GuestID, _ = ctx.Value(constant.ContextKeyGuestID).(int64)
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if !handlers.CanAccessGuest(ctx, req.GuestID) {
		response.WithError(w, failure.ResourceRestrictedError)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", req.RoomID).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(fmt.Sprintf("Reservation %d created", res.ID))

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReservation
// @Summary Reservation detail
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservation")
	defer scope.End()

	id, err := handlers.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("reservation_id", id).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	if !handlers.CanAccessGuest(ctx, res.GuestID) {
		response.WithError(w, failure.NotFound("reservation not found"))

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetGuestReservations lists a guest's reservations, latest check-in first.
// @Summary Reservations of a guest
// @Tags Reservation
// @Produce json
// @Param guestId path int true "Guest ID"
// @Success 200 {object} response.Data[[]dto.ReservationResponse]
// @Failure 403 {object} response.Error
// @Router /v1/reservations/guest/{guestId} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestReservations")
	defer scope.End()

	guestID, err := handlers.PathID(r, constant.RequestParamGuestID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if !handlers.CanAccessGuest(ctx, guestID) {
		response.WithError(w, failure.ResourceRestrictedError)

		return
	}

	res, err := handler.service.GetByGuest(ctx, guestID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("guest_id", guestID).Msg("failed to get guest reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelReservation
// @Summary Cancel a reservation
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Data[dto.StatusChangeResponse]
// @Failure 404 {object} response.Error "Not found or cannot be canceled"
// @Router /v1/reservations/{id}/cancel [put]
// @Security BearerAuth
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	handler.changeStatus(w, r, "CancelReservation", "canceled", handler.service.Cancel)
}

// CheckIn
// @Summary Check a guest in
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Data[dto.StatusChangeResponse]
// @Failure 404 {object} response.Error "Not found or cannot be checked in"
// @Router /v1/reservations/{id}/checkin [put]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	handler.changeStatus(w, r, "CheckIn", "checked in", handler.service.CheckIn)
}

// CheckOut
// @Summary Check a guest out
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Data[dto.StatusChangeResponse]
// @Failure 404 {object} response.Error "Not found or cannot be checked out"
// @Router /v1/reservations/{id}/checkout [put]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	handler.changeStatus(w, r, "CheckOut", "checked out", handler.service.CheckOut)
}

func (handler *Handler) changeStatus(
	w http.ResponseWriter,
	r *http.Request,
	name, outcome string,
	change func(ctx context.Context, id int64) (bool, error),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id, err := handlers.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	notChanged := failure.NotFound("reservation not found or cannot be " + outcome)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleAdmin {
		current, err := handler.service.Get(ctx, id)
		if err != nil {
			if failure.IsCode(err, http.StatusNotFound) {
				err = notChanged
			}

			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		if !handlers.CanAccessGuest(ctx, current.GuestID) {
			response.WithError(w, notChanged)

			return
		}
	}

	changed, err := change(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("reservation_id", id).Msgf("failed to mark reservation %s", outcome)

		response.WithError(w, err)

		return
	}

	if !changed {
		response.WithError(w, notChanged)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent(fmt.Sprintf("Reservation %d %s by user %s", id, outcome, user))

	response.WithJSON(w, http.StatusOK, dto.StatusChangeResponse{
		ID:      id,
		Success: true,
		Message: "Reservation " + outcome + " successfully",
	})
}
