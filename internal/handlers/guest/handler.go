package guest

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/service"
	"hotel/internal/handlers"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/me", handler.GetOwnProfile)
		routerGroup.Get("/user/{userId}", handler.GetGuestByUserID)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Put("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
	})
}

// CreateGuest attaches a guest profile to an existing account.
// @Summary Create a guest profile
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Guest"
// @Success 201 {object} response.Data[dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/guests [post]
// @Security BearerAuth
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetOwnProfile returns the guest profile of the caller.
// @Summary Guest profile of the caller
// @Tags Guest
// @Produce json
// @Success 200 {object} response.Data[dto.GuestResponse]
// @Failure 404 {object} response.Error
// @Router /v1/guests/me [get]
// @Security BearerAuth
func (handler *Handler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnProfile")
	defer scope.End()

	userID, err := handlers.UserID(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetByUserID(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to get own guest profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetGuestByUserID
// @Summary Guest profile by user id
// @Tags Guest
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} response.Data[dto.GuestResponse]
// @Failure 404 {object} response.Error
// @Router /v1/guests/user/{userId} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestByUserID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByUserID")
	defer scope.End()

	userID, err := handlers.PathID(r, constant.RequestParamUserID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetByUserID(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to get guest by user")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetGuestByID
// @Summary Guest profile
// @Tags Guest
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id, err := handlers.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if !handlers.CanAccessGuest(ctx, id) {
		response.WithError(w, failure.ResourceRestrictedError)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("guest_id", id).Msg("failed to get guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateGuest changes the contact details of a guest. Empty fields are left untouched.
// @Summary Update a guest profile
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path int true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Guest"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id, err := handlers.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if !handlers.CanAccessGuest(ctx, id) {
		response.WithError(w, failure.ResourceRestrictedError)

		return
	}

	req := dto.UpdateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("guest_id", id).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest updated successfully")
}

// DeleteGuest soft-deletes a guest profile.
// @Summary Delete a guest profile
// @Tags Guest
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id, err := handlers.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("guest_id", id).Msg("failed to delete guest")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}
