package room

import (
	"net/http"

	"hotel/infras/otel"
	reservationDto "hotel/internal/domains/reservation/model/dto"
	reservationService "hotel/internal/domains/reservation/service"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/internal/handlers"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryKeyword = "keyword"
	formImage    = "image"
)

type Handler struct {
	service      service.Room
	roomType     service.RoomType
	availability reservationService.Availability
	otel         otel.Otel
}

func New(service service.Room, roomType service.RoomType, availability reservationService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		roomType:     roomType,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/search", handler.SearchAvailableRooms)
		routerGroup.Get("/types", handler.GetRoomTypes)
		routerGroup.Post("/types", handler.CreateRoomType)
		routerGroup.Post("/types/{id}/image", handler.UploadRoomTypeImage)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
		routerGroup.Patch("/{id}/status", handler.UpdateRoomStatus)
		routerGroup.Get("/{id}/availability", handler.CheckAvailability)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a room of an existing room type, optionally with features.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetRooms lists rooms. With a keyword it matches room number, type name and description
// instead of the status and type filters.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param keyword query string false "Keyword"
// @Param status query string false "Room status"
// @Param room_type_id query int false "Room type"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	var (
		rooms dto.GetRoomsResponse
		err   error
	)

	if keyword := r.URL.Query().Get(queryKeyword); keyword != "" {
		rooms, err = handler.service.SearchRooms(ctx, keyword, queryParams)
	} else {
		rooms, err = handler.service.GetAll(ctx, queryParams, roomFilter(r))
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

func roomFilter(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if roomTypeID, err := shared.ConvertStringToID(r.URL.Query().Get(model.FieldRoomTypeID)); err == nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomTypeID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomTypeID,
			Table:    model.TableName,
		})
	}

	return filterGroup
}

// SearchAvailableRooms lists rooms free for the whole stay with estimated charges.
// @Summary Search available rooms
// @Tags Room
// @Produce json
// @Param check_in_date query string true "YYYY-MM-DD (alias check_in)"
// @Param check_out_date query string true "YYYY-MM-DD (alias check_out)"
// @Param min_capacity query int false "Minimum capacity (alias number_of_guests)"
// @Param room_type_id query int false "Room type"
// @Param max_price query string false "Highest nightly base price"
// @Success 200 {object} response.Data[dto.SearchAvailableRoomsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/rooms/search [get]
func (handler *Handler) SearchAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchAvailableRooms")
	defer scope.End()

	req := dto.SearchAvailableRoomsRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate search request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SearchAvailableRooms(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomByID retrieves a room with its type and features.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := handlers.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoomStatus
// @Summary Change the status of a room
// @Tags Room
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomStatus")
	defer scope.End()

	id, err := handlers.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room status changed by user " + user)

	response.WithMessage(w, http.StatusOK, "Room status updated successfully")
}

// DeleteRoom soft-deletes a room.
// @Summary Delete a room by ID
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := handlers.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

// CheckAvailability answers whether the room can take the stay. Lookup failures report
// the room as unavailable.
// @Summary Check room availability
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Param check_in_date query string true "YYYY-MM-DD"
// @Param check_out_date query string true "YYYY-MM-DD"
// @Param exclude_reservation_id query int false "Reservation ignored by the conflict scan"
// @Success 200 {object} response.Data[reservationDto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Router /v1/rooms/{id}/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	id, err := handlers.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := reservationDto.AvailabilityRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	checkIn, _ := timezone.ParseDate(req.CheckInDate)
	checkOut, _ := timezone.ParseDate(req.CheckOutDate)

	res := reservationDto.AvailabilityResponse{
		RoomID:       id,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Available:    handler.availability.IsAvailable(ctx, id, checkIn, checkOut, req.ExcludeReservationID),
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomTypes
// @Summary List room types
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[[]dto.RoomTypeResponse]
// @Router /v1/rooms/types [get]
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	res, err := handler.roomType.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateRoomType
// @Summary Create a room type
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} response.Data[dto.RoomTypeResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/types [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	req := dto.CreateRoomTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.roomType.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// UploadRoomTypeImage replaces the image of a room type.
// @Summary Upload a room type image
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Room type ID"
// @Param image formData file true "PNG or JPEG, at most 1 MB"
// @Success 200 {object} response.Data[dto.RoomTypeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/types/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadRoomTypeImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadRoomTypeImage")
	defer scope.End()

	id, err := handlers.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UploadRoomTypeImageRequest{}

	file, fileHeader, err := r.FormFile(formImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.roomType.UploadImage(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_type_id", id).Msg("failed to upload room type image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
