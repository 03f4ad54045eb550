package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	authMocks "hotel/internal/domains/auth/service/mocks"
	guestMocks "hotel/internal/domains/guest/service/mocks"
	availabilityMocks "hotel/internal/domains/reservation/mocks"
	reservationDto "hotel/internal/domains/reservation/model/dto"
	reservationMocks "hotel/internal/domains/reservation/service/mocks"
	roomDto "hotel/internal/domains/room/model/dto"
	roomMocks "hotel/internal/domains/room/service/mocks"
	userMocks "hotel/internal/domains/user/service/mocks"
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/guest"
	"hotel/internal/handlers/reservation"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/user"
	"hotel/shared/constant"
	"hotel/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRouter_SetupRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	otel := otelMocks.NewOtel()
	roomTypes := roomMocks.NewMockRoomType(ctrl)
	reservations := reservationMocks.NewMockReservation(ctrl)

	r := router.New(router.DomainHandlers{
		Auth:        auth.New(authMocks.NewMockAuth(ctrl), otel),
		User:        user.New(userMocks.NewMockUser(ctrl), otel),
		Guest:       guest.New(guestMocks.NewMockGuest(ctrl), otel),
		Room:        room.New(roomMocks.NewMockRoom(ctrl), roomTypes, availabilityMocks.NewMockAvailability(ctrl), otel),
		Reservation: reservation.New(reservations, otel),
	})

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	roomTypes.EXPECT().GetAll(gomock.Any()).Return([]roomDto.RoomTypeResponse{}, nil)
	reservations.EXPECT().Get(gomock.Any(), int64(3)).Return(reservationDto.ReservationResponse{ID: 3}, nil)

	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
	}{
		{name: "room types", method: http.MethodGet, target: "/v1/rooms/types", wantCode: http.StatusOK},
		{name: "reservation", method: http.MethodGet, target: "/v1/reservations/3", wantCode: http.StatusOK},
		{name: "unversioned", method: http.MethodGet, target: "/rooms/types", wantCode: http.StatusNotFound},
		{name: "unknown method", method: http.MethodPatch, target: "/v1/reservations/3", wantCode: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserRole, constant.RoleAdmin))

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
