package reservation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/reservation/model/dto"
	"hotel/internal/domains/reservation/service/mocks"
	"hotel/internal/handlers/reservation"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type identity struct {
	role    string
	userID  string
	guestID int64
}

var (
	admin = identity{role: constant.RoleAdmin, userID: "1"}
	guest = identity{role: constant.RoleGuest, userID: "11", guestID: 21}
)

func serve(handler reservation.Handler, who identity, req *http.Request) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserRole, who.role)
			ctx = context.WithValue(ctx, constant.ContextKeyUserID, who.userID)
			ctx = context.WithValue(ctx, constant.ContextKeyGuestID, who.guestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestHandler_CreateReservation(t *testing.T) {
	stay := `"room_id":5,"check_in_date":"2026-11-01","check_out_date":"2026-11-03"`

	tests := []struct {
		name      string
		who       identity
		body      string
		setupMock func(svc *mocks.MockReservation)
		wantCode  int
	}{
		{
			name: "guest books for themselves",
			who:  guest,
			body: `{` + stay + `}`,
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Create(gomock.Any(), dto.CreateReservationRequest{
					GuestID:      21,
					RoomID:       5,
					CheckInDate:  "2026-11-01",
					CheckOutDate: "2026-11-03",
				}).Return(dto.ReservationResponse{ID: 100, GuestID: 21, RoomID: 5, Status: "Booked"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "guest books for someone else",
			who:       guest,
			body:      `{"guest_id":22,` + stay + `}`,
			setupMock: func(_ *mocks.MockReservation) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "admin without guest",
			who:       admin,
			body:      `{` + stay + `}`,
			setupMock: func(_ *mocks.MockReservation) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed body",
			who:       guest,
			body:      `{`,
			setupMock: func(_ *mocks.MockReservation) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room taken",
			who:  admin,
			body: `{"guest_id":22,` + stay + `}`,
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.ReservationResponse{}, failure.Conflict("room is not available for the selected dates"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockReservation(ctrl)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body))
			rec := serve(reservation.New(svc, otelMocks.NewOtel()), tt.who, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetReservation(t *testing.T) {
	tests := []struct {
		name      string
		who       identity
		path      string
		setupMock func(svc *mocks.MockReservation)
		wantCode  int
	}{
		{
			name: "owner",
			who:  guest,
			path: "/reservations/100",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Get(gomock.Any(), int64(100)).Return(dto.ReservationResponse{ID: 100, GuestID: 21}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "other guest's reservation is hidden",
			who:  guest,
			path: "/reservations/100",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Get(gomock.Any(), int64(100)).Return(dto.ReservationResponse{ID: 100, GuestID: 22}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "invalid id",
			who:       admin,
			path:      "/reservations/abc",
			setupMock: func(_ *mocks.MockReservation) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "guest history",
			who:  guest,
			path: "/reservations/guest/21",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().GetByGuest(gomock.Any(), int64(21)).Return([]dto.ReservationResponse{{ID: 100}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "another guest's history",
			who:       guest,
			path:      "/reservations/guest/22",
			setupMock: func(_ *mocks.MockReservation) {},
			wantCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockReservation(ctrl)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := serve(reservation.New(svc, otelMocks.NewOtel()), tt.who, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_ChangeStatus(t *testing.T) {
	tests := []struct {
		name      string
		who       identity
		path      string
		setupMock func(svc *mocks.MockReservation)
		wantCode  int
		wantError string
	}{
		{
			name: "admin cancels",
			who:  admin,
			path: "/reservations/100/cancel",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Cancel(gomock.Any(), int64(100)).Return(true, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "cancel refused by state",
			who:  admin,
			path: "/reservations/100/cancel",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Cancel(gomock.Any(), int64(100)).Return(false, nil)
			},
			wantCode:  http.StatusNotFound,
			wantError: "reservation not found or cannot be canceled",
		},
		{
			name: "owner cancels",
			who:  guest,
			path: "/reservations/100/cancel",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Get(gomock.Any(), int64(100)).Return(dto.ReservationResponse{ID: 100, GuestID: 21}, nil)
				svc.EXPECT().Cancel(gomock.Any(), int64(100)).Return(true, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "guest cannot cancel another guest's stay",
			who:  guest,
			path: "/reservations/100/cancel",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Get(gomock.Any(), int64(100)).Return(dto.ReservationResponse{ID: 100, GuestID: 22}, nil)
			},
			wantCode:  http.StatusNotFound,
			wantError: "reservation not found or cannot be canceled",
		},
		{
			name: "guest cancels unknown reservation",
			who:  guest,
			path: "/reservations/100/cancel",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Get(gomock.Any(), int64(100)).Return(dto.ReservationResponse{}, failure.NotFound("reservation not found"))
			},
			wantCode:  http.StatusNotFound,
			wantError: "reservation not found or cannot be canceled",
		},
		{
			name: "check in",
			who:  admin,
			path: "/reservations/100/checkin",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().CheckIn(gomock.Any(), int64(100)).Return(true, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "check out before check in",
			who:  admin,
			path: "/reservations/100/checkout",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().CheckOut(gomock.Any(), int64(100)).Return(false, nil)
			},
			wantCode:  http.StatusNotFound,
			wantError: "reservation not found or cannot be checked out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockReservation(ctrl)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPut, tt.path, nil)
			rec := serve(reservation.New(svc, otelMocks.NewOtel()), tt.who, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, rec))
			}
		})
	}
}
