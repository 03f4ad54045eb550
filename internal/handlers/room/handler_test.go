package room_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	availabilityMocks "hotel/internal/domains/reservation/mocks"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service/mocks"
	"hotel/internal/handlers/room"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	rooms        *mocks.MockRoom
	roomTypes    *mocks.MockRoomType
	availability *availabilityMocks.MockAvailability
}

func serve(t *testing.T, setupMock func(f fixture), req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		rooms:        mocks.NewMockRoom(ctrl),
		roomTypes:    mocks.NewMockRoomType(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
	}
	setupMock(f)

	handler := room.New(f.rooms, f.roomTypes, f.availability, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_GetRooms(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:   "filtered listing",
			target: "/rooms?status=Available&room_type_id=2",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.GetRoomsResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "keyword search",
			target: "/rooms?keyword=deluxe",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().SearchRooms(gomock.Any(), "deluxe", gomock.Any()).Return(dto.GetRoomsResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "store failure",
			target: "/rooms",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.GetRoomsResponse{}, assert.AnError)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.setupMock, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_SearchAvailableRooms(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:   "success",
			target: "/rooms/search?check_in=2026-11-01&check_out=2026-11-03&number_of_guests=2",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().SearchAvailableRooms(gomock.Any(), dto.SearchAvailableRoomsRequest{
					CheckInDate:  "2026-11-01",
					CheckOutDate: "2026-11-03",
					MinCapacity:  2,
				}).Return(dto.SearchAvailableRoomsResponse{NumberOfNights: 2}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing dates",
			target:    "/rooms/search",
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed date",
			target:    "/rooms/search?check_in_date=01-11-2026&check_out_date=2026-11-03",
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "inverted stay",
			target: "/rooms/search?check_in_date=2026-11-03&check_out_date=2026-11-01",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().SearchAvailableRooms(gomock.Any(), gomock.Any()).
					Return(dto.SearchAvailableRoomsResponse{}, failure.BadRequestFromString("check-out date must be after check-in date"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.setupMock, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_CheckAvailability(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(f fixture)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "free",
			target: "/rooms/5/availability?check_in_date=2026-11-01&check_out_date=2026-11-03",
			setupMock: func(f fixture) {
				f.availability.EXPECT().IsAvailable(gomock.Any(), int64(5), gomock.Any(), gomock.Any(), nil).Return(true)
			},
			wantCode: http.StatusOK,
			wantBody: `"available":true`,
		},
		{
			name:   "taken",
			target: "/rooms/5/availability?check_in_date=2026-11-01&check_out_date=2026-11-03&exclude_reservation_id=9",
			setupMock: func(f fixture) {
				f.availability.EXPECT().IsAvailable(gomock.Any(), int64(5), gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
			},
			wantCode: http.StatusOK,
			wantBody: `"available":false`,
		},
		{
			name:      "missing dates",
			target:    "/rooms/5/availability",
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid room id",
			target:    "/rooms/x/availability?check_in_date=2026-11-01&check_out_date=2026-11-03",
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.setupMock, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_RoomMutations(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:   "create room",
			method: http.MethodPost,
			target: "/rooms",
			body:   `{"room_number":"101","room_type_id":1}`,
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.RoomResponse{ID: 1, RoomNumber: "101"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:   "duplicate room number",
			method: http.MethodPost,
			target: "/rooms",
			body:   `{"room_number":"101","room_type_id":1}`,
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.RoomResponse{}, failure.Conflict("room number already exists"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "get missing room",
			method: http.MethodGet,
			target: "/rooms/99",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), int64(99)).Return(dto.RoomResponse{}, failure.NotFound("room not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "delete room",
			method: http.MethodDelete,
			target: "/rooms/1",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "list room types",
			method: http.MethodGet,
			target: "/rooms/types",
			setupMock: func(f fixture) {
				f.roomTypes.EXPECT().GetAll(gomock.Any()).Return([]dto.RoomTypeResponse{{ID: 1}}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.setupMock, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
