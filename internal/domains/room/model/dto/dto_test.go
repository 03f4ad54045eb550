package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
)

func TestSearchAvailableRoomsRequest_FromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  dto.SearchAvailableRoomsRequest
	}{
		{
			name:  "long parameter names",
			query: "check_in_date=2025-06-01&check_out_date=2025-06-03&min_capacity=2&room_type_id=4&max_price=150.00",
			want: dto.SearchAvailableRoomsRequest{
				CheckInDate: "2025-06-01", CheckOutDate: "2025-06-03", MinCapacity: 2, RoomTypeID: 4, MaxPrice: "150.00",
			},
		},
		{
			name:  "short aliases",
			query: "check_in=2025-06-01&check_out=2025-06-03&number_of_guests=3",
			want:  dto.SearchAvailableRoomsRequest{CheckInDate: "2025-06-01", CheckOutDate: "2025-06-03", MinCapacity: 3},
		},
		{
			name:  "invalid numbers are ignored",
			query: "check_in=2025-06-01&check_out=2025-06-03&min_capacity=many&room_type_id=-1",
			want:  dto.SearchAvailableRoomsRequest{CheckInDate: "2025-06-01", CheckOutDate: "2025-06-03"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/rooms/search?"+tt.query, nil)

			var got dto.SearchAvailableRoomsRequest
			got.FromRequest(req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchAvailableRoomsRequest_MaxPriceValue(t *testing.T) {
	assert.Nil(t, (&dto.SearchAvailableRoomsRequest{}).MaxPriceValue())

	price := (&dto.SearchAvailableRoomsRequest{MaxPrice: "99.90"}).MaxPriceValue()
	require.NotNil(t, price)
	assert.True(t, price.Equal(decimal.RequireFromString("99.9")))
}

func TestSearchAvailableRoomsResponse_FromModels(t *testing.T) {
	req := dto.SearchAvailableRoomsRequest{CheckInDate: "2025-06-01", CheckOutDate: "2025-06-02"}

	stay, err := req.Stay()
	require.NoError(t, err)

	rooms := []model.Room{{ID: 1, RoomNumber: "101", BasePrice: decimal.RequireFromString("85.50")}}

	var res dto.SearchAvailableRoomsResponse
	require.NoError(t, res.FromModels(stay, rooms, map[int64][]string{}))

	assert.Equal(t, 1, res.NumberOfNights)
	require.Len(t, res.Rooms, 1)
	assert.Equal(t, "85.50", res.Rooms[0].EstimatedTotalAmount)
	assert.Equal(t, "7.70", res.Rooms[0].EstimatedTaxServiceCharge)
	assert.Equal(t, "93.20", res.Rooms[0].EstimatedGrandTotal)
	assert.Equal(t, []string{}, res.Rooms[0].Features)
}

func TestCreateRoomRequest_ToModel_DefaultsToAvailable(t *testing.T) {
	req := dto.CreateRoomRequest{RoomNumber: "201", RoomTypeID: 2}

	m := req.ToModel(stayNow, "admin")

	assert.Equal(t, model.StatusAvailable, m.Status)
	assert.Equal(t, "admin", m.CreatedBy)
}

var stayNow = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
