package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/reservation/model"
	"hotel/internal/domains/reservation/model/dto"
	"hotel/internal/domains/reservation/pricing"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		GuestID:      7,
		RoomID:       3,
		CheckInDate:  "2025-06-01",
		CheckOutDate: "2025-06-04",
	}

	stay, err := req.Stay()
	require.NoError(t, err)

	totals, err := pricing.ComputeTotals(decimal.RequireFromString("100.00"), stay.Nights())
	require.NoError(t, err)

	now := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	res := req.ToModel(stay, totals, now, "12")

	assert.Equal(t, int64(7), res.GuestID)
	assert.Equal(t, int64(3), res.RoomID)
	assert.Equal(t, model.StatusConfirmed, res.Status)
	assert.Equal(t, "300.00", res.TotalAmount.StringFixed(2))
	assert.Equal(t, "27.00", res.TaxServiceCharge.StringFixed(2))
	assert.Equal(t, "327.00", res.GrandTotal.StringFixed(2))
	assert.Equal(t, now, res.CreatedAt)
	assert.Equal(t, "12", res.CreatedBy)
	assert.Nil(t, res.DeletedAt)
}

func TestReservationResponse_FromModel(t *testing.T) {
	m := model.Reservation{
		ID:               42,
		GuestID:          7,
		RoomID:           3,
		CheckInDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:     time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		TotalAmount:      decimal.RequireFromString("300"),
		TaxServiceCharge: decimal.RequireFromString("27"),
		GrandTotal:       decimal.RequireFromString("327"),
		Status:           model.StatusCheckedIn,
	}

	var res dto.ReservationResponse
	res.FromModel(m)

	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, "2025-06-01", res.CheckInDate)
	assert.Equal(t, "2025-06-04", res.CheckOutDate)
	assert.Equal(t, 3, res.NumberOfNights)
	assert.Equal(t, "300.00", res.TotalAmount)
	assert.Equal(t, "27.00", res.TaxServiceCharge)
	assert.Equal(t, "327.00", res.GrandTotal)
	assert.Equal(t, "CheckedIn", res.Status)

	list := dto.FromModels([]model.Reservation{m, m})
	assert.Len(t, list, 2)
}

func TestAvailabilityRequest_FromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/rooms/3/availability?check_in_date=2025-06-01&check_out_date=2025-06-05&exclude_reservation_id=9", nil)

	req := dto.AvailabilityRequest{}
	req.FromRequest(r)

	assert.Equal(t, "2025-06-01", req.CheckInDate)
	assert.Equal(t, "2025-06-05", req.CheckOutDate)
	require.NotNil(t, req.ExcludeReservationID)
	assert.Equal(t, int64(9), *req.ExcludeReservationID)

	r = httptest.NewRequest(http.MethodGet, "/v1/rooms/3/availability?exclude_reservation_id=abc", nil)

	req = dto.AvailabilityRequest{}
	req.FromRequest(r)

	assert.Nil(t, req.ExcludeReservationID)
}
