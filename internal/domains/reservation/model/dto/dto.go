package dto

import (
	"net/http"
	"time"

	"hotel/internal/domains/reservation/model"
	"hotel/internal/domains/reservation/pricing"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

const (
	moneyPlaces = 2

	queryCheckIn              = "check_in_date"
	queryCheckOut             = "check_out_date"
	queryExcludeReservationID = "exclude_reservation_id"
)

type CreateReservationRequest struct {
	GuestID      int64  `json:"guest_id"       validate:"required,gt=0"`
	RoomID       int64  `json:"room_id"        validate:"required,gt=0"`
	CheckInDate  string `json:"check_in_date"  validate:"required,date"`
	CheckOutDate string `json:"check_out_date" validate:"required,date"`
}

func (c *CreateReservationRequest) Stay() (model.DateRange, error) {
	return model.ParseDateRange(c.CheckInDate, c.CheckOutDate)
}

func (c *CreateReservationRequest) ToModel(stay model.DateRange, totals pricing.Totals, now time.Time, user string) model.Reservation {
	rounded := totals.Rounded()

	return model.Reservation{
		GuestID:          c.GuestID,
		RoomID:           c.RoomID,
		CheckInDate:      stay.Start,
		CheckOutDate:     stay.End,
		TotalAmount:      rounded.Base,
		TaxServiceCharge: rounded.Tax,
		GrandTotal:       rounded.Grand,
		Status:           model.StatusConfirmed,
		Metadata:         gModel.NewMetadata(now, user),
	}
}

type ReservationResponse struct {
	ID               int64  `json:"id"`
	GuestID          int64  `json:"guest_id"`
	RoomID           int64  `json:"room_id"`
	CheckInDate      string `json:"check_in_date"`
	CheckOutDate     string `json:"check_out_date"`
	NumberOfNights   int    `json:"number_of_nights"`
	TotalAmount      string `json:"total_amount"`
	TaxServiceCharge string `json:"tax_service_charge"`
	GrandTotal       string `json:"grand_total"`
	Status           string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.ID = m.ID
	r.GuestID = m.GuestID
	r.RoomID = m.RoomID
	r.CheckInDate = m.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = m.CheckOutDate.Format(constant.DateOnlyFormat)
	r.NumberOfNights = m.Stay().Nights()
	r.TotalAmount = m.TotalAmount.StringFixed(moneyPlaces)
	r.TaxServiceCharge = m.TaxServiceCharge.StringFixed(moneyPlaces)
	r.GrandTotal = m.GrandTotal.StringFixed(moneyPlaces)
	r.Status = string(m.Status)
	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.Reservation) []ReservationResponse {
	res := make([]ReservationResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type AvailabilityRequest struct {
	CheckInDate          string `json:"check_in_date"          validate:"required,date"`
	CheckOutDate         string `json:"check_out_date"         validate:"required,date"`
	ExcludeReservationID *int64 `json:"exclude_reservation_id" validate:"omitempty,gt=0"`
}

// FromRequest reads the query string. An unparsable exclusion id is ignored.
func (a *AvailabilityRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	a.CheckInDate = query.Get(queryCheckIn)
	a.CheckOutDate = query.Get(queryCheckOut)

	if id, err := shared.ConvertStringToID(query.Get(queryExcludeReservationID)); err == nil {
		a.ExcludeReservationID = &id
	}
}

type AvailabilityResponse struct {
	RoomID       int64  `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}

type StatusChangeResponse struct {
	ID      int64  `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}
