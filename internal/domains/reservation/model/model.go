package model

import (
	"time"

	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID               = "id"
	FieldGuestID          = "guest_id"
	FieldRoomID           = "room_id"
	FieldCheckInDate      = "check_in_date"
	FieldCheckOutDate     = "check_out_date"
	FieldTotalAmount      = "total_amount"
	FieldTaxServiceCharge = "tax_service_charge"
	FieldGrandTotal       = "grand_total"
	FieldStatus           = "status"
)

// Reservation holds a guest's claim on a room for a stay. The monetary fields are a
// snapshot taken at creation and are never recalculated.
type Reservation struct {
	ID               int64           `db:"id"                 generated:"true"`
	GuestID          int64           `db:"guest_id"`
	RoomID           int64           `db:"room_id"`
	CheckInDate      time.Time       `db:"check_in_date"`
	CheckOutDate     time.Time       `db:"check_out_date"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	TaxServiceCharge decimal.Decimal `db:"tax_service_charge"`
	GrandTotal       decimal.Decimal `db:"grand_total"`
	Status           Status          `db:"status"`
	model.Metadata
}

func (r Reservation) Stay() DateRange {
	return DateRange{Start: r.CheckInDate, End: r.CheckOutDate}
}
