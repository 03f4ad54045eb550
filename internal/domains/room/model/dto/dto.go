package dto

import (
	"net/http"
	"strconv"
	"time"

	reservationModel "hotel/internal/domains/reservation/model"
	"hotel/internal/domains/reservation/pricing"
	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	moneyPlaces = 2

	queryCheckIn        = "check_in_date"
	queryCheckInShort   = "check_in"
	queryCheckOut       = "check_out_date"
	queryCheckOutShort  = "check_out"
	queryMinCapacity    = "min_capacity"
	queryNumberOfGuests = "number_of_guests"
	queryRoomTypeID     = "room_type_id"
	queryMaxPrice       = "max_price"
)

type CreateRoomRequest struct {
	RoomNumber string  `json:"room_number"  validate:"required,max=10"`
	RoomTypeID int64   `json:"room_type_id" validate:"required,gt=0"`
	Status     string  `json:"status"       validate:"omitempty,oneof=Available Occupied Maintenance OutOfService"`
	FeatureIDs []int64 `json:"feature_ids"  validate:"omitempty,dive,gt=0"`
}

func (c *CreateRoomRequest) ToModel(now time.Time, user string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = model.Status(c.Status)
	}

	return model.Room{
		RoomNumber: c.RoomNumber,
		RoomTypeID: c.RoomTypeID,
		Status:     status,
		Metadata:   gModel.NewMetadata(now, user),
	}
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Available Occupied Maintenance OutOfService"`
}

type RoomResponse struct {
	ID         int64            `json:"id"`
	RoomNumber string           `json:"room_number"`
	Status     string           `json:"status"`
	RoomType   RoomTypeResponse `json:"room_type"`
	Features   []string         `json:"features"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(m model.Room, features []string) {
	r.ID = m.ID
	r.RoomNumber = m.RoomNumber
	r.Status = string(m.Status)
	r.RoomType = RoomTypeResponse{
		ID:          m.RoomTypeID,
		TypeName:    m.TypeName,
		Description: m.Description,
		Capacity:    m.Capacity,
		BasePrice:   m.BasePrice.StringFixed(moneyPlaces),
		ImageURL:    m.ImageURL,
	}

	r.Features = features
	if r.Features == nil {
		r.Features = []string{}
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, features map[int64][]string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod, features[mod.ID])
	}
}

// SearchAvailableRoomsRequest is read from the query string. check_in/check_out and
// number_of_guests are accepted as aliases.
type SearchAvailableRoomsRequest struct {
	CheckInDate  string `json:"check_in_date"  validate:"required,date"`
	CheckOutDate string `json:"check_out_date" validate:"required,date"`
	MinCapacity  int    `json:"min_capacity"   validate:"omitempty,gte=0"`
	RoomTypeID   int64  `json:"room_type_id"   validate:"omitempty,gt=0"`
	MaxPrice     string `json:"max_price"      validate:"omitempty,decimal"`
}

func (s *SearchAvailableRoomsRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	s.CheckInDate = firstNonEmpty(query.Get(queryCheckIn), query.Get(queryCheckInShort))
	s.CheckOutDate = firstNonEmpty(query.Get(queryCheckOut), query.Get(queryCheckOutShort))

	if v, err := strconv.Atoi(firstNonEmpty(query.Get(queryMinCapacity), query.Get(queryNumberOfGuests))); err == nil {
		s.MinCapacity = v
	}

	if v, err := shared.ConvertStringToID(query.Get(queryRoomTypeID)); err == nil {
		s.RoomTypeID = v
	}

	s.MaxPrice = query.Get(queryMaxPrice)
}

func (s *SearchAvailableRoomsRequest) Stay() (reservationModel.DateRange, error) {
	return reservationModel.ParseDateRange(s.CheckInDate, s.CheckOutDate)
}

// MaxPriceValue returns the price ceiling, or nil when none was requested.
func (s *SearchAvailableRoomsRequest) MaxPriceValue() *decimal.Decimal {
	if s.MaxPrice == "" {
		return nil
	}

	price, err := decimal.NewFromString(s.MaxPrice)
	if err != nil {
		return nil
	}

	return &price
}

type AvailableRoomResponse struct {
	RoomResponse
	EstimatedTotalAmount      string `json:"estimated_total_amount"`
	EstimatedTaxServiceCharge string `json:"estimated_tax_service_charge"`
	EstimatedGrandTotal       string `json:"estimated_grand_total"`
}

type SearchAvailableRoomsResponse struct {
	CheckInDate    string                  `json:"check_in_date"`
	CheckOutDate   string                  `json:"check_out_date"`
	NumberOfNights int                     `json:"number_of_nights"`
	Rooms          []AvailableRoomResponse `json:"rooms"`
}

// FromModels prices every room for the stay so guests can compare offers before booking.
func (s *SearchAvailableRoomsResponse) FromModels(stay reservationModel.DateRange, models []model.Room, features map[int64][]string) error {
	s.CheckInDate = stay.Start.Format(constant.DateOnlyFormat)
	s.CheckOutDate = stay.End.Format(constant.DateOnlyFormat)
	s.NumberOfNights = stay.Nights()

	s.Rooms = make([]AvailableRoomResponse, len(models))
	for i, mod := range models {
		totals, err := pricing.ComputeTotals(mod.BasePrice, s.NumberOfNights)
		if err != nil {
			return err
		}

		rounded := totals.Rounded()

		s.Rooms[i].FromModel(mod, features[mod.ID])
		s.Rooms[i].EstimatedTotalAmount = rounded.Base.StringFixed(moneyPlaces)
		s.Rooms[i].EstimatedTaxServiceCharge = rounded.Tax.StringFixed(moneyPlaces)
		s.Rooms[i].EstimatedGrandTotal = rounded.Grand.StringFixed(moneyPlaces)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
