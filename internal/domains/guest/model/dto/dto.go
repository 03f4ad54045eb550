package dto

import (
	"time"

	"hotel/internal/domains/guest/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

type CreateGuestRequest struct {
	UserID      int64  `json:"user_id"      validate:"required,gt=0"`
	Title       string `json:"title"        validate:"omitempty,max=10"`
	FirstName   string `json:"first_name"   validate:"required,max=100"`
	LastName    string `json:"last_name"    validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Address     string `json:"address"      validate:"omitempty,max=255"`
}

func (c *CreateGuestRequest) ToModel(now time.Time, user string) model.Guest {
	return model.Guest{
		UserID:      c.UserID,
		Title:       c.Title,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		Metadata:    gModel.NewMetadata(now, user),
	}
}

type UpdateGuestRequest struct {
	Title       string `db:"title"        json:"title"        validate:"omitempty,max=10"`
	FirstName   string `db:"first_name"   json:"first_name"   validate:"omitempty,max=100"`
	LastName    string `db:"last_name"    json:"last_name"    validate:"omitempty,max=100"`
	PhoneNumber string `db:"phone_number" json:"phone_number" validate:"omitempty,max=20"`
	Address     string `db:"address"      json:"address"      validate:"omitempty,max=255"`
}

type GuestResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	Title       string `json:"title"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	gDto.Metadata
}

func (g *GuestResponse) FromModel(m model.Guest) {
	g.ID = m.ID
	g.UserID = m.UserID
	g.Email = m.Email
	g.Title = m.Title
	g.FirstName = m.FirstName
	g.LastName = m.LastName
	g.FullName = m.FullName()
	g.PhoneNumber = m.PhoneNumber
	g.Address = m.Address
	g.Metadata.FromModel(m.Metadata)
}
