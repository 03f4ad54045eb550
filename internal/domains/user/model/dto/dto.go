package dto

import (
	"time"

	"hotel/internal/domains/user/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

// CreateUserRequest is used by admins to open accounts directly, including other admin accounts.
type CreateUserRequest struct {
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	UserType string `json:"user_type" validate:"omitempty,oneof=Admin Guest"`
}

func (r *CreateUserRequest) ToModel(hashedPassword string, now time.Time, user string) model.User {
	userType := r.UserType
	if userType == "" {
		userType = constant.RoleGuest
	}

	return model.User{
		Email:    model.NormalizeEmail(r.Email),
		Password: hashedPassword,
		UserType: userType,
		Active:   true,
		Metadata: gModel.NewMetadata(now, user),
	}
}

type UpdateUserStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type UserResponse struct {
	UserID    int64   `json:"user_id"`
	Email     string  `json:"email"`
	UserType  string  `json:"user_type"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(m model.User) {
	r.UserID = m.ID
	r.Email = m.Email
	r.UserType = m.UserType
	r.Active = m.Active
	r.LastLogin = nil

	if m.LastLogin != nil {
		lastLogin := timezone.Format(*m.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
