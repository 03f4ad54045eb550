package dto

import (
	"time"

	"hotel/infras/jwt"
	guestModel "hotel/internal/domains/guest/model"
	userModel "hotel/internal/domains/user/model"
	"hotel/shared/constant"
	gModel "hotel/shared/model"
)

// RegisterRequest creates a guest account together with its guest profile.
type RegisterRequest struct {
	Email       string `json:"email"        validate:"required,email,max=255"`
	Password    string `json:"password"     validate:"required,min=8,max=72"`
	Title       string `json:"title"        validate:"omitempty,max=10"`
	FirstName   string `json:"first_name"   validate:"required,max=100"`
	LastName    string `json:"last_name"    validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Address     string `json:"address"      validate:"omitempty,max=255"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string, now time.Time) userModel.User {
	return userModel.User{
		Email:    userModel.NormalizeEmail(r.Email),
		Password: hashedPassword,
		UserType: constant.RoleGuest,
		Active:   true,
		Metadata: gModel.NewMetadata(now, constant.ContextSystem),
	}
}

func (r *RegisterRequest) ToGuestModel(userID int64, now time.Time) guestModel.Guest {
	return guestModel.Guest{
		UserID:      userID,
		Title:       r.Title,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		Metadata:    gModel.NewMetadata(now, constant.ContextSystem),
	}
}

type RegisterResponse struct {
	UserID  int64  `json:"user_id"`
	GuestID int64  `json:"guest_id"`
	Email   string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       int64  `json:"user_id"`
	GuestID      int64  `json:"guest_id,omitempty"`
	Role         string `json:"role"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair, subject jwt.Subject) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
	l.UserID = subject.UserID
	l.GuestID = subject.GuestID
	l.Role = subject.Role
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}
