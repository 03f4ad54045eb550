package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/auth/model/dto"
	guestModel "hotel/internal/domains/guest/model"
	guestRepo "hotel/internal/domains/guest/repository"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/clock"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgEmailRegistered = "email already registered"
	msgInvalidLogin    = "invalid email or password"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID int64) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	guestRepo  guestRepo.Guest
	transactor postgres.Transactor
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	clock      clock.Clock
}

func New(
	userRepo userRepo.User,
	guestRepo guestRepo.Guest,
	transactor postgres.Transactor,
	cfg *config.Config,
	otel otel.Otel,
	jwt jwt.JWT,
	clk clock.Clock,
) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		guestRepo:  guestRepo,
		transactor: transactor,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		clock:      clk,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return shared.FilterActiveByID(userModel.NormalizeEmail(email), userModel.FieldEmail, userModel.TableName)
}

// Register creates the account and its guest profile in one transaction.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.clock.Now()

	err = s.transactor.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		exists, txErr := s.userRepo.ExistTx(ctx, tx, emailFilter(req.Email))
		if txErr != nil {
			return fmt.Errorf("failed to check if user exists: %w", txErr)
		}

		if exists {
			return failure.Conflict(msgEmailRegistered)
		}

		res.UserID, txErr = s.userRepo.InsertReturningIDTx(ctx, tx, req.ToUserModel(hashedPassword, now))
		if txErr != nil {
			if failure.IsCode(txErr, http.StatusConflict) {
				return failure.Conflict(msgEmailRegistered)
			}

			return fmt.Errorf("failed to create user: %w", txErr)
		}

		res.GuestID, txErr = s.guestRepo.InsertReturningIDTx(ctx, tx, req.ToGuestModel(res.UserID, now))
		if txErr != nil {
			return fmt.Errorf("failed to create guest: %w", txErr)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to register")

		return dto.RegisterResponse{}, err
	}

	res.Email = userModel.NormalizeEmail(req.Email)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString(msgInvalidLogin)
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString(msgInvalidLogin)
	}

	if !user.Active {
		return res, failure.BadRequestFromString("user account is deactivated")
	}

	subject := jwt.Subject{UserID: user.ID, Email: user.Email, Role: user.UserType}

	if user.UserType == constant.RoleGuest {
		guest, err := s.guestRepo.Get(ctx, shared.FilterActiveByID(user.ID, guestModel.FieldUserID, guestModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get guest profile")

			return res, fmt.Errorf("failed to get guest profile: %w", err)
		}

		subject.GuestID = guest.ID
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, subject)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := map[string]any{userModel.FieldLastLogin: s.clock.Now()}
	if err := s.userRepo.Update(ctx, lastLogin, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair, subject)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterActiveByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return failure.NotFound("user not found")
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	fields := map[string]any{
		userModel.FieldPassword:  hashedPassword,
		constant.FieldModifiedAt: s.clock.Now(),
		constant.FieldModifiedBy: username,
	}

	if err = s.userRepo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
