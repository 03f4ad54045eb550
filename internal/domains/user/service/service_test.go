package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	userMocks "hotel/internal/domains/user/mocks"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/clock"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

var (
	now     = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	errMiss = errors.New("cache miss")
)

func admin() model.User {
	return model.User{ID: 2, Email: "frontdesk@hotel.local", UserType: constant.RoleAdmin, Active: true}
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel(), clock.Fixed(now))

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.CreateUserRequest{Email: "FrontDesk@Hotel.local", Password: "secret123", UserType: constant.RoleAdmin}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u model.User) (int64, error) {
						assert.Equal(t, "frontdesk@hotel.local", u.Email)
						assert.Equal(t, constant.RoleAdmin, u.UserType)
						assert.True(t, u.Active)
						assert.NotEqual(t, "secret123", u.Password)
						assert.Equal(t, now, u.CreatedAt)

						return 2, nil
					})
				mockCache.EXPECT().Get(gomock.Any(), "user:get:2", gomock.Any()).Return(errMiss)
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin(), nil)
				mockCache.EXPECT().Save(gomock.Any(), "user:get:2", gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "email taken",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "unique violation on insert",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(0), failure.Conflict("user already exists"))
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(2), res.UserID)
			assert.Equal(t, constant.RoleAdmin, res.UserType)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel(), clock.Fixed(now))

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "user:get:2", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*dto.UserResponse) = dto.UserResponse{UserID: 2, Email: "frontdesk@hotel.local"}

						return nil
					})
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "user:get:2", gomock.Any()).Return(errMiss)
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), 2)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "frontdesk@hotel.local", res.Email)
		})
	}
}

func TestUserService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel(), clock.Fixed(now))

	lastLogin := now.Add(-time.Hour)
	guest := model.User{ID: 3, Email: "jane@example.com", UserType: constant.RoleGuest, Active: true, LastLogin: &lastLogin}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errMiss).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.User{admin(), guest}, nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 1}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.Users, 2)
	assert.Nil(t, res.Users[0].LastLogin)
	assert.NotNil(t, res.Users[1].LastLogin)
}

func TestUserService_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel(), clock.Fixed(now))

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	inactive := false

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "deactivate",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, false, fields[model.FieldActive])
						assert.Equal(t, "1", fields[constant.FieldModifiedBy])

						return nil
					})
				mockCache.EXPECT().Delete(gomock.Any(), "user:get:3").Return(nil)
			},
		},
		{
			name: "unknown user",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
			err := svc.SetActive(ctx, dto.UpdateUserStatusRequest{Active: &inactive}, 3)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}
