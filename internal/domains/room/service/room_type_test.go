package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/clock"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

const (
	oldImageURL = "https://cdn.example.com/room_type/old.png"
	newImageURL = "https://cdn.example.com/room_type/new.png"
)

func TestRoomTypeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.NewRoomType(mockRepo, &config.Config{}, mockCache, s3Mocks.NewMockS3(ctrl), mocks.NewOtel(), clock.Fixed(now))

	tests := []struct {
		name      string
		req       dto.CreateRoomTypeRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "success",
			req:  dto.CreateRoomTypeRequest{TypeName: "Deluxe", Capacity: 2, BasePrice: "120.5"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.RoomType) (int64, error) {
						assert.Equal(t, "120.50", m.BasePrice.StringFixed(2))

						return 4, nil
					})
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
				mockCache.EXPECT().Get(gomock.Any(), "room_type:get:4", gomock.Any()).Return(errMiss)
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.RoomType{ID: 4, TypeName: "Deluxe", Capacity: 2, BasePrice: deluxeFee}, nil)
				mockCache.EXPECT().Save(gomock.Any(), "room_type:get:4", gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate name",
			req:  dto.CreateRoomTypeRequest{TypeName: "Deluxe", Capacity: 2, BasePrice: "120"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "unparsable price",
			req:       dto.CreateRoomTypeRequest{TypeName: "Deluxe", Capacity: 2, BasePrice: "abc"},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(4), res.ID)
		})
	}
}

func TestRoomTypeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.NewRoomType(mockRepo, &config.Config{}, mockCache, s3Mocks.NewMockS3(ctrl), mocks.NewOtel(), clock.Fixed(now))

	mockCache.EXPECT().Get(gomock.Any(), "room_type:gets", gomock.Any()).Return(errMiss)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.RoomType, error) {
			assert.Equal(t, "room_types.type_name", params.SortBy)

			return []model.RoomType{
				{ID: 1, TypeName: "Deluxe", BasePrice: deluxeFee},
				{ID: 2, TypeName: "Standard", BasePrice: deluxeFee},
			}, nil
		})
	mockCache.EXPECT().Save(gomock.Any(), "room_type:gets", gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.GetAll(context.Background())

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "100.00", res[1].BasePrice)
}

func TestRoomTypeService_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	svc := service.NewRoomType(mockRepo, &config.Config{}, mockCache, mockS3, mocks.NewOtel(), clock.Fixed(now))

	current := model.RoomType{ID: 4, TypeName: "Deluxe", BasePrice: deluxeFee, ImageURL: oldImageURL}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "room type not found",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "replaces the previous image",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				mockS3.EXPECT().UploadImage(gomock.Any(), model.RoomTypeEntityName, gomock.Any(), gomock.Any()).
					Return(newImageURL, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, newImageURL, fields[model.FieldImageURL])

						return nil
					})
				mockS3.EXPECT().ObjectNameFromURL(model.RoomTypeEntityName, oldImageURL).Return("old.png")
				mockS3.EXPECT().DeleteObject(gomock.Any(), model.RoomTypeEntityName, "old.png").Return(nil)
				mockCache.EXPECT().Delete(gomock.Any(), "room_type:get:4").Return(nil)
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(3)
			},
		},
		{
			name: "store failure removes the new upload",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				mockS3.EXPECT().UploadImage(gomock.Any(), model.RoomTypeEntityName, gomock.Any(), gomock.Any()).
					Return(newImageURL, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errStore)
				mockS3.EXPECT().ObjectNameFromURL(model.RoomTypeEntityName, newImageURL).Return("new.png")
				mockS3.EXPECT().DeleteObject(gomock.Any(), model.RoomTypeEntityName, "new.png").Return(nil)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.UploadImage(context.Background(), 4, dto.UploadRoomTypeImageRequest{})

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, newImageURL, res.ImageURL)
		})
	}
}
