package dto

import (
	"mime/multipart"
	"time"

	"hotel/internal/domains/room/model"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"

	"github.com/shopspring/decimal"
)

type CreateRoomTypeRequest struct {
	TypeName    string `json:"type_name"   validate:"required,max=50"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Capacity    int    `json:"capacity"    validate:"required,gt=0"`
	BasePrice   string `json:"base_price"  validate:"required,decimal"`
}

func (c *CreateRoomTypeRequest) ToModel(now time.Time, user string) (model.RoomType, error) {
	price, err := decimal.NewFromString(c.BasePrice)
	if err != nil {
		return model.RoomType{}, failure.BadRequestFromString("base price must be a decimal amount")
	}

	return model.RoomType{
		TypeName:    c.TypeName,
		Description: c.Description,
		Capacity:    c.Capacity,
		BasePrice:   price.Round(moneyPlaces),
		Metadata:    gModel.NewMetadata(now, user),
	}, nil
}

type UploadRoomTypeImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

type RoomTypeResponse struct {
	ID          int64  `json:"id"`
	TypeName    string `json:"type_name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	BasePrice   string `json:"base_price"`
	ImageURL    string `json:"image_url"`
	*gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(m model.RoomType) {
	r.ID = m.ID
	r.TypeName = m.TypeName
	r.Description = m.Description
	r.Capacity = m.Capacity
	r.BasePrice = m.BasePrice.StringFixed(moneyPlaces)
	r.ImageURL = m.ImageURL
	r.Metadata = &gDto.Metadata{}
	r.Metadata.FromModel(m.Metadata)
}

func RoomTypesFromModels(models []model.RoomType) []RoomTypeResponse {
	res := make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
