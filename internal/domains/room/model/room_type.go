package model

import (
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	RoomTypeTableName  = "room_types"
	RoomTypeEntityName = "room_type"

	FieldRoomTypeIDOnType = "id"
	FieldTypeName         = "type_name"
	FieldDescription      = "description"
	FieldCapacity         = "capacity"
	FieldBasePrice        = "base_price"
	FieldImageURL         = "image_url"
)

type RoomType struct {
	ID          int64           `db:"id"          generated:"true"`
	TypeName    string          `db:"type_name"`
	Description string          `db:"description"`
	Capacity    int             `db:"capacity"`
	BasePrice   decimal.Decimal `db:"base_price"`
	ImageURL    string          `db:"image_url"`
	model.Metadata
}
