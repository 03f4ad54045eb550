package model

import (
	"fmt"

	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomTypeID = "room_type_id"
	FieldStatus     = "status"
)

type Status string

const (
	StatusAvailable    Status = "Available"
	StatusOccupied     Status = "Occupied"
	StatusMaintenance  Status = "Maintenance"
	StatusOutOfService Status = "OutOfService"
)

// Room is read together with its room type. Fields tagged with the room types table are
// selected through the join and never written on insert.
type Room struct {
	ID          int64           `db:"id"           generated:"true"`
	RoomNumber  string          `db:"room_number"`
	RoomTypeID  int64           `db:"room_type_id"`
	Status      Status          `db:"status"`
	TypeName    string          `db:"type_name"    table:"room_types" column:"type_name"`
	Description string          `db:"description"  table:"room_types" column:"description"`
	Capacity    int             `db:"capacity"     table:"room_types" column:"capacity"`
	BasePrice   decimal.Decimal `db:"base_price"   table:"room_types" column:"base_price"`
	ImageURL    string          `db:"image_url"    table:"room_types" column:"image_url"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %[1]s ON %[1]s.%[2]s = %[3]s.%[4]s AND %[1]s.deleted_at IS NULL",
		RoomTypeTableName, FieldRoomTypeIDOnType, TableName, FieldRoomTypeID)
}

func (r Room) IsBookable() bool {
	return r.ID != 0 && !r.IsDeleted() && r.Status == StatusAvailable
}
