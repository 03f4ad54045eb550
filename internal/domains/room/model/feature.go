package model

const (
	FeatureTableName           = "room_features"
	FeatureAssignmentTableName = "room_feature_assignments"
)

// RoomFeature is one amenity name attached to a room.
type RoomFeature struct {
	RoomID int64  `db:"room_id"`
	Name   string `db:"name"`
}

type FeatureAssignment struct {
	RoomID    int64 `db:"room_id"`
	FeatureID int64 `db:"feature_id"`
}
