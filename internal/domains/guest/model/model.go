package model

import (
	"fmt"

	"hotel/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldTitle       = "title"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldPhoneNumber = "phone_number"
	FieldAddress     = "address"

	userTableName = "users"
)

type Guest struct {
	ID          int64  `db:"id"           generated:"true"`
	UserID      int64  `db:"user_id"`
	Title       string `db:"title"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	PhoneNumber string `db:"phone_number"`
	Address     string `db:"address"`
	Email       string `db:"email"        table:"users"`
	model.Metadata
}

func (Guest) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %[1]s ON %[1]s.id = %[2]s.%[3]s", userTableName, TableName, FieldUserID)
}

func (g Guest) FullName() string {
	if g.Title == "" {
		return g.FirstName + " " + g.LastName
	}

	return g.Title + " " + g.FirstName + " " + g.LastName
}
