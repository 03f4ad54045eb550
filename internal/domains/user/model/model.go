package model

import (
	"strings"
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldUserType  = "user_type"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// NormalizeEmail is the form addresses are stored and looked up in, matching the LOWER(email) unique index.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User is a login account. Guests own exactly one guest profile; admins have none.
type User struct {
	ID        int64      `db:"id"         generated:"true"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	UserType  string     `db:"user_type"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
