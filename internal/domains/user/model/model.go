package model

import "rooming/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password_hash"
)

// User holds an account. Password is always a bcrypt hash.
type User struct {
	ID       int64  `db:"id" insert:"-"`
	Username string `db:"username"`
	Email    string `db:"email"`
	Password string `db:"password_hash"`
	model.Metadata
}
