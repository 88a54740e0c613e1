package models

import "time"

// UserDB represents a row of the users table.
type UserDB struct {
	Username     string    `json:"username" db:"username"`     // Unique username, identity key
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Signup timestamp
}
