package domain

import "time"

// User models a registered account. PasswordHash is a bcrypt digest; the
// plaintext password is never stored and never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
