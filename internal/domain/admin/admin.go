package admin

import (
	"context"
	"time"
)

type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Repository interface {
	// EnsureExists inserts the admin unless a row with the same username is
	// already there. Existing rows are left untouched.
	EnsureExists(ctx context.Context, username, passwordHash string) error
}
