package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new user.
type UserCreate struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Password     string
	Theme        string
	Language     string
	ProfilePhoto string
}

// UserUpdate represents the data that can be updated for a user.
type UserUpdate struct {
	Email        *string
	Password     *string
	Theme        *string
	Language     *string
	ProfilePhoto *string
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             uuid.UUID
	Username       string
	HashedPassword string
	Email          string
	Theme          string
	Language       string
	ProfilePhoto   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
