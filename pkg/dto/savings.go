package dto

import (
	"time"

	"github.com/google/uuid"
)

// DailyStatusUpsert writes the status of one user on one UTC day.
type DailyStatusUpsert struct {
	UserID      uuid.UUID
	Date        time.Time
	StatusColor string
}

// DailyStatusRead is a stored daily status.
type DailyStatusRead struct {
	UserID      uuid.UUID
	Date        time.Time
	StatusColor string
	UpdatedAt   time.Time
}
