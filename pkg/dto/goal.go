package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalCreate is a DTO for a new savings goal.
type GoalCreate struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Months       int
	CreatedAt    time.Time
}

// GoalRead is a stored savings goal.
type GoalRead struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Months       int
	CreatedAt    time.Time
}
