package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoicePlanCreate is a DTO for persisting a voice budgeting session.
type VoicePlanCreate struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	OriginalText   string
	ParsedAmount   decimal.Decimal
	ParsedDuration int
	// GeneratedPlan is the JSON encoding of the computed plan.
	GeneratedPlan []byte
	CreatedAt     time.Time
}

// VoicePlanRead is a stored voice plan.
type VoicePlanRead struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	OriginalText   string
	ParsedAmount   decimal.Decimal
	ParsedDuration int
	GeneratedPlan  []byte
	CreatedAt      time.Time
}
