package voiceplan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoicePlan represents a stored voice budgeting session.
type VoicePlan struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	OriginalText   string          `gorm:"type:text"`
	ParsedAmount   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	ParsedDuration int             `gorm:"not null"`
	GeneratedPlan  string          `gorm:"type:text;not null"`
	CreatedAt      time.Time
}

// TableName specifies the table name for the VoicePlan model.
func (VoicePlan) TableName() string {
	return "voice_plans"
}
