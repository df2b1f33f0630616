package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal record.
type Goal struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"size:100;not null"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Months       int             `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName specifies the table name for the Goal model.
func (Goal) TableName() string {
	return "goals"
}
