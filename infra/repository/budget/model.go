package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain represents a spending category record.
type Domain struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"size:100;not null"`
	ExpectedAmount decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	CreatedAt      time.Time
}

// TableName specifies the table name for the Domain model.
func (Domain) TableName() string {
	return "domains"
}

// Plan represents a stored budget plan. Domain ids and the breakdown are
// kept as JSON text.
type Plan struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalBudget decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Days        int             `gorm:"not null"`
	DomainIDs   string          `gorm:"type:text;not null"`
	Breakdown   string          `gorm:"type:text;not null"`
	Fallback    bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the Plan model.
func (Plan) TableName() string {
	return "budget_plans"
}
