package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a persisted ledger entry.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date,priority:1"`
	DomainID    *uuid.UUID      `gorm:"type:uuid;index"`
	GoalID      *uuid.UUID      `gorm:"type:uuid"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Type        string          `gorm:"type:varchar(16);not null"`
	Source      string          `gorm:"type:varchar(16);not null;default:'manual'"`
	Description string          `gorm:"type:text"`
	Date        time.Time       `gorm:"not null;index:idx_transactions_user_date,priority:2"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
