package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DomainCreate is a DTO for a new spending domain.
type DomainCreate struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	ExpectedAmount decimal.Decimal
}

// DomainRead is a read-optimized view of a spending domain.
type DomainRead struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	ExpectedAmount decimal.Decimal
	CreatedAt      time.Time
}

// BudgetAllocation is one row of a stored plan breakdown.
type BudgetAllocation struct {
	DomainID        uuid.UUID       `json:"domainId"`
	DomainName      string          `json:"domainName"`
	HistoricalSpent decimal.Decimal `json:"historicalSpent"`
	DailyLimit      decimal.Decimal `json:"dailyLimit"`
	TotalLimit      decimal.Decimal `json:"totalLimit"`
}

// BudgetPlanCreate is a DTO for persisting a generated budget plan.
type BudgetPlanCreate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TotalBudget decimal.Decimal
	Days        int
	DomainIDs   []uuid.UUID
	Breakdown   []BudgetAllocation
	Fallback    bool
	CreatedAt   time.Time
}

// BudgetPlanRead is a stored budget plan.
type BudgetPlanRead struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TotalBudget decimal.Decimal
	Days        int
	DomainIDs   []uuid.UUID
	Breakdown   []BudgetAllocation
	Fallback    bool
	CreatedAt   time.Time
}
