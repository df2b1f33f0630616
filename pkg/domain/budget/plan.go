package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidBudget is returned when the total budget or the number of days is not positive.
	ErrInvalidBudget = fmt.Errorf("total budget and days must be positive: %w", domain.ErrValidation)
	// ErrNoDomainsSelected is returned when a plan is requested for an empty selection.
	ErrNoDomainsSelected = fmt.Errorf("at least one domain must be selected: %w", domain.ErrValidation)
	// ErrPlanNotFound is returned when the user has no saved plan.
	ErrPlanNotFound = fmt.Errorf("budget plan not found: %w", domain.ErrNotFound)
)

// Allocation is the share of a plan assigned to one domain.
type Allocation struct {
	DomainID        uuid.UUID       `json:"domainId"`
	DomainName      string          `json:"domainName"`
	HistoricalSpent decimal.Decimal `json:"historicalSpent"`
	DailyLimit      decimal.Decimal `json:"dailyLimit"`
	TotalLimit      decimal.Decimal `json:"totalLimit"`
}

// Plan is a budget split across the selected domains.
type Plan struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TotalBudget decimal.Decimal
	Days        int
	DomainIDs   []uuid.UUID
	Breakdown   []Allocation
	Fallback    bool
	CreatedAt   time.Time
}

// Spend is the historical expense total of one selected domain.
type Spend struct {
	DomainID   uuid.UUID
	DomainName string
	Amount     decimal.Decimal
}

// GeneratePlan splits totalBudget/days across the selection in proportion
// to historical spend. With no history the split is equal and Fallback is set.
// Limits are rounded to two decimals. The result depends only on its inputs.
func GeneratePlan(totalBudget decimal.Decimal, days int, selection []Spend) (Plan, error) {
	if !totalBudget.IsPositive() || days <= 0 {
		return Plan{}, ErrInvalidBudget
	}
	if len(selection) == 0 {
		return Plan{}, ErrNoDomainsSelected
	}

	daysDec := decimal.NewFromInt(int64(days))
	dailyTotal := totalBudget.Div(daysDec)

	historical := decimal.Zero
	for _, s := range selection {
		if s.Amount.IsPositive() {
			historical = historical.Add(s.Amount)
		}
	}
	fallback := historical.IsZero()
	equalShare := decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(len(selection))))

	plan := Plan{
		TotalBudget: totalBudget,
		Days:        days,
		DomainIDs:   make([]uuid.UUID, 0, len(selection)),
		Breakdown:   make([]Allocation, 0, len(selection)),
		Fallback:    fallback,
	}
	for _, s := range selection {
		share := equalShare
		spent := decimal.Max(s.Amount, decimal.Zero)
		if !fallback {
			share = spent.Div(historical)
		}
		daily := dailyTotal.Mul(share)
		plan.DomainIDs = append(plan.DomainIDs, s.DomainID)
		plan.Breakdown = append(plan.Breakdown, Allocation{
			DomainID:        s.DomainID,
			DomainName:      s.DomainName,
			HistoricalSpent: spent,
			DailyLimit:      daily.Round(2),
			TotalLimit:      daily.Mul(daysDec).Round(2),
		})
	}
	return plan, nil
}

// ValidateSelection rejects empty selections before any lookup happens.
func ValidateSelection(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return ErrNoDomainsSelected
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return errors.Join(domain.ErrValidation, errors.New("domain id is required"))
		}
	}
	return nil
}
