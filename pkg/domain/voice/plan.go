package voice

import (
	"fmt"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrPlanNotFound is returned when the user has not saved a voice plan.
	ErrPlanNotFound = fmt.Errorf("voice plan not found: %w", domain.ErrNotFound)
	// ErrInvalidPlanInput is returned for a non-positive amount or duration.
	ErrInvalidPlanInput = fmt.Errorf("amount and duration must be positive: %w", domain.ErrValidation)
)

// Categories is the fixed split of a voice budget.
type Categories struct {
	Essentials decimal.Decimal `json:"essentials"`
	Food       decimal.Decimal `json:"food"`
	Transport  decimal.Decimal `json:"transport"`
	Savings    decimal.Decimal `json:"savings"`
	Misc       decimal.Decimal `json:"misc"`
}

// GeneratedPlan is derived from an amount and a duration only.
type GeneratedPlan struct {
	DailyAllowed      decimal.Decimal `json:"dailyAllowed"`
	WeeklyBudget      decimal.Decimal `json:"weeklyBudget"`
	EmergencyBuffer   decimal.Decimal `json:"emergencyBuffer"`
	SavingsSuggestion decimal.Decimal `json:"savingsSuggestion"`
	Categories        Categories      `json:"categories"`
}

// Plan is a saved voice budgeting session.
type Plan struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	OriginalText   string
	ParsedAmount   decimal.Decimal
	ParsedDuration int
	GeneratedPlan  GeneratedPlan
	CreatedAt      time.Time
}

var (
	pct10 = decimal.RequireFromString("0.10")
	pct20 = decimal.RequireFromString("0.20")
	pct50 = decimal.RequireFromString("0.50")
)

// GeneratePlan spreads amount over days and splits it 50/20/10/10/10.
// Every figure is rounded to a whole unit.
func GeneratePlan(amount decimal.Decimal, days int) (GeneratedPlan, error) {
	if !amount.IsPositive() || days <= 0 {
		return GeneratedPlan{}, ErrInvalidPlanInput
	}
	daily := amount.Div(decimal.NewFromInt(int64(days)))
	tenth := amount.Mul(pct10).Round(0)
	return GeneratedPlan{
		DailyAllowed:      daily.Round(0),
		WeeklyBudget:      daily.Mul(decimal.NewFromInt(7)).Round(0),
		EmergencyBuffer:   tenth,
		SavingsSuggestion: tenth,
		Categories: Categories{
			Essentials: amount.Mul(pct50).Round(0),
			Food:       amount.Mul(pct20).Round(0),
			Transport:  tenth,
			Savings:    tenth,
			Misc:       tenth,
		},
	}, nil
}

// NewPlan builds a plan record, recomputing the generated figures.
func NewPlan(userID uuid.UUID, text string, amount decimal.Decimal, days int) (*Plan, error) {
	generated, err := GeneratePlan(amount, days)
	if err != nil {
		return nil, err
	}
	return &Plan{
		ID:             uuid.New(),
		UserID:         userID,
		OriginalText:   text,
		ParsedAmount:   amount,
		ParsedDuration: days,
		GeneratedPlan:  generated,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
