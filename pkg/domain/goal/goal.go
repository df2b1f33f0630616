package goal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DaysPerMonth is the month length used for every savings-rate derivation.
const DaysPerMonth = 30

var (
	// ErrGoalNotFound is returned when the user has no matching goal.
	ErrGoalNotFound = fmt.Errorf("goal not found: %w", domain.ErrNotFound)
	// ErrInvalidTarget is returned when the target amount is not positive.
	ErrInvalidTarget = fmt.Errorf("target amount must be positive: %w", domain.ErrValidation)
	// ErrInvalidMonths is returned when the duration is not positive.
	ErrInvalidMonths = fmt.Errorf("months must be positive: %w", domain.ErrValidation)
)

// Goal is a savings target to reach over a number of months.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Months       int
	CreatedAt    time.Time
}

// New validates and creates a goal.
func New(userID uuid.UUID, name string, target decimal.Decimal, months int) (*Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Join(domain.ErrValidation, errors.New("goal name is required"))
	}
	if !target.IsPositive() {
		return nil, ErrInvalidTarget
	}
	if months <= 0 {
		return nil, ErrInvalidMonths
	}
	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		TargetAmount: target,
		Months:       months,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Monthly is the amount that has to be saved each month.
func (g *Goal) Monthly() decimal.Decimal {
	if g.Months <= 0 {
		return decimal.Zero
	}
	return g.TargetAmount.Div(decimal.NewFromInt(int64(g.Months)))
}

// PerDay is the amount that has to be saved each day.
func (g *Goal) PerDay() decimal.Decimal {
	return g.Monthly().Div(decimal.NewFromInt(DaysPerMonth))
}
