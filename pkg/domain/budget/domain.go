package budget

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrDomainNotFound is returned when a domain is unknown or owned by someone else.
	ErrDomainNotFound = fmt.Errorf("domain not found: %w", domain.ErrNotFound)
	// ErrNegativeExpectedAmount is returned when a domain budget is below zero.
	ErrNegativeExpectedAmount = fmt.Errorf("expected amount cannot be negative: %w", domain.ErrValidation)
)

// Domain is a named spending category with an expected budget.
type Domain struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	ExpectedAmount decimal.Decimal
	CreatedAt      time.Time
}

// NewDomain validates and creates a spending domain for the user.
func NewDomain(userID uuid.UUID, name string, expected decimal.Decimal) (*Domain, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Join(domain.ErrValidation, errors.New("domain name is required"))
	}
	if expected.IsNegative() {
		return nil, ErrNegativeExpectedAmount
	}
	return &Domain{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		ExpectedAmount: expected,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
