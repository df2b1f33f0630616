package transaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrAmountMustBePositive is returned when a transaction amount is zero or negative.
	ErrAmountMustBePositive = fmt.Errorf("amount must be positive: %w", domain.ErrValidation)
	// ErrInvalidType is returned for a type other than income or expense.
	ErrInvalidType = fmt.Errorf("type must be income or expense: %w", domain.ErrValidation)
	// ErrInvalidSource is returned for a source other than manual, voice or sms.
	ErrInvalidSource = fmt.Errorf("source must be manual, voice or sms: %w", domain.ErrValidation)
	// ErrExpenseRequiresDomain is returned when an expense carries no domain reference.
	ErrExpenseRequiresDomain = fmt.Errorf("domain is required for expenses: %w", domain.ErrValidation)
	// ErrDuplicateTransaction is returned when the same SMS transaction was
	// recorded within the duplicate window.
	ErrDuplicateTransaction = fmt.Errorf("duplicate transaction detected: %w", domain.ErrDuplicate)
	// ErrDomainNotFound is returned when the referenced domain is unknown or
	// belongs to another user.
	ErrDomainNotFound = fmt.Errorf("domain not found: %w", domain.ErrNotFound)
	// ErrGoalNotFound is returned when the referenced goal is unknown or
	// belongs to another user.
	ErrGoalNotFound = fmt.Errorf("goal not found: %w", domain.ErrNotFound)
)

// Type is the direction of a transaction.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is a known transaction type.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Source records how a transaction entered the ledger.
type Source string

const (
	SourceManual Source = "manual"
	SourceVoice  Source = "voice"
	SourceSMS    Source = "sms"
)

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	switch s {
	case SourceManual, SourceVoice, SourceSMS:
		return true
	}
	return false
}

// SMSDescription is stored on transactions created through the SMS simulator.
const SMSDescription = "Saved via SMS Simulation"

// Transaction is an immutable ledger entry.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DomainID    *uuid.UUID
	GoalID      *uuid.UUID
	Amount      decimal.Decimal
	Type        Type
	Source      Source
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// AmountPlaces is the number of decimal places amounts are stored with.
const AmountPlaces = 4

// New validates the inputs and builds a Transaction dated at the given instant.
// The amount is rounded to AmountPlaces. An empty source defaults to manual.
func New(
	userID uuid.UUID,
	amount decimal.Decimal,
	typ Type,
	source Source,
	domainID, goalID *uuid.UUID,
	description string,
	at time.Time,
) (*Transaction, error) {
	amount = amount.Round(AmountPlaces)
	if !amount.IsPositive() {
		return nil, ErrAmountMustBePositive
	}
	if !typ.Valid() {
		return nil, ErrInvalidType
	}
	if source == "" {
		source = SourceManual
	}
	if !source.Valid() {
		return nil, ErrInvalidSource
	}
	if typ == TypeExpense && (domainID == nil || *domainID == uuid.Nil) {
		return nil, ErrExpenseRequiresDomain
	}
	if userID == uuid.Nil {
		return nil, errors.Join(domain.ErrValidation, errors.New("user id is required"))
	}
	at = at.UTC()
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		DomainID:    domainID,
		GoalID:      goalID,
		Amount:      amount,
		Type:        typ,
		Source:      source,
		Description: description,
		Date:        at,
		CreatedAt:   at,
	}, nil
}

// Signed returns the amount as a contribution to the balance: positive for
// income, negative for expense.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
