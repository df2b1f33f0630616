package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreate is a DTO for persisting a new ledger entry.
type TransactionCreate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DomainID    *uuid.UUID
	GoalID      *uuid.UUID
	Amount      decimal.Decimal
	Type        string
	Source      string
	Description string
	Date        time.Time
}

// TransactionRead is a read-optimized DTO joined with the domain name.
type TransactionRead struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DomainID    *uuid.UUID
	DomainName  string
	GoalID      *uuid.UUID
	Amount      decimal.Decimal
	Type        string
	Source      string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// TransactionFilter narrows ledger queries. Zero times are unbounded and
// bounds are inclusive.
type TransactionFilter struct {
	UserID uuid.UUID
	Type   string
	From   time.Time
	To     time.Time
}

// RecentMatch describes an entry to look for in a trailing time window.
type RecentMatch struct {
	UserID uuid.UUID
	Amount decimal.Decimal
	Type   string
	Source string
	Since  time.Time
}

// TypeTotal is the sum of amounts for one transaction type.
type TypeTotal struct {
	Type  string
	Total decimal.Decimal
}

// DomainTotal is the sum of expense amounts for one domain.
type DomainTotal struct {
	DomainID uuid.UUID
	Total    decimal.Decimal
}
