package transaction

import (
	"context"

	"github.com/amirasaad/pocketpilot/pkg/dto"
)

// Repository is the append-only ledger store.
type Repository interface {
	// Create appends a ledger entry.
	Create(ctx context.Context, create *dto.TransactionCreate) error

	// List returns entries matching the filter, newest first, joined with
	// the domain name.
	List(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error)

	// ExistsRecent reports whether an entry with the same amount, type and
	// source was recorded at or after match.Since.
	ExistsRecent(ctx context.Context, match dto.RecentMatch) (bool, error)

	// TotalsByType sums amounts grouped by type.
	TotalsByType(ctx context.Context, filter dto.TransactionFilter) ([]dto.TypeTotal, error)

	// ExpenseTotalsByDomain sums expense amounts grouped by domain.
	ExpenseTotalsByDomain(ctx context.Context, filter dto.TransactionFilter) ([]dto.DomainTotal, error)
}
