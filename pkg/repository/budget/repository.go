package budget

import (
	"context"

	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/google/uuid"
)

// DomainRepository stores spending domains.
type DomainRepository interface {
	Create(ctx context.Context, create *dto.DomainCreate) error
	// Get returns the domain only if it belongs to userID, else nil, nil.
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.DomainRead, error)
	// ListByUser returns the user's domains, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.DomainRead, error)
	// ListByIDs returns the user's domains among ids, in no particular order.
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*dto.DomainRead, error)
}

// PlanRepository stores generated budget plans.
type PlanRepository interface {
	Create(ctx context.Context, create *dto.BudgetPlanCreate) error
	// Latest returns the newest plan of the user, or nil, nil.
	Latest(ctx context.Context, userID uuid.UUID) (*dto.BudgetPlanRead, error)
}
