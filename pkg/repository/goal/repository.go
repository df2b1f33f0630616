package goal

import (
	"context"

	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/google/uuid"
)

// Repository stores savings goals.
type Repository interface {
	Create(ctx context.Context, create *dto.GoalCreate) error
	// Get returns the goal only if it belongs to userID, else nil, nil.
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.GoalRead, error)
	// ListByUser returns goals newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.GoalRead, error)
	// Latest returns the most recently created goal, or nil, nil.
	Latest(ctx context.Context, userID uuid.UUID) (*dto.GoalRead, error)
}
