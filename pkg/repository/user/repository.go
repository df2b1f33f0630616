package user

import (
	"context"

	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/google/uuid"
)

// Repository stores accounts. Lookups return nil, nil when nothing matches
// so callers decide between 404 and 401.
type Repository interface {
	Create(ctx context.Context, create *dto.UserCreate) error
	// Update applies only the non-nil fields of update.
	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error

	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)
	GetByUsername(ctx context.Context, username string) (*dto.UserRead, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
