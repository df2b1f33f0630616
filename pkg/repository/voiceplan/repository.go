package voiceplan

import (
	"context"

	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/google/uuid"
)

// Repository stores voice budgeting sessions.
type Repository interface {
	Create(ctx context.Context, create *dto.VoicePlanCreate) error
	// ListByUser returns plans newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.VoicePlanRead, error)
	// Latest returns the newest plan, or nil, nil.
	Latest(ctx context.Context, userID uuid.UUID) (*dto.VoicePlanRead, error)
}
