package savings

import (
	"context"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/google/uuid"
)

// Repository stores one daily status per user and UTC day.
type Repository interface {
	// Upsert inserts or overwrites the status for (user, date).
	Upsert(ctx context.Context, upsert *dto.DailyStatusUpsert) error
	// ListBetween returns statuses with from <= date <= to, ascending.
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*dto.DailyStatusRead, error)
}
