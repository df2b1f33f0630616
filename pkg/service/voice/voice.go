// Package voice serves voice budgeting plans and the voice dialogue that
// records transactions from spoken commands.
package voice

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain/voice"
	"github.com/amirasaad/pocketpilot/pkg/metrics"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	"github.com/amirasaad/pocketpilot/pkg/service/ledger"
	"github.com/google/uuid"
)

// SessionStore keeps one dialogue session per user. Get returns nil, nil
// when the user has no live session.
type SessionStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*voice.Session, error)
	Save(ctx context.Context, userID uuid.UUID, s voice.Session) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	uow      repository.UnitOfWork
	sessions SessionStore
	ledger   *ledger.Service
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func New(
	uow repository.UnitOfWork,
	sessions SessionStore,
	ledger *ledger.Service,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		uow:      uow,
		sessions: sessions,
		ledger:   ledger,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

// WithClock sets the time source for plan timestamps and the dialogue.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
