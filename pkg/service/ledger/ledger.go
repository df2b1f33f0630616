// Package ledger records income and expense entries and aggregates them.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/amirasaad/pocketpilot/pkg/domain/savings"
	"github.com/amirasaad/pocketpilot/pkg/domain/transaction"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/metrics"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	budgetrepo "github.com/amirasaad/pocketpilot/pkg/repository/budget"
	goalrepo "github.com/amirasaad/pocketpilot/pkg/repository/goal"
	txrepo "github.com/amirasaad/pocketpilot/pkg/repository/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultSMSDuplicateWindow is how far back an identical SMS entry counts as a duplicate.
const DefaultSMSDuplicateWindow = 60 * time.Second

// ErrInvalidPeriod is returned for a month outside 1..12 or a negative year.
var ErrInvalidPeriod = fmt.Errorf("month must be between 1 and 12: %w", domain.ErrValidation)

// Entry is a transaction submitted by a client.
type Entry struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Type        transaction.Type
	Source      transaction.Source
	DomainID    *uuid.UUID
	GoalID      *uuid.UUID
	Description string
}

// Period selects a UTC calendar month or year. Zero values mean unfiltered;
// a month without a year refers to the current year.
type Period struct {
	Month int
	Year  int
}

type Service struct {
	uow       repository.UnitOfWork
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
	smsWindow time.Duration
}

type Option func(*Service)

// WithClock sets the time source used for entry dates and the duplicate window.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSMSDuplicateWindow overrides DefaultSMSDuplicateWindow.
func WithSMSDuplicateWindow(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.smsWindow = d
		}
	}
}

// WithMetrics records counters on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(uow repository.UnitOfWork, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		uow:       uow,
		logger:    logger,
		now:       time.Now,
		smsWindow: DefaultSMSDuplicateWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record validates and appends an entry. Referenced domains and goals must
// belong to the user. SMS entries identical in amount and type to one
// recorded within the duplicate window are rejected.
func (s *Service) Record(ctx context.Context, e Entry) (*transaction.Transaction, error) {
	log := s.logger.With("context", "Record", "userID", e.UserID, "source", e.Source)
	now := s.now()
	tx, err := transaction.New(e.UserID, e.Amount, e.Type, e.Source, e.DomainID, e.GoalID, e.Description, now)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if tx.DomainID != nil {
			domains, err := repository.Get[budgetrepo.DomainRepository](uow)
			if err != nil {
				return err
			}
			d, err := domains.Get(ctx, tx.UserID, *tx.DomainID)
			if err != nil {
				return err
			}
			if d == nil {
				return transaction.ErrDomainNotFound
			}
		}
		if tx.GoalID != nil {
			goals, err := repository.Get[goalrepo.Repository](uow)
			if err != nil {
				return err
			}
			g, err := goals.Get(ctx, tx.UserID, *tx.GoalID)
			if err != nil {
				return err
			}
			if g == nil {
				return transaction.ErrGoalNotFound
			}
		}

		ledger, err := repository.Get[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		if tx.Source == transaction.SourceSMS {
			dup, err := ledger.ExistsRecent(ctx, dto.RecentMatch{
				UserID: tx.UserID,
				Amount: tx.Amount,
				Type:   string(tx.Type),
				Source: string(tx.Source),
				Since:  now.Add(-s.smsWindow).UTC(),
			})
			if err != nil {
				return err
			}
			if dup {
				return transaction.ErrDuplicateTransaction
			}
		}
		return ledger.Create(ctx, &dto.TransactionCreate{
			ID:          tx.ID,
			UserID:      tx.UserID,
			DomainID:    tx.DomainID,
			GoalID:      tx.GoalID,
			Amount:      tx.Amount,
			Type:        string(tx.Type),
			Source:      string(tx.Source),
			Description: tx.Description,
			Date:        tx.Date,
		})
	})
	if err != nil {
		if errors.Is(err, transaction.ErrDuplicateTransaction) {
			s.metrics.DuplicateRejected()
		}
		log.Warn("Transaction rejected", "error", err)
		return nil, err
	}
	s.metrics.TransactionRecorded(string(tx.Type), string(tx.Source))
	log.Info("Transaction recorded", "transactionID", tx.ID, "type", tx.Type, "amount", tx.Amount)
	return tx, nil
}

// RecordSMS saves an entry confirmed from the SMS simulator.
func (s *Service) RecordSMS(
	ctx context.Context,
	userID uuid.UUID,
	amount decimal.Decimal,
	typ transaction.Type,
	domainID *uuid.UUID,
) (*transaction.Transaction, error) {
	return s.Record(ctx, Entry{
		UserID:      userID,
		Amount:      amount,
		Type:        typ,
		Source:      transaction.SourceSMS,
		DomainID:    domainID,
		Description: transaction.SMSDescription,
	})
}

// List returns the user's entries newest first, optionally limited to a
// calendar month or year.
func (s *Service) List(ctx context.Context, userID uuid.UUID, p Period) ([]*dto.TransactionRead, error) {
	filter := dto.TransactionFilter{UserID: userID}
	if p.Month != 0 || p.Year != 0 {
		if p.Month < 0 || p.Month > 12 || p.Year < 0 {
			return nil, ErrInvalidPeriod
		}
		year := p.Year
		if year == 0 {
			year = s.now().UTC().Year()
		}
		if p.Month == 0 {
			filter.From, _ = savings.YearBounds(year)
			filter.To = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond)
		} else {
			filter.From, filter.To = savings.MonthBounds(year, time.Month(p.Month))
		}
	}
	ledger, err := repository.Get[txrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return ledger.List(ctx, filter)
}
