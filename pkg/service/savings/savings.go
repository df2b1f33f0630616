// Package savings evaluates daily savings performance against the user's
// most recent goal and keeps one status per UTC day.
package savings

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain/goal"
	"github.com/amirasaad/pocketpilot/pkg/domain/savings"
	"github.com/amirasaad/pocketpilot/pkg/domain/transaction"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/metrics"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	goalrepo "github.com/amirasaad/pocketpilot/pkg/repository/goal"
	savingsrepo "github.com/amirasaad/pocketpilot/pkg/repository/savings"
	txrepo "github.com/amirasaad/pocketpilot/pkg/repository/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoryEntry is the stored status of one day.
type HistoryEntry struct {
	Date        time.Time      `json:"date"`
	StatusColor savings.Status `json:"status_color"`
}

type Service struct {
	uow     repository.UnitOfWork
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(uow repository.UnitOfWork, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{uow: uow, logger: logger, metrics: m, now: time.Now}
}

// WithClock sets the time source that defines "today".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Evaluate classifies today's net savings. Without a goal it returns the
// gray status and writes nothing; otherwise today's status is upserted.
func (s *Service) Evaluate(ctx context.Context, userID uuid.UUID) (*savings.Evaluation, error) {
	log := s.logger.With("context", "EvaluateDailyPerformance", "userID", userID)
	now := s.now().UTC()
	var eval *savings.Evaluation

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		goals, err := repository.Get[goalrepo.Repository](uow)
		if err != nil {
			return err
		}
		latest, err := goals.Latest(ctx, userID)
		if err != nil {
			return err
		}
		if latest == nil {
			eval = &savings.Evaluation{
				Status:       savings.StatusGray,
				GoalPerDay:   decimal.Zero,
				IncomePerDay: decimal.Zero,
				Tooltip:      savings.Tooltip(savings.StatusGray),
			}
			return nil
		}
		g := goal.Goal{TargetAmount: latest.TargetAmount, Months: latest.Months}
		goalPerDay := g.PerDay()

		ledger, err := repository.Get[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		from, to := savings.DayBounds(now)
		totals, err := ledger.TotalsByType(ctx, dto.TransactionFilter{UserID: userID, From: from, To: to})
		if err != nil {
			return err
		}
		incomePerDay := decimal.Zero
		for _, t := range totals {
			switch transaction.Type(t.Type) {
			case transaction.TypeIncome:
				incomePerDay = incomePerDay.Add(t.Total)
			case transaction.TypeExpense:
				incomePerDay = incomePerDay.Sub(t.Total)
			}
		}

		status := savings.Classify(incomePerDay, goalPerDay)
		eval = &savings.Evaluation{
			Status:       status,
			GoalPerDay:   goalPerDay,
			IncomePerDay: incomePerDay,
			Tooltip:      savings.Tooltip(status),
		}

		statuses, err := repository.Get[savingsrepo.Repository](uow)
		if err != nil {
			return err
		}
		return statuses.Upsert(ctx, &dto.DailyStatusUpsert{
			UserID:      userID,
			Date:        savings.DayStart(now),
			StatusColor: string(status),
		})
	})
	if err != nil {
		log.Error("Daily performance failed", "error", err)
		return nil, err
	}
	s.metrics.DailyStatus(string(eval.Status))
	log.Debug("Daily performance evaluated", "status", eval.Status)
	return eval, nil
}

// History returns the stored statuses of a calendar year in ascending date
// order. A zero year means the current one.
func (s *Service) History(ctx context.Context, userID uuid.UUID, year int) ([]HistoryEntry, error) {
	if year <= 0 {
		year = s.now().UTC().Year()
	}
	repo, err := repository.Get[savingsrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	from, to := savings.YearBounds(year)
	rows, err := repo.ListBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, HistoryEntry{Date: r.Date, StatusColor: savings.Status(r.StatusColor)})
	}
	return out, nil
}
