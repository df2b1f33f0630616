// Package goal manages savings goals.
package goal

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain/goal"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	goalrepo "github.com/amirasaad/pocketpilot/pkg/repository/goal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// View is a goal with its derived savings rates rounded to two decimals.
type View struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	Months         int             `json:"months"`
	MonthlySavings decimal.Decimal `json:"monthly_savings"`
	DailySavings   decimal.Decimal `json:"daily_savings"`
	CreatedAt      time.Time       `json:"created_at"`
}

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger, now: time.Now}
}

// WithClock sets the time source used for creation timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create stores a new goal for the user.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	target decimal.Decimal,
	months int,
) (*goal.Goal, error) {
	g, err := goal.New(userID, name, target, months)
	if err != nil {
		return nil, err
	}
	g.CreatedAt = s.now().UTC()
	repo, err := repository.Get[goalrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, &dto.GoalCreate{
		ID:           g.ID,
		UserID:       g.UserID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		Months:       g.Months,
		CreatedAt:    g.CreatedAt,
	}); err != nil {
		s.logger.Error("Goal create failed", "userID", userID, "error", err)
		return nil, err
	}
	s.logger.Info("Goal created", "userID", userID, "goalID", g.ID)
	return g, nil
}

// List returns the user's goals newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]View, error) {
	repo, err := repository.Get[goalrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	rows, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(rows))
	for _, r := range rows {
		g := goal.Goal{TargetAmount: r.TargetAmount, Months: r.Months}
		out = append(out, View{
			ID:             r.ID,
			Name:           r.Name,
			TargetAmount:   r.TargetAmount,
			Months:         r.Months,
			MonthlySavings: g.Monthly().Round(2),
			DailySavings:   g.PerDay().Round(2),
			CreatedAt:      r.CreatedAt,
		})
	}
	return out, nil
}
