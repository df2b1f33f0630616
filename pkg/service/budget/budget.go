// Package budget manages spending domains and the plans that split a budget
// across them.
package budget

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain/budget"
	"github.com/amirasaad/pocketpilot/pkg/domain/savings"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	budgetrepo "github.com/amirasaad/pocketpilot/pkg/repository/budget"
	txrepo "github.com/amirasaad/pocketpilot/pkg/repository/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanRequest asks for a plan over the selected domains. Historical spend is
// read from the lookback month, which defaults to the current UTC month.
type PlanRequest struct {
	UserID      uuid.UUID
	TotalBudget decimal.Decimal
	Days        int
	DomainIDs   []uuid.UUID
	Month       int
	Year        int
}

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger, now: time.Now}
}

// WithClock sets the time source used for the default lookback month.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateDomain adds a spending domain for the user.
func (s *Service) CreateDomain(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	expected decimal.Decimal,
) (*budget.Domain, error) {
	d, err := budget.NewDomain(userID, name, expected)
	if err != nil {
		return nil, err
	}
	repo, err := repository.Get[budgetrepo.DomainRepository](s.uow)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, &dto.DomainCreate{
		ID:             d.ID,
		UserID:         d.UserID,
		Name:           d.Name,
		ExpectedAmount: d.ExpectedAmount,
	}); err != nil {
		s.logger.Error("CreateDomain failed", "userID", userID, "error", err)
		return nil, err
	}
	s.logger.Info("Domain created", "userID", userID, "domainID", d.ID)
	return d, nil
}

// ListDomains returns the user's domains, oldest first.
func (s *Service) ListDomains(ctx context.Context, userID uuid.UUID) ([]*dto.DomainRead, error) {
	repo, err := repository.Get[budgetrepo.DomainRepository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.ListByUser(ctx, userID)
}

// Preview computes a plan without storing it.
func (s *Service) Preview(ctx context.Context, req PlanRequest) (*budget.Plan, error) {
	var plan *budget.Plan
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) (err error) {
		plan, err = s.generate(ctx, uow, req)
		return
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Create computes a plan and stores it.
func (s *Service) Create(ctx context.Context, req PlanRequest) (*budget.Plan, error) {
	log := s.logger.With("context", "CreateBudgetPlan", "userID", req.UserID)
	var plan *budget.Plan
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		var err error
		plan, err = s.generate(ctx, uow, req)
		if err != nil {
			return err
		}
		plans, err := repository.Get[budgetrepo.PlanRepository](uow)
		if err != nil {
			return err
		}
		plan.ID = uuid.New()
		plan.UserID = req.UserID
		plan.CreatedAt = s.now().UTC()
		return plans.Create(ctx, &dto.BudgetPlanCreate{
			ID:          plan.ID,
			UserID:      plan.UserID,
			TotalBudget: plan.TotalBudget,
			Days:        plan.Days,
			DomainIDs:   plan.DomainIDs,
			Breakdown:   toAllocationDTOs(plan.Breakdown),
			Fallback:    plan.Fallback,
			CreatedAt:   plan.CreatedAt,
		})
	})
	if err != nil {
		log.Warn("Budget plan not created", "error", err)
		return nil, err
	}
	log.Info("Budget plan created", "planID", plan.ID, "fallback", plan.Fallback)
	return plan, nil
}

// Latest returns the newest stored plan or budget.ErrPlanNotFound.
func (s *Service) Latest(ctx context.Context, userID uuid.UUID) (*budget.Plan, error) {
	repo, err := repository.Get[budgetrepo.PlanRepository](s.uow)
	if err != nil {
		return nil, err
	}
	read, err := repo.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if read == nil {
		return nil, budget.ErrPlanNotFound
	}
	plan := &budget.Plan{
		ID:          read.ID,
		UserID:      read.UserID,
		TotalBudget: read.TotalBudget,
		Days:        read.Days,
		DomainIDs:   read.DomainIDs,
		Fallback:    read.Fallback,
		CreatedAt:   read.CreatedAt,
		Breakdown:   make([]budget.Allocation, len(read.Breakdown)),
	}
	for i, a := range read.Breakdown {
		plan.Breakdown[i] = budget.Allocation(a)
	}
	return plan, nil
}

func (s *Service) generate(ctx context.Context, uow repository.UnitOfWork, req PlanRequest) (*budget.Plan, error) {
	if !req.TotalBudget.IsPositive() || req.Days <= 0 {
		return nil, budget.ErrInvalidBudget
	}
	if err := budget.ValidateSelection(req.DomainIDs); err != nil {
		return nil, err
	}
	domains, err := repository.Get[budgetrepo.DomainRepository](uow)
	if err != nil {
		return nil, err
	}
	owned, err := domains.ListByIDs(ctx, req.UserID, req.DomainIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*dto.DomainRead, len(owned))
	for _, d := range owned {
		byID[d.ID] = d
	}

	ledger, err := repository.Get[txrepo.Repository](uow)
	if err != nil {
		return nil, err
	}
	from, to := s.lookback(req.Month, req.Year)
	totals, err := ledger.ExpenseTotalsByDomain(ctx, dto.TransactionFilter{
		UserID: req.UserID,
		From:   from,
		To:     to,
	})
	if err != nil {
		return nil, err
	}
	spent := make(map[uuid.UUID]decimal.Decimal, len(totals))
	for _, t := range totals {
		spent[t.DomainID] = t.Total
	}

	selection := make([]budget.Spend, 0, len(req.DomainIDs))
	seen := make(map[uuid.UUID]bool, len(req.DomainIDs))
	for _, id := range req.DomainIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		d, ok := byID[id]
		if !ok {
			return nil, budget.ErrDomainNotFound
		}
		selection = append(selection, budget.Spend{
			DomainID:   d.ID,
			DomainName: d.Name,
			Amount:     spent[d.ID],
		})
	}

	plan, err := budget.GeneratePlan(req.TotalBudget, req.Days, selection)
	if err != nil {
		return nil, err
	}
	plan.UserID = req.UserID
	return &plan, nil
}

func (s *Service) lookback(month, year int) (time.Time, time.Time) {
	now := s.now().UTC()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year <= 0 {
		year = now.Year()
	}
	return savings.MonthBounds(year, time.Month(month))
}

func toAllocationDTOs(in []budget.Allocation) []dto.BudgetAllocation {
	out := make([]dto.BudgetAllocation, len(in))
	for i, a := range in {
		out[i] = dto.BudgetAllocation(a)
	}
	return out
}
