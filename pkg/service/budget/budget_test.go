package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/pocketpilot/internal/fixtures"
	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/amirasaad/pocketpilot/pkg/domain/budget"
	"github.com/amirasaad/pocketpilot/pkg/domain/transaction"
	budgetsvc "github.com/amirasaad/pocketpilot/pkg/service/budget"
	"github.com/amirasaad/pocketpilot/pkg/service/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	budgets *budgetsvc.Service
	ledger  *ledger.Service
	clock   *fixtures.Clock
	user    uuid.UUID
}

func newEnv(t *testing.T) *env {
	t.Helper()
	uow := fixtures.NewUoW(t)
	clock := fixtures.NewClock(time.Date(2025, time.May, 20, 8, 0, 0, 0, time.UTC))
	return &env{
		budgets: budgetsvc.New(uow, fixtures.Logger()).WithClock(clock.Now),
		ledger:  ledger.New(uow, fixtures.Logger(), ledger.WithClock(clock.Now)),
		clock:   clock,
		user:    uuid.New(),
	}
}

func (e *env) domain(t *testing.T, name string) uuid.UUID {
	t.Helper()
	d, err := e.budgets.CreateDomain(context.Background(), e.user, name, decimal.NewFromInt(1000))
	require.NoError(t, err)
	return d.ID
}

func (e *env) spend(t *testing.T, domainID uuid.UUID, amount int64) {
	t.Helper()
	_, err := e.ledger.Record(context.Background(), ledger.Entry{
		UserID: e.user, Amount: decimal.NewFromInt(amount), Type: transaction.TypeExpense, DomainID: &domainID,
	})
	require.NoError(t, err)
}

func TestDomains(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.domain(t, "Food")
	e.domain(t, "Travel")

	list, err := e.budgets.ListDomains(ctx, e.user)
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = e.budgets.CreateDomain(ctx, e.user, "Debt", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, budget.ErrNegativeExpectedAmount)

	_, err = e.budgets.CreateDomain(ctx, e.user, "  ", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrValidation)

	others, err := e.budgets.ListDomains(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestPreview_Proportional(t *testing.T) {
	e := newEnv(t)
	food := e.domain(t, "Food")
	travel := e.domain(t, "Travel")
	e.spend(t, food, 300)
	e.spend(t, travel, 100)

	plan, err := e.budgets.Preview(context.Background(), budgetsvc.PlanRequest{
		UserID:      e.user,
		TotalBudget: decimal.NewFromInt(1000),
		Days:        10,
		DomainIDs:   []uuid.UUID{food, travel},
	})
	require.NoError(t, err)
	assert.False(t, plan.Fallback)
	require.Len(t, plan.Breakdown, 2)
	assert.Equal(t, "75", plan.Breakdown[0].DailyLimit.String())
	assert.Equal(t, "750", plan.Breakdown[0].TotalLimit.String())
	assert.Equal(t, "25", plan.Breakdown[1].DailyLimit.String())
	assert.True(t, plan.Breakdown[0].HistoricalSpent.Equal(decimal.NewFromInt(300)))
}

func TestPreview_FallbackOutsideLookbackMonth(t *testing.T) {
	e := newEnv(t)
	food := e.domain(t, "Food")
	travel := e.domain(t, "Travel")
	e.spend(t, food, 300)

	plan, err := e.budgets.Preview(context.Background(), budgetsvc.PlanRequest{
		UserID:      e.user,
		TotalBudget: decimal.NewFromInt(1000),
		Days:        10,
		DomainIDs:   []uuid.UUID{food, travel},
		Month:       4,
		Year:        2025,
	})
	require.NoError(t, err)
	assert.True(t, plan.Fallback)
	assert.Equal(t, "50", plan.Breakdown[0].DailyLimit.String())
	assert.Equal(t, "50", plan.Breakdown[1].DailyLimit.String())
}

func TestPreview_Validation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	food := e.domain(t, "Food")

	_, err := e.budgets.Preview(ctx, budgetsvc.PlanRequest{
		UserID: e.user, TotalBudget: decimal.Zero, Days: 10, DomainIDs: []uuid.UUID{food},
	})
	assert.ErrorIs(t, err, budget.ErrInvalidBudget)

	_, err = e.budgets.Preview(ctx, budgetsvc.PlanRequest{
		UserID: e.user, TotalBudget: decimal.NewFromInt(10), Days: 10,
	})
	assert.ErrorIs(t, err, budget.ErrNoDomainsSelected)

	foreign, err := e.budgets.CreateDomain(ctx, uuid.New(), "Rent", decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = e.budgets.Preview(ctx, budgetsvc.PlanRequest{
		UserID: e.user, TotalBudget: decimal.NewFromInt(10), Days: 10, DomainIDs: []uuid.UUID{food, foreign.ID},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateAndLatest(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	food := e.domain(t, "Food")

	_, err := e.budgets.Latest(ctx, e.user)
	require.ErrorIs(t, err, budget.ErrPlanNotFound)

	first, err := e.budgets.Create(ctx, budgetsvc.PlanRequest{
		UserID: e.user, TotalBudget: decimal.NewFromInt(300), Days: 3, DomainIDs: []uuid.UUID{food},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)

	e.clock.Advance(time.Minute)
	second, err := e.budgets.Create(ctx, budgetsvc.PlanRequest{
		UserID: e.user, TotalBudget: decimal.NewFromInt(700), Days: 7, DomainIDs: []uuid.UUID{food},
	})
	require.NoError(t, err)

	latest, err := e.budgets.Latest(ctx, e.user)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, 7, latest.Days)
	require.Len(t, latest.Breakdown, 1)
	assert.Equal(t, "Food", latest.Breakdown[0].DomainName)
	assert.Equal(t, "100", latest.Breakdown[0].DailyLimit.String())
	assert.Equal(t, []uuid.UUID{food}, latest.DomainIDs)
}
