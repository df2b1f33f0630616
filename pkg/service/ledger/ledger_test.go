package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/pocketpilot/internal/fixtures"
	"github.com/amirasaad/pocketpilot/pkg/domain"
	"github.com/amirasaad/pocketpilot/pkg/domain/transaction"
	"github.com/amirasaad/pocketpilot/pkg/dto"
	"github.com/amirasaad/pocketpilot/pkg/parser"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	budgetrepo "github.com/amirasaad/pocketpilot/pkg/repository/budget"
	goalrepo "github.com/amirasaad/pocketpilot/pkg/repository/goal"
	"github.com/amirasaad/pocketpilot/pkg/service/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	svc   *ledger.Service
	uow   repository.UnitOfWork
	clock *fixtures.Clock
	user  uuid.UUID
}

func newEnv(t *testing.T) *env {
	t.Helper()
	uow := fixtures.NewUoW(t)
	clock := fixtures.NewClock(time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC))
	return &env{
		svc:   ledger.New(uow, fixtures.Logger(), ledger.WithClock(clock.Now)),
		uow:   uow,
		clock: clock,
		user:  uuid.New(),
	}
}

func (e *env) domain(t *testing.T, userID uuid.UUID, name string, expected int64) uuid.UUID {
	t.Helper()
	repo, err := repository.Get[budgetrepo.DomainRepository](e.uow)
	require.NoError(t, err)
	id := uuid.New()
	require.NoError(t, repo.Create(context.Background(), &dto.DomainCreate{
		ID: id, UserID: userID, Name: name, ExpectedAmount: decimal.NewFromInt(expected),
	}))
	return id
}

func (e *env) goal(t *testing.T, userID uuid.UUID) uuid.UUID {
	t.Helper()
	repo, err := repository.Get[goalrepo.Repository](e.uow)
	require.NoError(t, err)
	id := uuid.New()
	require.NoError(t, repo.Create(context.Background(), &dto.GoalCreate{
		ID: id, UserID: userID, Name: "Bike", TargetAmount: decimal.NewFromInt(3000), Months: 1,
		CreatedAt: e.clock.Now(),
	}))
	return id
}

func (e *env) record(t *testing.T, amount int64, typ transaction.Type, domainID *uuid.UUID) {
	t.Helper()
	_, err := e.svc.Record(context.Background(), ledger.Entry{
		UserID: e.user, Amount: decimal.NewFromInt(amount), Type: typ, DomainID: domainID,
	})
	require.NoError(t, err)
}

func TestRecord(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	food := e.domain(t, e.user, "Food", 500)

	tx, err := e.svc.Record(ctx, ledger.Entry{
		UserID: e.user, Amount: decimal.NewFromInt(120), Type: transaction.TypeExpense, DomainID: &food,
	})
	require.NoError(t, err)
	assert.Equal(t, transaction.SourceManual, tx.Source)
	assert.Equal(t, e.clock.Now(), tx.Date)

	t.Run("expense without domain", func(t *testing.T) {
		_, err := e.svc.Record(ctx, ledger.Entry{
			UserID: e.user, Amount: decimal.NewFromInt(10), Type: transaction.TypeExpense,
		})
		require.ErrorIs(t, err, transaction.ErrExpenseRequiresDomain)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("foreign domain", func(t *testing.T) {
		other := e.domain(t, uuid.New(), "Rent", 900)
		_, err := e.svc.Record(ctx, ledger.Entry{
			UserID: e.user, Amount: decimal.NewFromInt(10), Type: transaction.TypeExpense, DomainID: &other,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown goal", func(t *testing.T) {
		missing := uuid.New()
		_, err := e.svc.Record(ctx, ledger.Entry{
			UserID: e.user, Amount: decimal.NewFromInt(10), Type: transaction.TypeIncome, GoalID: &missing,
		})
		assert.ErrorIs(t, err, transaction.ErrGoalNotFound)
	})

	t.Run("income to own goal", func(t *testing.T) {
		g := e.goal(t, e.user)
		_, err := e.svc.Record(ctx, ledger.Entry{
			UserID: e.user, Amount: decimal.NewFromInt(10), Type: transaction.TypeIncome, GoalID: &g,
		})
		assert.NoError(t, err)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := e.svc.Record(ctx, ledger.Entry{
			UserID: e.user, Amount: decimal.Zero, Type: transaction.TypeIncome,
		})
		assert.ErrorIs(t, err, transaction.ErrAmountMustBePositive)
	})
}

func TestRecordSMS_DuplicateWindow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	amount := decimal.NewFromInt(250)

	tx, err := e.svc.RecordSMS(ctx, e.user, amount, transaction.TypeIncome, nil)
	require.NoError(t, err)
	assert.Equal(t, transaction.SMSDescription, tx.Description)

	e.clock.Advance(60 * time.Second)
	_, err = e.svc.RecordSMS(ctx, e.user, amount, transaction.TypeIncome, nil)
	require.ErrorIs(t, err, transaction.ErrDuplicateTransaction)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = e.svc.RecordSMS(ctx, e.user, decimal.NewFromInt(251), transaction.TypeIncome, nil)
	require.NoError(t, err, "different amount is not a duplicate")

	e.clock.Advance(61 * time.Second)
	_, err = e.svc.RecordSMS(ctx, e.user, amount, transaction.TypeIncome, nil)
	assert.NoError(t, err)
}

func TestRecordSMS_DuplicateWithFractionalAmount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	amount := decimal.RequireFromString("99.123456")

	tx, err := e.svc.RecordSMS(ctx, e.user, amount, transaction.TypeIncome, nil)
	require.NoError(t, err)
	assert.Equal(t, "99.1235", tx.Amount.String())

	e.clock.Advance(30 * time.Second)
	_, err = e.svc.RecordSMS(ctx, e.user, amount, transaction.TypeIncome, nil)
	require.ErrorIs(t, err, transaction.ErrDuplicateTransaction)
}

func TestRecord_ManualIsNeverDuplicate(t *testing.T) {
	e := newEnv(t)
	e.record(t, 40, transaction.TypeIncome, nil)
	e.record(t, 40, transaction.TypeIncome, nil)

	list, err := e.svc.List(context.Background(), e.user, ledger.Period{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestList(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	food := e.domain(t, e.user, "Food", 500)

	e.clock.T = time.Date(2025, time.February, 27, 12, 0, 0, 0, time.UTC)
	e.record(t, 100, transaction.TypeIncome, nil)
	e.clock.T = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	e.record(t, 30, transaction.TypeExpense, &food)
	e.clock.T = time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)
	e.record(t, 20, transaction.TypeExpense, &food)

	all, err := e.svc.List(ctx, e.user, ledger.Period{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].Amount.Equal(decimal.NewFromInt(20)), "newest first")
	assert.Equal(t, "Food", all[0].DomainName)
	assert.Empty(t, all[2].DomainName)

	march, err := e.svc.List(ctx, e.user, ledger.Period{Month: 3, Year: 2025})
	require.NoError(t, err)
	assert.Len(t, march, 2)

	year, err := e.svc.List(ctx, e.user, ledger.Period{Year: 2025})
	require.NoError(t, err)
	assert.Len(t, year, 3)

	_, err = e.svc.List(ctx, e.user, ledger.Period{Month: 13})
	assert.ErrorIs(t, err, ledger.ErrInvalidPeriod)

	other, err := e.svc.List(ctx, uuid.New(), ledger.Period{})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSummary(t *testing.T) {
	e := newEnv(t)
	food := e.domain(t, e.user, "Food", 500)
	travel := e.domain(t, e.user, "Travel", 200)
	e.domain(t, e.user, "Gifts", 50)

	e.record(t, 1000, transaction.TypeIncome, nil)
	e.record(t, 120, transaction.TypeExpense, &food)
	e.record(t, 80, transaction.TypeExpense, &food)
	e.record(t, 250, transaction.TypeExpense, &travel)

	sum, err := e.svc.Summary(context.Background(), e.user)
	require.NoError(t, err)
	assert.True(t, sum.TotalIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, sum.TotalExpense.Equal(decimal.NewFromInt(450)))
	assert.True(t, sum.CurrentBalance.Equal(sum.TotalIncome.Sub(sum.TotalExpense)))

	require.Len(t, sum.DomainBreakdown, 3)
	byName := map[string]ledger.DomainBreakdown{}
	for _, d := range sum.DomainBreakdown {
		byName[d.Name] = d
	}
	assert.True(t, byName["Food"].SpentAmount.Equal(decimal.NewFromInt(200)))
	assert.True(t, byName["Food"].RemainingAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, byName["Travel"].RemainingAmount.Equal(decimal.NewFromInt(-50)))
	assert.True(t, byName["Gifts"].SpentAmount.IsZero())
}

func TestSummary_Empty(t *testing.T) {
	e := newEnv(t)
	sum, err := e.svc.Summary(context.Background(), e.user)
	require.NoError(t, err)
	assert.True(t, sum.CurrentBalance.IsZero())
	assert.NotNil(t, sum.DomainBreakdown)
	assert.Empty(t, sum.DomainBreakdown)
}

func TestParseSMS(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	food := e.domain(t, e.user, "Food", 500)

	got, err := e.svc.ParseSMS(ctx, e.user, "Rs. 1,250.50 debited from your account for food order")
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("1250.50")))
	assert.Equal(t, "expense", got.Type)
	require.NotNil(t, got.DomainID)
	assert.Equal(t, food, *got.DomainID)

	_, err = e.svc.ParseSMS(ctx, e.user, "hello there, see you at 5")
	assert.ErrorIs(t, err, parser.ErrNotFinancial)
	assert.ErrorIs(t, err, parser.ErrNeedsClarification)
}
