package goal_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/pocketpilot/internal/fixtures"
	"github.com/amirasaad/pocketpilot/pkg/domain/goal"
	goalsvc "github.com/amirasaad/pocketpilot/pkg/service/goal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndList(t *testing.T) {
	clock := fixtures.NewClock(time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC))
	svc := goalsvc.New(fixtures.NewUoW(t), fixtures.Logger()).WithClock(clock.Now)
	ctx := context.Background()
	user := uuid.New()

	_, err := svc.Create(ctx, user, "Laptop", decimal.NewFromInt(3000), 1)
	require.NoError(t, err)
	clock.Advance(time.Hour)
	_, err = svc.Create(ctx, user, "Trip", decimal.NewFromInt(1000), 3)
	require.NoError(t, err)

	goals, err := svc.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, goals, 2)

	assert.Equal(t, "Trip", goals[0].Name, "newest first")
	assert.Equal(t, "333.33", goals[0].MonthlySavings.String())
	assert.Equal(t, "11.11", goals[0].DailySavings.String())
	assert.Equal(t, "3000", goals[1].MonthlySavings.String())
	assert.Equal(t, "100", goals[1].DailySavings.String())

	others, err := svc.List(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestCreate_Validation(t *testing.T) {
	svc := goalsvc.New(fixtures.NewUoW(t), fixtures.Logger())
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.New(), "Car", decimal.Zero, 12)
	assert.ErrorIs(t, err, goal.ErrInvalidTarget)

	_, err = svc.Create(ctx, uuid.New(), "Car", decimal.NewFromInt(10), 0)
	assert.ErrorIs(t, err, goal.ErrInvalidMonths)
}
