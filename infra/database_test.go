package infra_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/amirasaad/pocketpilot/infra"
	"github.com/amirasaad/pocketpilot/internal/fixtures"
	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var tables = []string{
	"users", "domains", "goals", "transactions",
	"daily_savings_status", "budget_plans", "voice_plans",
}

func TestNewDBConnection_RequiresURL(t *testing.T) {
	_, err := infra.NewDBConnection(nil, "test")
	require.Error(t, err)
	_, err = infra.NewDBConnection(&config.DB{}, "test")
	require.Error(t, err)
}

func TestNewDBConnection_SQLiteMigrates(t *testing.T) {
	db, err := infra.NewDBConnection(&config.DB{Url: fixtures.MemoryDSN()}, "development")
	require.NoError(t, err)
	for _, table := range tables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestNewDBConnection_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "pocketpilot",
				"POSTGRES_PASSWORD": "pocketpilot",
				"POSTGRES_DB":       "pocketpilot",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	url := fmt.Sprintf("postgres://pocketpilot:pocketpilot@%s/pocketpilot?sslmode=disable", endpoint)

	db, err := infra.NewDBConnection(&config.DB{Url: url}, "test")
	require.NoError(t, err)
	for _, table := range tables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
