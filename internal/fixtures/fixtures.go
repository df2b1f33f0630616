// Package fixtures provides shared helpers for tests that run against a
// throwaway in-memory database.
package fixtures

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/pocketpilot/infra"
	infrarepo "github.com/amirasaad/pocketpilot/infra/repository"
	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a migrated in-memory sqlite database private to the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := infra.NewDBConnection(&config.DB{Url: MemoryDSN()}, "test")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewUoW returns a unit of work over a fresh test database.
func NewUoW(t testing.TB) *infrarepo.UoW {
	t.Helper()
	return infrarepo.NewUoW(NewDB(t))
}

// MemoryDSN returns a unique shared-cache sqlite DSN.
func MemoryDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
}

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Clock is a settable time source.
type Clock struct {
	T time.Time
}

// NewClock starts a clock at t.
func NewClock(t time.Time) *Clock {
	return &Clock{T: t}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
