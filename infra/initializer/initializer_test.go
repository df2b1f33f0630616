package initializer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/pocketpilot/infra/cache"
	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Log{
		Level:      int(slog.LevelDebug),
		Format:     "json",
		TimeFormat: time.RFC3339,
		Prefix:     "[test]",
	})
	logger.Info("hello", "userID", "u1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "u1", line["userID"])
	assert.Same(t, logger, slog.Default())
}

func TestNewLogger_LevelFilters(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Log{Level: int(slog.LevelWarn), Format: "text"})
	logger.Info("dropped")
	assert.Empty(t, buf.String())
	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewSessionStore_DefaultsToMemory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := newSessionStore(&config.Redis{SessionTTL: time.Minute}, logger)
	require.NoError(t, err)
	assert.IsType(t, &cache.MemorySessionStore{}, store)

	s, err := store.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestNewSessionStore_RejectsBadRedisURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := newSessionStore(&config.Redis{URL: "not-a-url"}, logger)
	assert.Error(t, err)
}
