package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "DATABASE_URL", "REDIS_URL", "APP_ENV", "RATE_LIMIT_MAX_REQUESTS",
		"SAVINGS_SMS_DUPLICATE_WINDOW", "REDIS_SESSION_TTL", "AUTH_JWT_EXPIRY")
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "file::memory:?cache=shared", cfg.DB.Url)
	assert.False(t, cfg.DB.IsPostgres())
	assert.Equal(t, 24*time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, 10*time.Minute, cfg.Redis.SessionTTL)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 60*time.Second, cfg.Savings.SMSDuplicateWindow)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/pocketpilot")
	t.Setenv("SAVINGS_SMS_DUPLICATE_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "5")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)
	assert.True(t, cfg.DB.IsPostgres())
	assert.Equal(t, 30*time.Second, cfg.Savings.SMSDuplicateWindow)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
}

func TestLoadRequiresSecret(t *testing.T) {
	unsetEnv(t, "AUTH_JWT_SECRET")

	_, err := Load("does-not-exist.env")
	require.Error(t, err)
}

func TestFindEnvFile(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("X=1\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	found, err := FindEnvFile(".env.test")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env.test"), found)

	_, err = FindEnvFile(".env.missing")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, (&DB{Url: "postgresql://x"}).IsPostgres())
	assert.False(t, (&DB{Url: "pocketpilot.db"}).IsPostgres())
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", maskValue(""))
	assert.Equal(t, "****", maskValue("abc"))
	assert.Equal(t, "re****6379", maskValue("redis://localhost:6379"))
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"RATE_LIMIT_MAX_REQUESTS", "0"},
		{"REDIS_SESSION_TTL", "0s"},
		{"SAVINGS_SMS_DUPLICATE_WINDOW", "-1s"},
		{"AUTH_JWT_EXPIRY", "0s"},
		{"LOG_FORMAT", "xml"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv("AUTH_JWT_SECRET", "test-secret")
			t.Setenv(tc.key, tc.value)
			_, err := Load("does-not-exist.env")
			require.Error(t, err)
		})
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pp.env"),
		[]byte("AUTH_JWT_SECRET=from-file\nSERVER_PORT=7070\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	unsetEnv(t, "AUTH_JWT_SECRET", "SERVER_PORT")

	cfg, err := Load("missing.env", "pp.env")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Auth.Jwt.Secret)
	assert.Equal(t, 7070, cfg.Server.Port)
}
