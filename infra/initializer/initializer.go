package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/pocketpilot/infra"
	"github.com/amirasaad/pocketpilot/infra/cache"
	infra_repository "github.com/amirasaad/pocketpilot/infra/repository"
	"github.com/amirasaad/pocketpilot/pkg/app"
	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/amirasaad/pocketpilot/pkg/metrics"
	"github.com/amirasaad/pocketpilot/pkg/service/voice"
	"github.com/redis/go-redis/v9"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	deps.Uow = infra_repository.NewUoW(db)

	deps.Sessions, err = newSessionStore(cfg.Redis, logger)
	if err != nil {
		return nil, err
	}

	deps.Metrics = metrics.New()
	return deps, nil
}

// newSessionStore uses Redis when REDIS_URL is set and memory otherwise.
func newSessionStore(cfg *config.Redis, logger *slog.Logger) (voice.SessionStore, error) {
	if cfg == nil || cfg.URL == "" {
		ttl := 10 * time.Minute
		if cfg != nil && cfg.SessionTTL > 0 {
			ttl = cfg.SessionTTL
		}
		logger.Info("Using in-memory voice session store", "ttl", ttl)
		return cache.NewMemorySessionStore(ttl), nil
	}

	store, err := cache.NewRedisSessionStore(
		cfg.URL,
		func(o *redis.Options) {
			o.PoolSize = cfg.PoolSize
			o.DialTimeout = cfg.DialTimeout
			o.ReadTimeout = cfg.ReadTimeout
			o.WriteTimeout = cfg.WriteTimeout
		},
		cfg.KeyPrefix,
		cfg.SessionTTL,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis session store: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout+time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to reach Redis: %w", err)
	}
	logger.Info("Using Redis voice session store", "prefix", cfg.KeyPrefix)
	return store, nil
}
