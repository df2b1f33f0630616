package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load sources the first env file found among envFilePath, each searched
// upwards from the working directory, then ./.env when none is found.
// Variables already set in the process win over file values.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	if !loadFirstEnvFile(logger, envFilePath) {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file in working directory")
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"server_port", cfg.Server.Port,
		"db", maskValue(cfg.DB.Url),
		"redis", maskValue(cfg.Redis.URL),
		"rate_limit", fmt.Sprintf("%d/%s", cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
		"jwt_expiry", cfg.Auth.Jwt.Expiry,
		"sms_duplicate_window", cfg.Savings.SMSDuplicateWindow,
	)
	return &cfg, nil
}

func loadFirstEnvFile(logger *slog.Logger, paths []string) bool {
	for _, path := range paths {
		found, err := FindEnvFile(path)
		if err != nil {
			continue
		}
		if err := godotenv.Load(found); err != nil {
			logger.Warn("Skipping unreadable environment file", "path", found, "error", err)
			continue
		}
		logger.Info("Loaded environment file", "path", found)
		return true
	}
	return false
}

func (a *App) validate() error {
	switch {
	case a.Auth.Jwt.Expiry <= 0:
		return fmt.Errorf("AUTH_JWT_EXPIRY must be positive, got %s", a.Auth.Jwt.Expiry)
	case a.RateLimit.MaxRequests <= 0 || a.RateLimit.Window <= 0:
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	case a.Redis.SessionTTL <= 0:
		return fmt.Errorf("REDIS_SESSION_TTL must be positive, got %s", a.Redis.SessionTTL)
	case a.Savings.SMSDuplicateWindow < 0:
		return fmt.Errorf("SAVINGS_SMS_DUPLICATE_WINDOW cannot be negative")
	}
	if _, ok := logFormats[a.Log.Format]; !ok {
		return fmt.Errorf("LOG_FORMAT %q is not one of json, text, logfmt", a.Log.Format)
	}
	return nil
}

var logFormats = map[string]struct{}{"json": {}, "text": {}, "logfmt": {}}

func maskValue(key string) string {
	switch {
	case key == "":
		return ""
	case len(key) <= 6:
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
