package config

import (
	"os"
	"path/filepath"
	"strings"
)

// FindEnvFile walks up from the working directory looking for filename.
// An empty filename means .env.
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	curr, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(curr, filename)
		if _, err = os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			return "", os.ErrNotExist
		}
		curr = parent
	}
}

// IsPostgres reports whether a database URL selects the postgres driver.
func (d *DB) IsPostgres() bool {
	return strings.HasPrefix(d.Url, "postgres://") || strings.HasPrefix(d.Url, "postgresql://")
}
