package infra

import (
	"errors"
	"time"

	infrarepo "github.com/amirasaad/pocketpilot/infra/repository"
	"github.com/amirasaad/pocketpilot/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the process-wide database handle. postgres:// URLs
// use the postgres driver, anything else is a sqlite DSN.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Warn
	} else {
		logMode = logger.Silent
	}

	dialector := sqlite.Open(cnf.Url)
	if cnf.IsPostgres() {
		dialector = postgres.Open(cnf.Url)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if cnf.IsPostgres() {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(1 * time.Hour)
	} else {
		// every query must see the same in-memory database
		sqlDB.SetMaxOpenConns(1)
	}

	if err := infrarepo.AutoMigrate(connection); err != nil {
		return nil, err
	}
	return connection, nil
}
