package repository

import (
	budgetinfra "github.com/amirasaad/pocketpilot/infra/repository/budget"
	goalinfra "github.com/amirasaad/pocketpilot/infra/repository/goal"
	savingsinfra "github.com/amirasaad/pocketpilot/infra/repository/savings"
	transactioninfra "github.com/amirasaad/pocketpilot/infra/repository/transaction"
	userinfra "github.com/amirasaad/pocketpilot/infra/repository/user"
	voiceplaninfra "github.com/amirasaad/pocketpilot/infra/repository/voiceplan"
	"gorm.io/gorm"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&userinfra.User{},
		&budgetinfra.Domain{},
		&goalinfra.Goal{},
		&transactioninfra.Transaction{},
		&savingsinfra.DailyStatus{},
		&budgetinfra.Plan{},
		&voiceplaninfra.VoicePlan{},
	}
}

// AutoMigrate creates or updates the schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
