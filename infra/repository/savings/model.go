package savings

import (
	"time"

	"github.com/google/uuid"
)

// DailyStatus is unique per (user_id, date).
type DailyStatus struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_status_user_date,priority:1"`
	Date        time.Time `gorm:"not null;uniqueIndex:idx_daily_status_user_date,priority:2"`
	StatusColor string    `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the DailyStatus model.
func (DailyStatus) TableName() string {
	return "daily_savings_status"
}
