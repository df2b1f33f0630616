package savings

import (
	"context"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/dto"
	repo "github.com/amirasaad/pocketpilot/pkg/repository/savings"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed daily status repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Upsert implements savings.Repository.
func (r *repository) Upsert(ctx context.Context, upsert *dto.DailyStatusUpsert) error {
	now := r.db.NowFunc()
	row := DailyStatus{
		ID:          uuid.New(),
		UserID:      upsert.UserID,
		Date:        upsert.Date.UTC(),
		StatusColor: upsert.StatusColor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status_color", "updated_at"}),
		}).
		Create(&row).Error
}

// ListBetween implements savings.Repository.
func (r *repository) ListBetween(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]*dto.DailyStatusRead, error) {
	var rows []DailyStatus
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from.UTC(), to.UTC()).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.DailyStatusRead, 0, len(rows))
	for i := range rows {
		result = append(result, &dto.DailyStatusRead{
			UserID:      rows[i].UserID,
			Date:        rows[i].Date.UTC(),
			StatusColor: rows[i].StatusColor,
			UpdatedAt:   rows[i].UpdatedAt,
		})
	}
	return result, nil
}
