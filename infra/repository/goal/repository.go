package goal

import (
	"context"
	"errors"

	"github.com/amirasaad/pocketpilot/pkg/dto"
	repo "github.com/amirasaad/pocketpilot/pkg/repository/goal"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed goal repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.GoalCreate) error {
	return r.db.WithContext(ctx).Create(&Goal{
		ID:           create.ID,
		UserID:       create.UserID,
		Name:         create.Name,
		TargetAmount: create.TargetAmount,
		Months:       create.Months,
		CreatedAt:    create.CreatedAt,
	}).Error
}

func (r *repository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.GoalRead, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID))
}

func (r *repository) Latest(ctx context.Context, userID uuid.UUID) (*dto.GoalRead, error) {
	return r.first(r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC"))
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.GoalRead, error) {
	var rows []Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.GoalRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToDTO(&rows[i]))
	}
	return result, nil
}

func (r *repository) first(q *gorm.DB) (*dto.GoalRead, error) {
	var g Goal
	if err := q.First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&g), nil
}

func mapModelToDTO(g *Goal) *dto.GoalRead {
	return &dto.GoalRead{
		ID:           g.ID,
		UserID:       g.UserID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		Months:       g.Months,
		CreatedAt:    g.CreatedAt,
	}
}
