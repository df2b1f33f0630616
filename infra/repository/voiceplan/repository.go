package voiceplan

import (
	"context"
	"errors"

	"github.com/amirasaad/pocketpilot/pkg/dto"
	repo "github.com/amirasaad/pocketpilot/pkg/repository/voiceplan"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed voice plan repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.VoicePlanCreate) error {
	return r.db.WithContext(ctx).Create(&VoicePlan{
		ID:             create.ID,
		UserID:         create.UserID,
		OriginalText:   create.OriginalText,
		ParsedAmount:   create.ParsedAmount,
		ParsedDuration: create.ParsedDuration,
		GeneratedPlan:  string(create.GeneratedPlan),
		CreatedAt:      create.CreatedAt,
	}).Error
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.VoicePlanRead, error) {
	var rows []VoicePlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.VoicePlanRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToDTO(&rows[i]))
	}
	return result, nil
}

func (r *repository) Latest(ctx context.Context, userID uuid.UUID) (*dto.VoicePlanRead, error) {
	var p VoicePlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&p), nil
}

func mapModelToDTO(p *VoicePlan) *dto.VoicePlanRead {
	return &dto.VoicePlanRead{
		ID:             p.ID,
		UserID:         p.UserID,
		OriginalText:   p.OriginalText,
		ParsedAmount:   p.ParsedAmount,
		ParsedDuration: p.ParsedDuration,
		GeneratedPlan:  []byte(p.GeneratedPlan),
		CreatedAt:      p.CreatedAt,
	}
}
