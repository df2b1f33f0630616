package budget

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/amirasaad/pocketpilot/pkg/dto"
	repo "github.com/amirasaad/pocketpilot/pkg/repository/budget"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type domainRepository struct {
	db *gorm.DB
}

// NewDomainRepository creates a GORM-backed domain repository.
func NewDomainRepository(db *gorm.DB) repo.DomainRepository {
	return &domainRepository{db: db}
}

func (r *domainRepository) Create(ctx context.Context, create *dto.DomainCreate) error {
	return r.db.WithContext(ctx).Create(&Domain{
		ID:             create.ID,
		UserID:         create.UserID,
		Name:           create.Name,
		ExpectedAmount: create.ExpectedAmount,
	}).Error
}

func (r *domainRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dto.DomainRead, error) {
	var d Domain
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapDomainToDTO(&d), nil
}

func (r *domainRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.DomainRead, error) {
	var rows []Domain
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapDomains(rows), nil
}

func (r *domainRepository) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*dto.DomainRead, error) {
	if len(ids) == 0 {
		return []*dto.DomainRead{}, nil
	}
	var rows []Domain
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapDomains(rows), nil
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a GORM-backed budget plan repository.
func NewPlanRepository(db *gorm.DB) repo.PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, create *dto.BudgetPlanCreate) error {
	ids, err := json.Marshal(create.DomainIDs)
	if err != nil {
		return err
	}
	breakdown, err := json.Marshal(create.Breakdown)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&Plan{
		ID:          create.ID,
		UserID:      create.UserID,
		TotalBudget: create.TotalBudget,
		Days:        create.Days,
		DomainIDs:   string(ids),
		Breakdown:   string(breakdown),
		Fallback:    create.Fallback,
		CreatedAt:   create.CreatedAt,
	}).Error
}

func (r *planRepository) Latest(ctx context.Context, userID uuid.UUID) (*dto.BudgetPlanRead, error) {
	var p Plan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	read := &dto.BudgetPlanRead{
		ID:          p.ID,
		UserID:      p.UserID,
		TotalBudget: p.TotalBudget,
		Days:        p.Days,
		Fallback:    p.Fallback,
		CreatedAt:   p.CreatedAt,
	}
	if err := json.Unmarshal([]byte(p.DomainIDs), &read.DomainIDs); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(p.Breakdown), &read.Breakdown); err != nil {
		return nil, err
	}
	return read, nil
}

func mapDomainToDTO(d *Domain) *dto.DomainRead {
	return &dto.DomainRead{
		ID:             d.ID,
		UserID:         d.UserID,
		Name:           d.Name,
		ExpectedAmount: d.ExpectedAmount,
		CreatedAt:      d.CreatedAt,
	}
}

func mapDomains(rows []Domain) []*dto.DomainRead {
	result := make([]*dto.DomainRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapDomainToDTO(&rows[i]))
	}
	return result
}
