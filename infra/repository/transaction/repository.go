package transaction

import (
	"context"

	"github.com/amirasaad/pocketpilot/pkg/dto"
	repo "github.com/amirasaad/pocketpilot/pkg/repository/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// sums come back from sqlite as floats; amounts are stored with 4 places
const amountPlaces = 4

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed ledger repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements transaction.Repository.
func (r *repository) Create(
	ctx context.Context,
	create *dto.TransactionCreate,
) error {
	tx := mapCreateDTOToModel(create)
	return r.db.WithContext(ctx).Create(&tx).Error
}

type listRow struct {
	Transaction
	DomainName *string
}

// List implements transaction.Repository.
func (r *repository) List(
	ctx context.Context,
	filter dto.TransactionFilter,
) ([]*dto.TransactionRead, error) {
	var rows []listRow
	if err := r.scoped(ctx, filter).
		Select("transactions.*, domains.name AS domain_name").
		Joins("LEFT JOIN domains ON domains.id = transactions.domain_id").
		Order("transactions.date DESC").
		Order("transactions.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		read := mapModelToReadDTO(&rows[i].Transaction)
		if rows[i].DomainName != nil {
			read.DomainName = *rows[i].DomainName
		}
		result = append(result, read)
	}
	return result, nil
}

// ExistsRecent implements transaction.Repository.
func (r *repository) ExistsRecent(
	ctx context.Context,
	match dto.RecentMatch,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("user_id = ? AND amount = ? AND type = ? AND source = ? AND date >= ?",
			match.UserID, match.Amount, match.Type, match.Source, match.Since.UTC()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TotalsByType implements transaction.Repository.
func (r *repository) TotalsByType(
	ctx context.Context,
	filter dto.TransactionFilter,
) ([]dto.TypeTotal, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
	}
	if err := r.scoped(ctx, filter).
		Select("transactions.type AS type, SUM(transactions.amount) AS total").
		Group("transactions.type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	totals := make([]dto.TypeTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, dto.TypeTotal{Type: row.Type, Total: row.Total.Round(amountPlaces)})
	}
	return totals, nil
}

// ExpenseTotalsByDomain implements transaction.Repository.
func (r *repository) ExpenseTotalsByDomain(
	ctx context.Context,
	filter dto.TransactionFilter,
) ([]dto.DomainTotal, error) {
	filter.Type = "expense"
	var rows []struct {
		DomainID uuid.UUID
		Total    decimal.Decimal
	}
	if err := r.scoped(ctx, filter).
		Select("transactions.domain_id AS domain_id, SUM(transactions.amount) AS total").
		Where("transactions.domain_id IS NOT NULL").
		Group("transactions.domain_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	totals := make([]dto.DomainTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, dto.DomainTotal{DomainID: row.DomainID, Total: row.Total.Round(amountPlaces)})
	}
	return totals, nil
}

// scoped applies the filter to a transactions query.
func (r *repository) scoped(ctx context.Context, filter dto.TransactionFilter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("transactions.user_id = ?", filter.UserID)
	if filter.Type != "" {
		q = q.Where("transactions.type = ?", filter.Type)
	}
	if !filter.From.IsZero() {
		q = q.Where("transactions.date >= ?", filter.From.UTC())
	}
	if !filter.To.IsZero() {
		q = q.Where("transactions.date <= ?", filter.To.UTC())
	}
	return q
}
