package persistence

import (
	"context"
	"errors"

	"github.com/estoque/backend/internal/domain/finance"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var receivableSortColumns = map[string]bool{
	"amount":     true,
	"status":     true,
	"due_date":   true,
	"created_at": true,
	"updated_at": true,
}

// GormAccountReceivableRepository implements AccountReceivableRepository using GORM
type GormAccountReceivableRepository struct {
	db *gorm.DB
}

// NewGormAccountReceivableRepository creates a new GormAccountReceivableRepository
func NewGormAccountReceivableRepository(db *gorm.DB) *GormAccountReceivableRepository {
	return &GormAccountReceivableRepository{db: db}
}

// Create persists a new receivable
func (r *GormAccountReceivableRepository) Create(ctx context.Context, receivable *finance.AccountReceivable) error {
	return r.db.WithContext(ctx).Create(receivable).Error
}

// FindByID finds a receivable by its ID
func (r *GormAccountReceivableRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.AccountReceivable, error) {
	var receivable finance.AccountReceivable
	if err := r.db.WithContext(ctx).First(&receivable, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &receivable, nil
}

// FindByOrder finds all receivables created for a sales order
func (r *GormAccountReceivableRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*finance.AccountReceivable, error) {
	var receivables []*finance.AccountReceivable
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&receivables).Error; err != nil {
		return nil, err
	}
	return receivables, nil
}

// FindAll finds receivables matching the filter
func (r *GormAccountReceivableRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*finance.AccountReceivable, error) {
	var receivables []*finance.AccountReceivable
	query := r.applyFilter(r.db.WithContext(ctx).Model(&finance.AccountReceivable{}), filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, receivableSortColumns, "created_at")

	if err := query.Find(&receivables).Error; err != nil {
		return nil, err
	}
	return receivables, nil
}

// Count counts receivables matching the filter
func (r *GormAccountReceivableRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&finance.AccountReceivable{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save updates an existing receivable
func (r *GormAccountReceivableRepository) Save(ctx context.Context, receivable *finance.AccountReceivable) error {
	return r.db.WithContext(ctx).Save(receivable).Error
}

// SumPendingAmount returns the total amount still owed by customers, in centavos
func (r *GormAccountReceivableRepository) SumPendingAmount(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&finance.AccountReceivable{}).
		Where("status = ?", finance.ReceivableStatusPendente).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormAccountReceivableRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("customer_name ILIKE ? OR order_code ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		}
	}

	return query
}

// Ensure GormAccountReceivableRepository implements AccountReceivableRepository
var _ finance.AccountReceivableRepository = (*GormAccountReceivableRepository)(nil)
