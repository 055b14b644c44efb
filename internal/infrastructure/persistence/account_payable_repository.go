package persistence

import (
	"context"
	"errors"

	"github.com/estoque/backend/internal/domain/finance"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var payableSortColumns = map[string]bool{
	"amount":     true,
	"status":     true,
	"due_date":   true,
	"created_at": true,
	"updated_at": true,
}

// GormAccountPayableRepository implements AccountPayableRepository using GORM
type GormAccountPayableRepository struct {
	db *gorm.DB
}

// NewGormAccountPayableRepository creates a new GormAccountPayableRepository
func NewGormAccountPayableRepository(db *gorm.DB) *GormAccountPayableRepository {
	return &GormAccountPayableRepository{db: db}
}

// Create persists a new payable
func (r *GormAccountPayableRepository) Create(ctx context.Context, payable *finance.AccountPayable) error {
	return r.db.WithContext(ctx).Create(payable).Error
}

// FindByID finds a payable by its ID
func (r *GormAccountPayableRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.AccountPayable, error) {
	var payable finance.AccountPayable
	if err := r.db.WithContext(ctx).First(&payable, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payable, nil
}

// FindByOrder finds all payables created for a purchase order
func (r *GormAccountPayableRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*finance.AccountPayable, error) {
	var payables []*finance.AccountPayable
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&payables).Error; err != nil {
		return nil, err
	}
	return payables, nil
}

// FindAll finds payables matching the filter
func (r *GormAccountPayableRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*finance.AccountPayable, error) {
	var payables []*finance.AccountPayable
	query := r.applyFilter(r.db.WithContext(ctx).Model(&finance.AccountPayable{}), filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, payableSortColumns, "created_at")

	if err := query.Find(&payables).Error; err != nil {
		return nil, err
	}
	return payables, nil
}

// Count counts payables matching the filter
func (r *GormAccountPayableRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&finance.AccountPayable{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save updates an existing payable
func (r *GormAccountPayableRepository) Save(ctx context.Context, payable *finance.AccountPayable) error {
	return r.db.WithContext(ctx).Save(payable).Error
}

// SumPendingAmount returns the total amount still owed, in centavos
func (r *GormAccountPayableRepository) SumPendingAmount(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&finance.AccountPayable{}).
		Where("status = ?", finance.PayableStatusPendente).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormAccountPayableRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("supplier_name ILIKE ? OR order_code ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		}
	}

	return query
}

// Ensure GormAccountPayableRepository implements AccountPayableRepository
var _ finance.AccountPayableRepository = (*GormAccountPayableRepository)(nil)
