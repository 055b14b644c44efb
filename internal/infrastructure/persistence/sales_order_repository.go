package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var salesOrderSortColumns = map[string]bool{
	"code":        true,
	"status":      true,
	"total_value": true,
	"created_at":  true,
	"updated_at":  true,
}

// GormSalesOrderRepository implements SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// FindByID finds a sales order with its items
func (r *GormSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	var order trade.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByCode finds a sales order by its sequential code
func (r *GormSalesOrderRepository) FindByCode(ctx context.Context, code string) (*trade.SalesOrder, error) {
	var order trade.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("code = ? AND deleted_at IS NULL", code).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds sales orders matching the filter
func (r *GormSalesOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*trade.SalesOrder, error) {
	var orders []*trade.SalesOrder
	query := r.applyFilter(r.db.WithContext(ctx).Model(&trade.SalesOrder{}), filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, salesOrderSortColumns, "created_at")

	if err := query.Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts sales orders matching the filter
func (r *GormSalesOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&trade.SalesOrder{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts sales orders in a given status
func (r *GormSalesOrderRepository) CountByStatus(ctx context.Context, status trade.SalesOrderStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.SalesOrder{}).
		Where("status = ? AND deleted_at IS NULL", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a sales order and its items
func (r *GormSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(order).Error
	if err != nil && isUniqueViolation(err) {
		return shared.NewConflictError("Sales order code already in use")
	}
	return err
}

// SaveWithLock persists the order only if its stored version still matches
// the version it was loaded with
func (r *GormSalesOrderRepository) SaveWithLock(ctx context.Context, order *trade.SalesOrder, loadedVersion int) error {
	result := r.db.WithContext(ctx).
		Model(&trade.SalesOrder{}).
		Where("id = ? AND version = ?", order.ID, loadedVersion).
		Updates(map[string]interface{}{
			"status":     order.Status,
			"notes":      order.Notes,
			"version":    order.Version,
			"updated_at": order.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&trade.SalesOrder{}).
			Where("id = ?", order.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.NewConflictError("Sales order was modified concurrently")
	}
	return nil
}

// SoftDelete marks a sales order as deleted while keeping its history
func (r *GormSalesOrderRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&trade.SalesOrder{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// NextCode allocates the next sequential order code
func (r *GormSalesOrderRepository) NextCode(ctx context.Context) (string, error) {
	return nextSequentialCode(ctx, r.db, "sales_orders", "VD")
}

// CountOpenByCustomer counts non-terminal orders for a customer
func (r *GormSalesOrderRepository) CountOpenByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.SalesOrder{}).
		Where("customer_id = ? AND status IN ? AND deleted_at IS NULL",
			customerID,
			[]trade.SalesOrderStatus{
				trade.SalesOrderStatusPendente,
				trade.SalesOrderStatusAprovada,
			}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormSalesOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = query.Where("deleted_at IS NULL")

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR customer_name ILIKE ?", searchPattern, searchPattern)
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

// Ensure GormSalesOrderRepository implements SalesOrderRepository
var _ trade.SalesOrderRepository = (*GormSalesOrderRepository)(nil)
