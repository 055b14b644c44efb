package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var purchaseOrderSortColumns = map[string]bool{
	"code":        true,
	"status":      true,
	"total_value": true,
	"created_at":  true,
	"updated_at":  true,
}

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds a purchase order with its items
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	var order trade.PurchaseOrder
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

// FindByCode finds a purchase order by its sequential code
func (r *GormPurchaseOrderRepository) FindByCode(ctx context.Context, code string) (*trade.PurchaseOrder, error) {
	var order trade.PurchaseOrder
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

// FindAll finds purchase orders matching the filter
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*trade.PurchaseOrder, error) {
	var orders []*trade.PurchaseOrder
	query := r.applyFilter(r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}), filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, purchaseOrderSortColumns, "created_at")

	if err := query.Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts purchase orders matching the filter
func (r *GormPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts purchase orders in a given status
func (r *GormPurchaseOrderRepository) CountByStatus(ctx context.Context, status trade.PurchaseOrderStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.PurchaseOrder{}).
		Where("status = ? AND deleted_at IS NULL", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a purchase order and its items
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(order).Error
	if err != nil && isUniqueViolation(err) {
		return shared.NewConflictError("Purchase order code already in use")
	}
	return err
}

// SaveWithLock persists the order only if its stored version still matches
// the version it was loaded with. RowsAffected tells the two failure modes
// apart from success; a second lookup distinguishes a missing row from a
// stale version.
func (r *GormPurchaseOrderRepository) SaveWithLock(ctx context.Context, order *trade.PurchaseOrder, loadedVersion int) error {
	result := r.db.WithContext(ctx).
		Model(&trade.PurchaseOrder{}).
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
		if err := r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}).
			Where("id = ?", order.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.NewConflictError("Purchase order was modified concurrently")
	}

	// Item rows carry the per-line received quantities updated by receipts.
	for idx := range order.Items {
		if err := r.db.WithContext(ctx).Save(&order.Items[idx]).Error; err != nil {
			return err
		}
	}
	return nil
}

// SoftDelete marks a purchase order as deleted while keeping its history
func (r *GormPurchaseOrderRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}).
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

// NextCode allocates the next sequential order code. Soft-deleted orders keep
// their codes, so the scan deliberately ignores deleted_at.
func (r *GormPurchaseOrderRepository) NextCode(ctx context.Context) (string, error) {
	return nextSequentialCode(ctx, r.db, "purchase_orders", "PO")
}

// CountOpenBySupplier counts non-terminal orders for a supplier
func (r *GormPurchaseOrderRepository) CountOpenBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.PurchaseOrder{}).
		Where("supplier_id = ? AND status IN ? AND deleted_at IS NULL",
			supplierID,
			[]trade.PurchaseOrderStatus{
				trade.PurchaseOrderStatusPendente,
				trade.PurchaseOrderStatusAprovada,
				trade.PurchaseOrderStatusEmTransito,
			}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPurchaseOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = query.Where("deleted_at IS NULL")

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR supplier_name ILIKE ?", searchPattern, searchPattern)
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

// nextSequentialCode derives the next code in a PREFIX-NNNN sequence from the
// highest code already present. Ordering by length first keeps the comparison
// correct once the counter outgrows the four-digit padding.
func nextSequentialCode(ctx context.Context, db *gorm.DB, table, prefix string) (string, error) {
	var lastCode string
	err := db.WithContext(ctx).
		Table(table).
		Select("code").
		Order("LENGTH(code) DESC, code DESC").
		Limit(1).
		Scan(&lastCode).Error
	if err != nil {
		return "", err
	}

	next := 1
	if lastCode != "" {
		numeric := strings.TrimPrefix(lastCode, prefix+"-")
		parsed, err := strconv.Atoi(numeric)
		if err != nil {
			return "", fmt.Errorf("malformed order code %q: %w", lastCode, err)
		}
		next = parsed + 1
	}

	return fmt.Sprintf("%s-%04d", prefix, next), nil
}

// Ensure GormPurchaseOrderRepository implements PurchaseOrderRepository
var _ trade.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
