package persistence

import (
	"context"
	"errors"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var receiptSortColumns = map[string]bool{
	"received_at": true,
	"created_at":  true,
	"order_code":  true,
}

// GormGoodsReceiptRepository implements GoodsReceiptRepository using GORM.
// Receipts are append-only; this repository exposes no update or delete.
type GormGoodsReceiptRepository struct {
	db *gorm.DB
}

// NewGormGoodsReceiptRepository creates a new GormGoodsReceiptRepository
func NewGormGoodsReceiptRepository(db *gorm.DB) *GormGoodsReceiptRepository {
	return &GormGoodsReceiptRepository{db: db}
}

// Create persists a receipt with its items
func (r *GormGoodsReceiptRepository) Create(ctx context.Context, receipt *trade.GoodsReceipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

// FindByID finds a receipt with its items
func (r *GormGoodsReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.GoodsReceipt, error) {
	var receipt trade.GoodsReceipt
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&receipt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &receipt, nil
}

// FindByOrder finds all receipts recorded against a purchase order
func (r *GormGoodsReceiptRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*trade.GoodsReceipt, error) {
	var receipts []*trade.GoodsReceipt
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		Order("received_at ASC").
		Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

// FindAll finds receipts matching the filter
func (r *GormGoodsReceiptRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*trade.GoodsReceipt, error) {
	var receipts []*trade.GoodsReceipt
	query := r.applyFilter(r.db.WithContext(ctx).Model(&trade.GoodsReceipt{}), filter)
	query = applyPagination(query, filter)
	query = applyOrdering(query, filter, receiptSortColumns, "received_at")

	if err := query.Preload("Items").Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

// Count counts receipts matching the filter
func (r *GormGoodsReceiptRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&trade.GoodsReceipt{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormGoodsReceiptRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("order_code ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "order_id":
			query = query.Where("order_id = ?", value)
		case "has_divergence":
			query = query.Where("has_divergence = ?", value)
		}
	}

	return query
}

// Ensure GormGoodsReceiptRepository implements GoodsReceiptRepository
var _ trade.GoodsReceiptRepository = (*GormGoodsReceiptRepository)(nil)
