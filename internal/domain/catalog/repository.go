package catalog

import (
	"context"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindLowStock(ctx context.Context, filter shared.Filter) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// AdjustQuantity atomically applies a signed delta to the on-hand counter.
	// For negative deltas the update is conditioned on the resulting quantity
	// staying non-negative; shared.ErrInsufficientStock is returned when the
	// guard rejects the write.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int64) error

	// UpdateCostPrice overwrites the last-received unit cost
	UpdateCostPrice(ctx context.Context, id uuid.UUID, costPrice int64) error

	// SumStockValue returns the total stock valuation (quantity * cost_price) in centavos
	SumStockValue(ctx context.Context) (int64, error)
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
