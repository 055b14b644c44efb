package trade

import (
	"context"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseOrderRepository defines persistence for purchase orders
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	FindByCode(ctx context.Context, code string) (*PurchaseOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*PurchaseOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByStatus(ctx context.Context, status PurchaseOrderStatus) (int64, error)
	Save(ctx context.Context, order *PurchaseOrder) error
	// SaveWithLock persists the order only if its stored version still matches
	// the version it was loaded with. Returns shared.ErrConflict otherwise.
	SaveWithLock(ctx context.Context, order *PurchaseOrder, loadedVersion int) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// NextCode allocates the next sequential order code (PO-0001, PO-0002, ...).
	// Callers must invoke it inside the same transaction that persists the order.
	NextCode(ctx context.Context) (string, error)
	// CountOpenBySupplier counts non-terminal orders for a supplier. Suppliers
	// with open orders cannot be deleted.
	CountOpenBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error)
}

// SalesOrderRepository defines persistence for sales orders
type SalesOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesOrder, error)
	FindByCode(ctx context.Context, code string) (*SalesOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*SalesOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByStatus(ctx context.Context, status SalesOrderStatus) (int64, error)
	Save(ctx context.Context, order *SalesOrder) error
	SaveWithLock(ctx context.Context, order *SalesOrder, loadedVersion int) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	NextCode(ctx context.Context) (string, error)
	// CountOpenByCustomer counts non-terminal orders for a customer. Customers
	// with open orders cannot be deleted.
	CountOpenByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}

// GoodsReceiptRepository defines persistence for goods receipts.
// Receipts are append-only; there is no update or delete.
type GoodsReceiptRepository interface {
	Create(ctx context.Context, receipt *GoodsReceipt) error
	FindByID(ctx context.Context, id uuid.UUID) (*GoodsReceipt, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*GoodsReceipt, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*GoodsReceipt, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
