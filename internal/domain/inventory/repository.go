package inventory

import (
	"context"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockMovementRepository defines persistence operations for the stock ledger.
// The ledger is append-only: there is no update or delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *StockMovement) error
	FindByID(ctx context.Context, id uuid.UUID) (*StockMovement, error)
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]StockMovement, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]StockMovement, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	// NetQuantityByProduct re-derives the on-hand quantity from the ledger
	// (sum of IN minus sum of OUT). Used by the reconciliation audit to detect
	// drift against the denormalized product counter.
	NetQuantityByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
