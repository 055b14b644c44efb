package finance

import (
	"context"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountPayableRepository defines persistence for accounts payable
type AccountPayableRepository interface {
	Create(ctx context.Context, payable *AccountPayable) error
	FindByID(ctx context.Context, id uuid.UUID) (*AccountPayable, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*AccountPayable, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*AccountPayable, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, payable *AccountPayable) error
	SumPendingAmount(ctx context.Context) (int64, error)
}

// AccountReceivableRepository defines persistence for accounts receivable
type AccountReceivableRepository interface {
	Create(ctx context.Context, receivable *AccountReceivable) error
	FindByID(ctx context.Context, id uuid.UUID) (*AccountReceivable, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*AccountReceivable, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*AccountReceivable, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, receivable *AccountReceivable) error
	SumPendingAmount(ctx context.Context) (int64, error)
}
