package inventory

import (
	"context"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/inventory"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockService handles stock movements and ledger queries
type StockService struct {
	scope        TransactionScope
	productRepo  catalog.ProductRepository
	movementRepo inventory.StockMovementRepository
}

// NewStockService creates a new StockService
func NewStockService(scope TransactionScope, productRepo catalog.ProductRepository, movementRepo inventory.StockMovementRepository) *StockService {
	return &StockService{
		scope:        scope,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// ApplyMovement mutates a product's stock and appends the matching ledger
// entry, using the repositories of the enclosing transaction. Every stock
// change in the system funnels through here so the ledger never drifts from
// the stored quantities.
//
// OUT movements rely on the repository's conditional decrement; when stock is
// short the product is loaded only to build the error message.
func ApplyMovement(ctx context.Context, repos TransactionalRepositories, movement *inventory.StockMovement) error {
	delta := movement.SignedQuantity()
	if err := repos.ProductRepo().AdjustQuantity(ctx, movement.ProductID, delta); err != nil {
		if err == shared.ErrInsufficientStock {
			product, findErr := repos.ProductRepo().FindByID(ctx, movement.ProductID)
			if findErr != nil {
				return findErr
			}
			return shared.NewInsufficientStockError(product.Name, product.Quantity, movement.Quantity)
		}
		return err
	}

	return repos.MovementRepo().Create(ctx, movement)
}

// RecordMovement applies a manual stock adjustment atomically
func (s *StockService) RecordMovement(ctx context.Context, input RecordMovementInput) (*MovementDTO, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.IsDeleted() {
		return nil, shared.ErrNotFound
	}

	movement, err := inventory.NewStockMovement(input.ProductID, input.Type, input.Quantity, input.Reason)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return ApplyMovement(ctx, repos, movement)
	})
	if err != nil {
		return nil, err
	}

	dto := MovementFromDomain(*movement)
	dto.ProductName = product.Name
	return &dto, nil
}

// ListMovements returns the ledger page matching the filter
func (s *StockService) ListMovements(ctx context.Context, filter shared.Filter) (*shared.Paginated[MovementDTO], error) {
	movements, err := s.movementRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.movementRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]MovementDTO, 0, len(movements))
	for _, m := range movements {
		dtos = append(dtos, MovementFromDomain(m))
	}

	return shared.NewPaginated(dtos, total, filter.Page, filter.PageSize), nil
}

// ListProductMovements returns the ledger entries for one product
func (s *StockService) ListProductMovements(ctx context.Context, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[MovementDTO], error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	movements, err := s.movementRepo.FindByProduct(ctx, productID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.movementRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	dtos := make([]MovementDTO, 0, len(movements))
	for _, m := range movements {
		dtos = append(dtos, MovementFromDomain(m))
	}

	return shared.NewPaginated(dtos, total, filter.Page, filter.PageSize), nil
}

// ReconcileProduct re-derives a product's quantity from the ledger and
// reports whether it matches the stored value. Audit helper, read only.
func (s *StockService) ReconcileProduct(ctx context.Context, productID uuid.UUID) (*ReconciliationDTO, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	net, err := s.movementRepo.NetQuantityByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &ReconciliationDTO{
		ProductID:      product.ID,
		ProductName:    product.Name,
		StoredQuantity: product.Quantity,
		LedgerQuantity: net,
		Consistent:     product.Quantity == net,
	}, nil
}
