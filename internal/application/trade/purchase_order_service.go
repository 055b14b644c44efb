package trade

import (
	"context"

	appinventory "github.com/estoque/backend/internal/application/inventory"
	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/partner"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// PurchaseOrderService handles purchase order lifecycle operations
type PurchaseOrderService struct {
	scope        appinventory.TransactionScope
	orderRepo    trade.PurchaseOrderRepository
	supplierRepo partner.SupplierRepository
	productRepo  catalog.ProductRepository
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	scope appinventory.TransactionScope,
	orderRepo trade.PurchaseOrderRepository,
	supplierRepo partner.SupplierRepository,
	productRepo catalog.ProductRepository,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		scope:        scope,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// Create creates a purchase order in PENDENTE. The sequential code is
// allocated inside the same transaction that persists the order, so two
// concurrent creations cannot end up with the same code.
func (s *PurchaseOrderService) Create(ctx context.Context, input CreatePurchaseOrderInput) (*PurchaseOrderDTO, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier.IsDeleted() {
		return nil, shared.ErrNotFound
	}
	if len(input.Items) == 0 {
		return nil, shared.NewValidationError("Order must have at least one item")
	}

	lines, err := s.resolveLines(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	var order *trade.PurchaseOrder
	err = s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		code, err := repos.PurchaseOrderRepo().NextCode(ctx)
		if err != nil {
			return err
		}
		order, err = trade.NewPurchaseOrder(code, supplier.ID, supplier.Name, lines, input.Notes)
		if err != nil {
			return err
		}
		return repos.PurchaseOrderRepo().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	dto := PurchaseOrderFromDomain(order)
	return &dto, nil
}

// resolveLines validates the referenced products and fills in their names
func (s *PurchaseOrderService) resolveLines(ctx context.Context, items []PurchaseItemInput) ([]trade.OrderLine, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]trade.OrderLine, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok || product.IsDeleted() {
			return nil, shared.ErrNotFound
		}
		lines = append(lines, trade.OrderLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return lines, nil
}

// Get returns a purchase order by ID
func (s *PurchaseOrderService) Get(ctx context.Context, id uuid.UUID) (*PurchaseOrderDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := PurchaseOrderFromDomain(order)
	return &dto, nil
}

// List returns the purchase orders matching the filter
func (s *PurchaseOrderService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[PurchaseOrderDTO], error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]PurchaseOrderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, PurchaseOrderFromDomain(order))
	}
	return shared.NewPaginated(dtos, total, filter.Page, filter.PageSize), nil
}

// Transition moves the order to the requested status. Receiving goods is a
// separate workflow; RECEBIDA cannot be requested here.
func (s *PurchaseOrderService) Transition(ctx context.Context, id uuid.UUID, target trade.PurchaseOrderStatus) (*PurchaseOrderDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// RECEBIDA belongs to the goods receipt workflow. From states whose table
	// row does not list it the transition table reports the violation; the one
	// jump the table would allow, EM_TRANSITO to RECEBIDA, is refused here.
	if target == trade.PurchaseOrderStatusRecebida && order.Status.CanTransitionTo(target) {
		return nil, shared.NewInvalidStateError("RECEBIDA is reached through goods receipt, not a direct transition")
	}

	loadedVersion := order.Version
	if err := order.TransitionTo(target); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, order, loadedVersion); err != nil {
		return nil, err
	}

	dto := PurchaseOrderFromDomain(order)
	return &dto, nil
}

// Delete soft deletes an order that is still PENDENTE. Orders in any other
// status are permanent history.
func (s *PurchaseOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !order.CanDelete() {
		return shared.NewInvalidStateError("Only pending orders can be deleted")
	}
	return s.orderRepo.SoftDelete(ctx, id)
}
