package trade

import (
	"context"
	"fmt"

	appinventory "github.com/estoque/backend/internal/application/inventory"
	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/finance"
	"github.com/estoque/backend/internal/domain/inventory"
	"github.com/estoque/backend/internal/domain/partner"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// SalesOrderService handles sales order lifecycle and fulfillment
type SalesOrderService struct {
	scope        appinventory.TransactionScope
	orderRepo    trade.SalesOrderRepository
	customerRepo partner.CustomerRepository
	productRepo  catalog.ProductRepository
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(
	scope appinventory.TransactionScope,
	orderRepo trade.SalesOrderRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
) *SalesOrderService {
	return &SalesOrderService{
		scope:        scope,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// Create creates a sales order in PENDENTE. Line prices are copied from the
// catalog at creation time; later price changes do not affect the order.
// Stock is not checked here, only at invoicing.
func (s *SalesOrderService) Create(ctx context.Context, input CreateSalesOrderInput) (*SalesOrderDTO, error) {
	customer, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.IsDeleted() {
		return nil, shared.ErrNotFound
	}
	if len(input.Items) == 0 {
		return nil, shared.NewValidationError("Order must have at least one item")
	}

	lines, err := s.resolveLines(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	var order *trade.SalesOrder
	err = s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		code, err := repos.SalesOrderRepo().NextCode(ctx)
		if err != nil {
			return err
		}
		order, err = trade.NewSalesOrder(code, customer.ID, customer.Name, lines, input.Notes)
		if err != nil {
			return err
		}
		return repos.SalesOrderRepo().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	dto := SalesOrderFromDomain(order)
	return &dto, nil
}

func (s *SalesOrderService) resolveLines(ctx context.Context, items []SalesItemInput) ([]trade.OrderLine, error) {
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
			UnitPrice:   product.Price,
		})
	}
	return lines, nil
}

// Get returns a sales order by ID
func (s *SalesOrderService) Get(ctx context.Context, id uuid.UUID) (*SalesOrderDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := SalesOrderFromDomain(order)
	return &dto, nil
}

// List returns the sales orders matching the filter
func (s *SalesOrderService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[SalesOrderDTO], error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]SalesOrderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, SalesOrderFromDomain(order))
	}
	return shared.NewPaginated(dtos, total, filter.Page, filter.PageSize), nil
}

// Transition moves the order to the requested status. FATURADA runs the
// fulfillment workflow: stock decrements, ledger entries, the customer
// receivable and the status change commit atomically, so an order is never
// FATURADA with stock left undeducted.
func (s *SalesOrderService) Transition(ctx context.Context, id uuid.UUID, target trade.SalesOrderStatus) (*SalesOrderDTO, error) {
	if target == trade.SalesOrderStatusFaturada {
		return s.invoice(ctx, id)
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	loadedVersion := order.Version
	if err := order.TransitionTo(target); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, order, loadedVersion); err != nil {
		return nil, err
	}

	dto := SalesOrderFromDomain(order)
	return &dto, nil
}

// invoice fulfills the order inside one transaction. An insufficient stock
// error on any line rolls back every decrement already applied.
func (s *SalesOrderService) invoice(ctx context.Context, id uuid.UUID) (*SalesOrderDTO, error) {
	var dto SalesOrderDTO
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		order, err := repos.SalesOrderRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		loadedVersion := order.Version

		if err := order.TransitionTo(trade.SalesOrderStatusFaturada); err != nil {
			return err
		}

		// Full pre-check before any mutation: a short line must fail the whole
		// order without touching stock. The per-line guarded decrement below
		// still closes the race with concurrent fulfillments.
		for _, item := range order.Items {
			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if !product.CanFulfill(item.Quantity) {
				return shared.NewInsufficientStockError(product.Name, product.Quantity, item.Quantity)
			}
		}

		reason := fmt.Sprintf("Venda %s", order.Code)
		for _, item := range order.Items {
			movement, err := inventory.NewStockMovement(item.ProductID, inventory.MovementTypeOut, item.Quantity, reason)
			if err != nil {
				return err
			}
			if err := appinventory.ApplyMovement(ctx, repos, movement); err != nil {
				return err
			}
		}

		receivable, err := finance.NewAccountReceivable(
			order.CustomerID, order.CustomerName, order.ID, order.Code, order.TotalValue, nil)
		if err != nil {
			return err
		}
		if err := repos.ReceivableRepo().Create(ctx, receivable); err != nil {
			return err
		}

		if err := repos.SalesOrderRepo().SaveWithLock(ctx, order, loadedVersion); err != nil {
			return err
		}

		dto = SalesOrderFromDomain(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto, nil
}

// Delete soft deletes an order that is still PENDENTE
func (s *SalesOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !order.CanDelete() {
		return shared.NewInvalidStateError("Only pending orders can be deleted")
	}
	return s.orderRepo.SoftDelete(ctx, id)
}
