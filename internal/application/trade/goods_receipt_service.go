package trade

import (
	"context"
	"fmt"

	appinventory "github.com/estoque/backend/internal/application/inventory"
	"github.com/estoque/backend/internal/domain/finance"
	"github.com/estoque/backend/internal/domain/inventory"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// GoodsReceiptService handles the receiving workflow for purchase orders
type GoodsReceiptService struct {
	scope       appinventory.TransactionScope
	orderRepo   trade.PurchaseOrderRepository
	receiptRepo trade.GoodsReceiptRepository
}

// NewGoodsReceiptService creates a new GoodsReceiptService
func NewGoodsReceiptService(
	scope appinventory.TransactionScope,
	orderRepo trade.PurchaseOrderRepository,
	receiptRepo trade.GoodsReceiptRepository,
) *GoodsReceiptService {
	return &GoodsReceiptService{
		scope:       scope,
		orderRepo:   orderRepo,
		receiptRepo: receiptRepo,
	}
}

// Receive applies a blind count to a purchase order in one transaction:
// the receipt record, the per-line received quantities, the stock
// increments with their ledger entries, the cost price overwrites, the
// supplier payable and the order status all commit or roll back together.
//
// Optimistic locking on the order version serializes concurrent receipts
// for the same order; the loser gets a conflict and retries against the
// fresh state.
func (s *GoodsReceiptService) Receive(ctx context.Context, orderID uuid.UUID, input ReceiveGoodsInput) (*GoodsReceiptDTO, error) {
	if len(input.Items) == 0 {
		return nil, shared.NewValidationError("Receipt must have at least one item")
	}

	var dto GoodsReceiptDTO
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		order, err := repos.PurchaseOrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		loadedVersion := order.Version

		lines := make([]trade.ReceiveLine, 0, len(input.Items))
		for _, item := range input.Items {
			lines = append(lines, trade.ReceiveLine{ProductID: item.ProductID, ReceivedQty: item.ReceivedQty})
		}

		outcome, err := order.ApplyReceipt(lines)
		if err != nil {
			return err
		}

		receipt, err := trade.NewGoodsReceipt(order, outcome, input.Notes)
		if err != nil {
			return err
		}

		reason := fmt.Sprintf("Recebimento %s", order.Code)
		for _, entry := range outcome.StockEntries {
			movement, err := inventory.NewStockMovement(entry.ProductID, inventory.MovementTypeIn, entry.Quantity, reason)
			if err != nil {
				return err
			}
			if err := appinventory.ApplyMovement(ctx, repos, movement); err != nil {
				return err
			}
			// The ordered unit price becomes the product's current cost.
			// Unmatched lines carry no price and leave the cost untouched.
			if entry.UnitCost > 0 {
				if err := repos.ProductRepo().UpdateCostPrice(ctx, entry.ProductID, entry.UnitCost); err != nil {
					return err
				}
			}
		}

		if outcome.PayableAmount > 0 {
			payable, err := finance.NewAccountPayable(
				order.SupplierID, order.SupplierName, order.ID, order.Code, receipt.ID, outcome.PayableAmount, nil)
			if err != nil {
				return err
			}
			if err := repos.PayableRepo().Create(ctx, payable); err != nil {
				return err
			}
		}

		if err := repos.PurchaseOrderRepo().SaveWithLock(ctx, order, loadedVersion); err != nil {
			return err
		}
		if err := repos.GoodsReceiptRepo().Create(ctx, receipt); err != nil {
			return err
		}

		dto = GoodsReceiptFromDomain(receipt, order.Status)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto, nil
}

// Get returns a goods receipt by ID
func (s *GoodsReceiptService) Get(ctx context.Context, id uuid.UUID) (*GoodsReceiptDTO, error) {
	receipt, err := s.receiptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.FindByID(ctx, receipt.OrderID)
	if err != nil {
		return nil, err
	}
	dto := GoodsReceiptFromDomain(receipt, order.Status)
	return &dto, nil
}

// ListByOrder returns the receipts recorded against an order, oldest first
func (s *GoodsReceiptService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]GoodsReceiptDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	receipts, err := s.receiptRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	dtos := make([]GoodsReceiptDTO, 0, len(receipts))
	for _, receipt := range receipts {
		dtos = append(dtos, GoodsReceiptFromDomain(receipt, order.Status))
	}
	return dtos, nil
}
