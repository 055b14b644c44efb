package trade

import (
	"fmt"
	"time"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPendente   PurchaseOrderStatus = "PENDENTE"
	PurchaseOrderStatusAprovada   PurchaseOrderStatus = "APROVADA"
	PurchaseOrderStatusEmTransito PurchaseOrderStatus = "EM_TRANSITO"
	PurchaseOrderStatusRecebida   PurchaseOrderStatus = "RECEBIDA"
	PurchaseOrderStatusCancelada  PurchaseOrderStatus = "CANCELADA"
)

// purchaseOrderTransitions is the allowed-transition table. RECEBIDA is only
// listed from EM_TRANSITO; in practice it is reached through goods receipt,
// which bypasses the table inside ApplyReceipt.
var purchaseOrderTransitions = map[PurchaseOrderStatus][]PurchaseOrderStatus{
	PurchaseOrderStatusPendente:   {PurchaseOrderStatusAprovada, PurchaseOrderStatusCancelada},
	PurchaseOrderStatusAprovada:   {PurchaseOrderStatusEmTransito, PurchaseOrderStatusCancelada},
	PurchaseOrderStatusEmTransito: {PurchaseOrderStatusRecebida, PurchaseOrderStatusCancelada},
	PurchaseOrderStatusRecebida:   {},
	PurchaseOrderStatusCancelada:  {},
}

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	_, ok := purchaseOrderTransitions[s]
	return ok
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	for _, allowed := range purchaseOrderTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// CanReceive returns true if receiving goods is allowed in this status
func (s PurchaseOrderStatus) CanReceive() bool {
	return s == PurchaseOrderStatusAprovada || s == PurchaseOrderStatusEmTransito
}

// IsTerminal returns true if no further transition is possible
func (s PurchaseOrderStatus) IsTerminal() bool {
	return len(purchaseOrderTransitions[s]) == 0
}

// PurchaseOrderItem represents a line item in a purchase order.
// UnitPrice is in centavos and fixed at order time; ReceivedQty holds the
// quantity reported by the most recent goods receipt for this line.
type PurchaseOrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(200);not null"`
	Quantity    int64     `gorm:"not null"`
	UnitPrice   int64     `gorm:"not null"`
	ReceivedQty int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// NewPurchaseOrderItem creates a new purchase order line
func NewPurchaseOrderItem(orderID, productID uuid.UUID, productName string, quantity, unitPrice int64) (*PurchaseOrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("Item quantity must be positive")
	}
	if unitPrice < 1 {
		return nil, shared.NewValidationError("Item unit price must be at least 1")
	}

	now := time.Now()
	return &PurchaseOrderItem{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		ReceivedQty: 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsFullyReceived returns true if the line's received quantity covers the ordered quantity
func (i *PurchaseOrderItem) IsFullyReceived() bool {
	return i.ReceivedQty >= i.Quantity
}

// Subtotal returns quantity times unit price, in centavos
func (i *PurchaseOrderItem) Subtotal() int64 {
	return i.Quantity * i.UnitPrice
}

// ReceiveLine is one counted line of a goods receipt (blind count)
type ReceiveLine struct {
	ProductID   uuid.UUID
	ReceivedQty int64
}

// ReceiptOutcome describes what a goods receipt did to the order
type ReceiptOutcome struct {
	Items         []GoodsReceiptItem
	PayableAmount int64 // Σ receivedQty × ordered unit price over matched lines
	StockEntries  []StockEntry
	FullyReceived bool
}

// StockEntry is a pending stock increment produced by a receipt
type StockEntry struct {
	ProductID uuid.UUID
	Quantity  int64
	UnitCost  int64 // ordered unit price, overwrites the product cost price
}

// PurchaseOrder represents a supplier order aggregate root
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	Code         string              `gorm:"type:varchar(20);not null;uniqueIndex"`
	SupplierID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	SupplierName string              `gorm:"type:varchar(200);not null"`
	Items        []PurchaseOrderItem `gorm:"foreignKey:OrderID;references:ID"`
	TotalValue   int64               `gorm:"not null"`
	Status       PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'PENDENTE'"`
	Notes        string              `gorm:"type:text"`
	DeletedAt    *time.Time          `gorm:"index"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a purchase order in PENDENTE with its lines.
// TotalValue is fixed at creation and never recomputed from receipts.
func NewPurchaseOrder(code string, supplierID uuid.UUID, supplierName string, lines []OrderLine, notes string) (*PurchaseOrder, error) {
	if code == "" {
		return nil, shared.NewValidationError("Order code cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewValidationError("Supplier ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewValidationError("Order must have at least one item")
	}

	order := &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		SupplierID:        supplierID,
		SupplierName:      supplierName,
		Status:            PurchaseOrderStatusPendente,
		Notes:             notes,
		Items:             make([]PurchaseOrderItem, 0, len(lines)),
	}

	var total int64
	for _, line := range lines {
		item, err := NewPurchaseOrderItem(order.ID, line.ProductID, line.ProductName, line.Quantity, line.UnitPrice)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, *item)
		total += item.Subtotal()
	}
	order.TotalValue = total

	return order, nil
}

// TransitionTo applies a plain status transition, validated against the
// allowed-transition table. The order is unchanged on failure.
func (o *PurchaseOrder) TransitionTo(target PurchaseOrderStatus) error {
	if !target.IsValid() {
		return shared.NewValidationError(fmt.Sprintf("Unknown purchase order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewInvalidTransitionError(o.Status.String(), target.String())
	}

	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// CanDelete returns true while the order is still PENDENTE; every other state
// is permanent history.
func (o *PurchaseOrder) CanDelete() bool {
	return o.Status == PurchaseOrderStatusPendente
}

// ApplyReceipt processes a goods receipt (blind count) against the order:
// flags divergences, overwrites per-line received quantities, computes the
// payable amount over matched lines, and advances the order to RECEBIDA or
// EM_TRANSITO depending on whether every line is now fully received.
//
// Divergence is informational and never blocks the receipt. Lines counted
// that were never ordered receive stock but contribute nothing to the payable.
func (o *PurchaseOrder) ApplyReceipt(lines []ReceiveLine) (*ReceiptOutcome, error) {
	if !o.Status.CanReceive() {
		return nil, shared.NewInvalidStateError(
			fmt.Sprintf("Cannot receive goods for order %s in status %s", o.Code, o.Status))
	}
	if len(lines) == 0 {
		return nil, shared.NewValidationError("Receipt must have at least one item")
	}

	byProduct := make(map[uuid.UUID]*PurchaseOrderItem, len(o.Items))
	for idx := range o.Items {
		byProduct[o.Items[idx].ProductID] = &o.Items[idx]
	}

	outcome := &ReceiptOutcome{
		Items:        make([]GoodsReceiptItem, 0, len(lines)),
		StockEntries: make([]StockEntry, 0, len(lines)),
	}

	seen := make(map[uuid.UUID]bool, len(lines))
	now := time.Now()
	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, shared.NewValidationError("Receipt item product ID cannot be empty")
		}
		if line.ReceivedQty < 0 {
			return nil, shared.NewValidationError("Received quantity cannot be negative")
		}
		if seen[line.ProductID] {
			return nil, shared.NewValidationError("Receipt lists the same product more than once")
		}
		seen[line.ProductID] = true

		item, matched := byProduct[line.ProductID]

		// An item with no matching order line is always divergent.
		divergent := !matched || line.ReceivedQty != item.Quantity
		outcome.Items = append(outcome.Items, GoodsReceiptItem{
			ID:            uuid.New(),
			ProductID:     line.ProductID,
			ReceivedQty:   line.ReceivedQty,
			HasDivergence: divergent,
		})

		if matched {
			// Last receipt's blind count wins; quantities are not accumulated
			// across receipts for the same line.
			item.ReceivedQty = line.ReceivedQty
			item.UpdatedAt = now
			outcome.PayableAmount += line.ReceivedQty * item.UnitPrice
		}

		if line.ReceivedQty > 0 {
			unitCost := int64(0)
			if matched {
				unitCost = item.UnitPrice
			}
			outcome.StockEntries = append(outcome.StockEntries, StockEntry{
				ProductID: line.ProductID,
				Quantity:  line.ReceivedQty,
				UnitCost:  unitCost,
			})
		}
	}

	outcome.FullyReceived = o.isFullyReceived()
	if outcome.FullyReceived {
		o.Status = PurchaseOrderStatusRecebida
	} else {
		o.Status = PurchaseOrderStatusEmTransito
	}
	o.UpdatedAt = now
	o.IncrementVersion()

	return outcome, nil
}

// isFullyReceived checks whether every line's received quantity covers its order
func (o *PurchaseOrder) isFullyReceived() bool {
	for idx := range o.Items {
		if !o.Items[idx].IsFullyReceived() {
			return false
		}
	}
	return len(o.Items) > 0
}

// OrderLine is the plain input shape for creating order items
type OrderLine struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int64
	UnitPrice   int64
}
