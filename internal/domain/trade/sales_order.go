package trade

import (
	"fmt"
	"time"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SalesOrderStatus represents the status of a sales order
type SalesOrderStatus string

const (
	SalesOrderStatusPendente  SalesOrderStatus = "PENDENTE"
	SalesOrderStatusAprovada  SalesOrderStatus = "APROVADA"
	SalesOrderStatusFaturada  SalesOrderStatus = "FATURADA"
	SalesOrderStatusCancelada SalesOrderStatus = "CANCELADA"
)

var salesOrderTransitions = map[SalesOrderStatus][]SalesOrderStatus{
	SalesOrderStatusPendente:  {SalesOrderStatusAprovada, SalesOrderStatusCancelada},
	SalesOrderStatusAprovada:  {SalesOrderStatusFaturada, SalesOrderStatusCancelada},
	SalesOrderStatusFaturada:  {},
	SalesOrderStatusCancelada: {},
}

// IsValid checks if the status is a valid SalesOrderStatus
func (s SalesOrderStatus) IsValid() bool {
	_, ok := salesOrderTransitions[s]
	return ok
}

// String returns the string representation of SalesOrderStatus
func (s SalesOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s SalesOrderStatus) CanTransitionTo(target SalesOrderStatus) bool {
	for _, allowed := range salesOrderTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transition is possible
func (s SalesOrderStatus) IsTerminal() bool {
	return len(salesOrderTransitions[s]) == 0
}

// SalesOrderItem is a line item in a sales order. UnitPrice is in centavos,
// copied from the product at order time.
type SalesOrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(200);not null"`
	Quantity    int64     `gorm:"not null"`
	UnitPrice   int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SalesOrderItem) TableName() string {
	return "sales_order_items"
}

// NewSalesOrderItem creates a new sales order line
func NewSalesOrderItem(orderID, productID uuid.UUID, productName string, quantity, unitPrice int64) (*SalesOrderItem, error) {
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
	return &SalesOrderItem{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Subtotal returns quantity times unit price, in centavos
func (i *SalesOrderItem) Subtotal() int64 {
	return i.Quantity * i.UnitPrice
}

// SalesOrder represents a customer order aggregate root
type SalesOrder struct {
	shared.BaseAggregateRoot
	Code         string           `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	CustomerName string           `gorm:"type:varchar(200);not null"`
	Items        []SalesOrderItem `gorm:"foreignKey:OrderID;references:ID"`
	TotalValue   int64            `gorm:"not null"`
	Status       SalesOrderStatus `gorm:"type:varchar(20);not null;default:'PENDENTE'"`
	Notes        string           `gorm:"type:text"`
	DeletedAt    *time.Time       `gorm:"index"`
}

// TableName returns the table name for GORM
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// NewSalesOrder creates a sales order in PENDENTE with its lines
func NewSalesOrder(code string, customerID uuid.UUID, customerName string, lines []OrderLine, notes string) (*SalesOrder, error) {
	if code == "" {
		return nil, shared.NewValidationError("Order code cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("Customer ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewValidationError("Order must have at least one item")
	}

	order := &SalesOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		CustomerID:        customerID,
		CustomerName:      customerName,
		Status:            SalesOrderStatusPendente,
		Notes:             notes,
		Items:             make([]SalesOrderItem, 0, len(lines)),
	}

	var total int64
	for _, line := range lines {
		item, err := NewSalesOrderItem(order.ID, line.ProductID, line.ProductName, line.Quantity, line.UnitPrice)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, *item)
		total += item.Subtotal()
	}
	order.TotalValue = total

	return order, nil
}

// TransitionTo applies a status transition, validated against the
// allowed-transition table. The order is unchanged on failure.
func (o *SalesOrder) TransitionTo(target SalesOrderStatus) error {
	if !target.IsValid() {
		return shared.NewValidationError(fmt.Sprintf("Unknown sales order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewInvalidTransitionError(o.Status.String(), target.String())
	}

	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// CanDelete returns true while the order is still PENDENTE
func (o *SalesOrder) CanDelete() bool {
	return o.Status == SalesOrderStatusPendente
}
