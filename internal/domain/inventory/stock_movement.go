package inventory

import (
	"time"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MovementType represents the direction of a stock movement
type MovementType string

const (
	MovementTypeIn  MovementType = "IN"
	MovementTypeOut MovementType = "OUT"
)

// IsValid returns true if the movement type is valid
func (t MovementType) IsValid() bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// SignedQuantity applies the movement direction to a quantity
func (t MovementType) SignedQuantity(quantity int64) int64 {
	if t == MovementTypeOut {
		return -quantity
	}
	return quantity
}

// StockMovement is one entry of the append-only stock ledger. Movements are
// immutable once created; corrections are recorded as new movements. The sum
// of signed quantities per product must always equal the product's denormalized
// on-hand counter.
type StockMovement struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key"`
	ProductID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Type      MovementType `gorm:"type:varchar(10);not null"`
	Quantity  int64        `gorm:"not null"`
	Reason    string       `gorm:"type:varchar(255)"`
	CreatedAt time.Time    `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a new ledger entry
func NewStockMovement(productID uuid.UUID, movType MovementType, quantity int64, reason string) (*StockMovement, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID cannot be empty")
	}
	if !movType.IsValid() {
		return nil, shared.NewValidationError("Movement type must be IN or OUT")
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("Movement quantity must be positive")
	}

	return &StockMovement{
		ID:        uuid.New(),
		ProductID: productID,
		Type:      movType,
		Quantity:  quantity,
		Reason:    reason,
		CreatedAt: time.Now(),
	}, nil
}

// SignedQuantity returns the quantity with the movement direction applied
func (m *StockMovement) SignedQuantity() int64 {
	return m.Type.SignedQuantity(m.Quantity)
}
