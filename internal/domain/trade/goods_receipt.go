package trade

import (
	"time"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// GoodsReceiptItem is one counted line of a goods receipt, kept as recorded.
// HasDivergence marks a count that differs from the ordered quantity, or a
// product the order never listed.
type GoodsReceiptItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ReceiptID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null"`
	ReceivedQty   int64     `gorm:"not null"`
	HasDivergence bool      `gorm:"not null"`
}

// TableName returns the table name for GORM
func (GoodsReceiptItem) TableName() string {
	return "goods_receipt_items"
}

// GoodsReceipt is the immutable record of a blind count performed against a
// purchase order. It is written once by the receiving workflow and never
// updated afterwards.
type GoodsReceipt struct {
	shared.BaseEntity
	OrderID       uuid.UUID          `gorm:"type:uuid;not null;index"`
	OrderCode     string             `gorm:"type:varchar(20);not null"`
	Items         []GoodsReceiptItem `gorm:"foreignKey:ReceiptID;references:ID"`
	PayableAmount int64              `gorm:"not null"`
	HasDivergence bool               `gorm:"not null"`
	ReceivedAt    time.Time          `gorm:"not null"`
	Notes         string             `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (GoodsReceipt) TableName() string {
	return "goods_receipts"
}

// NewGoodsReceipt builds a receipt record from the outcome of applying a blind
// count to a purchase order.
func NewGoodsReceipt(order *PurchaseOrder, outcome *ReceiptOutcome, notes string) (*GoodsReceipt, error) {
	if order == nil || outcome == nil {
		return nil, shared.NewValidationError("Receipt requires an order and an outcome")
	}

	receipt := &GoodsReceipt{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       order.ID,
		OrderCode:     order.Code,
		PayableAmount: outcome.PayableAmount,
		ReceivedAt:    time.Now(),
		Notes:         notes,
		Items:         make([]GoodsReceiptItem, 0, len(outcome.Items)),
	}

	for _, item := range outcome.Items {
		item.ReceiptID = receipt.ID
		receipt.Items = append(receipt.Items, item)
		if item.HasDivergence {
			receipt.HasDivergence = true
		}
	}

	return receipt, nil
}
