package finance

import (
	"fmt"
	"time"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PayableStatus represents the settlement status of an account payable
type PayableStatus string

const (
	PayableStatusPendente PayableStatus = "PENDENTE"
	PayableStatusPago     PayableStatus = "PAGO"
)

// IsValid checks if the status is a valid PayableStatus
func (s PayableStatus) IsValid() bool {
	return s == PayableStatusPendente || s == PayableStatusPago
}

// String returns the string representation of PayableStatus
func (s PayableStatus) String() string {
	return string(s)
}

// AccountPayable is a debt owed to a supplier, created by a goods receipt.
// Amount is in centavos and fixed at creation.
type AccountPayable struct {
	shared.BaseEntity
	SupplierID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	SupplierName string        `gorm:"type:varchar(200);not null"`
	OrderID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	OrderCode    string        `gorm:"type:varchar(20);not null"`
	ReceiptID    uuid.UUID     `gorm:"type:uuid;not null"`
	Amount       int64         `gorm:"not null"`
	Status       PayableStatus `gorm:"type:varchar(20);not null;default:'PENDENTE'"`
	DueDate      *time.Time
	PaidAt       *time.Time
}

// TableName returns the table name for GORM
func (AccountPayable) TableName() string {
	return "accounts_payable"
}

// NewAccountPayable creates a pending payable for a goods receipt
func NewAccountPayable(supplierID uuid.UUID, supplierName string, orderID uuid.UUID, orderCode string, receiptID uuid.UUID, amount int64, dueDate *time.Time) (*AccountPayable, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewValidationError("Supplier ID cannot be empty")
	}
	if orderID == uuid.Nil {
		return nil, shared.NewValidationError("Order ID cannot be empty")
	}
	if amount <= 0 {
		return nil, shared.NewValidationError("Payable amount must be positive")
	}

	return &AccountPayable{
		BaseEntity:   shared.NewBaseEntity(),
		SupplierID:   supplierID,
		SupplierName: supplierName,
		OrderID:      orderID,
		OrderCode:    orderCode,
		ReceiptID:    receiptID,
		Amount:       amount,
		Status:       PayableStatusPendente,
		DueDate:      dueDate,
	}, nil
}

// MarkPaid settles the payable. Settling twice is an error.
func (p *AccountPayable) MarkPaid() error {
	if p.Status == PayableStatusPago {
		return shared.NewInvalidStateError(
			fmt.Sprintf("Payable for order %s is already settled", p.OrderCode))
	}

	now := time.Now()
	p.Status = PayableStatusPago
	p.PaidAt = &now
	p.UpdatedAt = now

	return nil
}

// IsOverdue returns true if the payable is pending past its due date
func (p *AccountPayable) IsOverdue() bool {
	return p.Status == PayableStatusPendente && p.DueDate != nil && p.DueDate.Before(time.Now())
}
