package finance

import (
	"fmt"
	"time"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReceivableStatus represents the settlement status of an account receivable
type ReceivableStatus string

const (
	ReceivableStatusPendente ReceivableStatus = "PENDENTE"
	ReceivableStatusRecebido ReceivableStatus = "RECEBIDO"
)

// IsValid checks if the status is a valid ReceivableStatus
func (s ReceivableStatus) IsValid() bool {
	return s == ReceivableStatusPendente || s == ReceivableStatusRecebido
}

// String returns the string representation of ReceivableStatus
func (s ReceivableStatus) String() string {
	return string(s)
}

// AccountReceivable is a credit owed by a customer, created when a sales
// order is invoiced. Amount is in centavos.
type AccountReceivable struct {
	shared.BaseEntity
	CustomerID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	CustomerName string           `gorm:"type:varchar(200);not null"`
	OrderID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	OrderCode    string           `gorm:"type:varchar(20);not null"`
	Amount       int64            `gorm:"not null"`
	Status       ReceivableStatus `gorm:"type:varchar(20);not null;default:'PENDENTE'"`
	DueDate      *time.Time
	ReceivedAt   *time.Time
}

// TableName returns the table name for GORM
func (AccountReceivable) TableName() string {
	return "accounts_receivable"
}

// NewAccountReceivable creates a pending receivable for an invoiced order
func NewAccountReceivable(customerID uuid.UUID, customerName string, orderID uuid.UUID, orderCode string, amount int64, dueDate *time.Time) (*AccountReceivable, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("Customer ID cannot be empty")
	}
	if orderID == uuid.Nil {
		return nil, shared.NewValidationError("Order ID cannot be empty")
	}
	if amount <= 0 {
		return nil, shared.NewValidationError("Receivable amount must be positive")
	}

	return &AccountReceivable{
		BaseEntity:   shared.NewBaseEntity(),
		CustomerID:   customerID,
		CustomerName: customerName,
		OrderID:      orderID,
		OrderCode:    orderCode,
		Amount:       amount,
		Status:       ReceivableStatusPendente,
		DueDate:      dueDate,
	}, nil
}

// MarkReceived settles the receivable. Settling twice is an error.
func (r *AccountReceivable) MarkReceived() error {
	if r.Status == ReceivableStatusRecebido {
		return shared.NewInvalidStateError(
			fmt.Sprintf("Receivable for order %s is already settled", r.OrderCode))
	}

	now := time.Now()
	r.Status = ReceivableStatusRecebido
	r.ReceivedAt = &now
	r.UpdatedAt = now

	return nil
}

// IsOverdue returns true if the receivable is pending past its due date
func (r *AccountReceivable) IsOverdue() bool {
	return r.Status == ReceivableStatusPendente && r.DueDate != nil && r.DueDate.Before(time.Now())
}
