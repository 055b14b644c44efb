package finance

import (
	"time"

	"github.com/estoque/backend/internal/domain/finance"
	"github.com/google/uuid"
)

// PayableDTO is the read model for an account payable
type PayableDTO struct {
	ID           uuid.UUID  `json:"id"`
	SupplierID   uuid.UUID  `json:"supplierId"`
	SupplierName string     `json:"supplierName"`
	OrderID      uuid.UUID  `json:"orderId"`
	OrderCode    string     `json:"orderCode"`
	ReceiptID    uuid.UUID  `json:"receiptId"`
	Amount       int64      `json:"amount"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	PaidAt       *time.Time `json:"paidAt,omitempty"`
	Overdue      bool       `json:"overdue"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// PayableFromDomain maps a payable to its DTO
func PayableFromDomain(p *finance.AccountPayable) PayableDTO {
	return PayableDTO{
		ID:           p.ID,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		OrderID:      p.OrderID,
		OrderCode:    p.OrderCode,
		ReceiptID:    p.ReceiptID,
		Amount:       p.Amount,
		Status:       p.Status.String(),
		DueDate:      p.DueDate,
		PaidAt:       p.PaidAt,
		Overdue:      p.IsOverdue(),
		CreatedAt:    p.CreatedAt,
	}
}

// ReceivableDTO is the read model for an account receivable
type ReceivableDTO struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customerId"`
	CustomerName string     `json:"customerName"`
	OrderID      uuid.UUID  `json:"orderId"`
	OrderCode    string     `json:"orderCode"`
	Amount       int64      `json:"amount"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	ReceivedAt   *time.Time `json:"receivedAt,omitempty"`
	Overdue      bool       `json:"overdue"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ReceivableFromDomain maps a receivable to its DTO
func ReceivableFromDomain(r *finance.AccountReceivable) ReceivableDTO {
	return ReceivableDTO{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		OrderID:      r.OrderID,
		OrderCode:    r.OrderCode,
		Amount:       r.Amount,
		Status:       r.Status.String(),
		DueDate:      r.DueDate,
		ReceivedAt:   r.ReceivedAt,
		Overdue:      r.IsOverdue(),
		CreatedAt:    r.CreatedAt,
	}
}
