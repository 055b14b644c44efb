package trade

import (
	"time"

	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// CreatePurchaseOrderInput is the input for creating a purchase order.
// Unit prices are negotiated with the supplier and given in centavos.
type CreatePurchaseOrderInput struct {
	SupplierID uuid.UUID
	Items      []PurchaseItemInput
	Notes      string
}

// PurchaseItemInput is one requested purchase line
type PurchaseItemInput struct {
	ProductID uuid.UUID
	Quantity  int64
	UnitPrice int64
}

// CreateSalesOrderInput is the input for creating a sales order.
// Line prices are copied from the product catalog at creation time.
type CreateSalesOrderInput struct {
	CustomerID uuid.UUID
	Items      []SalesItemInput
	Notes      string
}

// SalesItemInput is one requested sales line
type SalesItemInput struct {
	ProductID uuid.UUID
	Quantity  int64
}

// ReceiveGoodsInput is the blind count reported at the receiving dock
type ReceiveGoodsInput struct {
	Items []ReceiveItemInput
	Notes string
}

// ReceiveItemInput is one counted receipt line
type ReceiveItemInput struct {
	ProductID   uuid.UUID
	ReceivedQty int64
}

// OrderItemDTO is the read model for an order line
type OrderItemDTO struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int64     `json:"quantity"`
	UnitPrice   int64     `json:"unitPrice"`
	ReceivedQty int64     `json:"receivedQty,omitempty"`
}

// PurchaseOrderDTO is the read model for a purchase order
type PurchaseOrderDTO struct {
	ID           uuid.UUID      `json:"id"`
	Code         string         `json:"code"`
	SupplierID   uuid.UUID      `json:"supplierId"`
	SupplierName string         `json:"supplierName"`
	Items        []OrderItemDTO `json:"items"`
	TotalValue   int64          `json:"totalValue"`
	Status       string         `json:"status"`
	Notes        string         `json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// PurchaseOrderFromDomain maps a purchase order to its DTO
func PurchaseOrderFromDomain(order *trade.PurchaseOrder) PurchaseOrderDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			ReceivedQty: item.ReceivedQty,
		})
	}
	return PurchaseOrderDTO{
		ID:           order.ID,
		Code:         order.Code,
		SupplierID:   order.SupplierID,
		SupplierName: order.SupplierName,
		Items:        items,
		TotalValue:   order.TotalValue,
		Status:       order.Status.String(),
		Notes:        order.Notes,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// SalesOrderDTO is the read model for a sales order
type SalesOrderDTO struct {
	ID           uuid.UUID      `json:"id"`
	Code         string         `json:"code"`
	CustomerID   uuid.UUID      `json:"customerId"`
	CustomerName string         `json:"customerName"`
	Items        []OrderItemDTO `json:"items"`
	TotalValue   int64          `json:"totalValue"`
	Status       string         `json:"status"`
	Notes        string         `json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// SalesOrderFromDomain maps a sales order to its DTO
func SalesOrderFromDomain(order *trade.SalesOrder) SalesOrderDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return SalesOrderDTO{
		ID:           order.ID,
		Code:         order.Code,
		CustomerID:   order.CustomerID,
		CustomerName: order.CustomerName,
		Items:        items,
		TotalValue:   order.TotalValue,
		Status:       order.Status.String(),
		Notes:        order.Notes,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// ReceiptItemDTO is the read model for a receipt line
type ReceiptItemDTO struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"productId"`
	ReceivedQty   int64     `json:"receivedQty"`
	HasDivergence bool      `json:"hasDivergence"`
}

// GoodsReceiptDTO is the read model for a goods receipt
type GoodsReceiptDTO struct {
	ID            uuid.UUID        `json:"id"`
	OrderID       uuid.UUID        `json:"orderId"`
	OrderCode     string           `json:"orderCode"`
	Items         []ReceiptItemDTO `json:"items"`
	PayableAmount int64            `json:"payableAmount"`
	HasDivergence bool             `json:"hasDivergence"`
	OrderStatus   string           `json:"orderStatus"`
	ReceivedAt    time.Time        `json:"receivedAt"`
	Notes         string           `json:"notes,omitempty"`
}

// GoodsReceiptFromDomain maps a goods receipt to its DTO
func GoodsReceiptFromDomain(receipt *trade.GoodsReceipt, orderStatus trade.PurchaseOrderStatus) GoodsReceiptDTO {
	items := make([]ReceiptItemDTO, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, ReceiptItemDTO{
			ID:            item.ID,
			ProductID:     item.ProductID,
			ReceivedQty:   item.ReceivedQty,
			HasDivergence: item.HasDivergence,
		})
	}
	return GoodsReceiptDTO{
		ID:            receipt.ID,
		OrderID:       receipt.OrderID,
		OrderCode:     receipt.OrderCode,
		Items:         items,
		PayableAmount: receipt.PayableAmount,
		HasDivergence: receipt.HasDivergence,
		OrderStatus:   orderStatus.String(),
		ReceivedAt:    receipt.ReceivedAt,
		Notes:         receipt.Notes,
	}
}
