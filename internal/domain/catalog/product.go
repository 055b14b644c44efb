package catalog

import (
	"time"

	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Product represents a sellable product tracked in stock.
// Price and CostPrice are stored in integer minor currency units (centavos).
// Quantity is the denormalized on-hand counter; the stock movement ledger is
// the source of truth and every mutation path must keep the two in sync.
type Product struct {
	shared.BaseAggregateRoot
	Name       string     `gorm:"type:varchar(200);not null"`
	SKU        string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Price      int64      `gorm:"not null"`
	CostPrice  int64      `gorm:"not null;default:0"`
	Quantity   int64      `gorm:"not null;default:0"`
	MinStock   int64      `gorm:"not null;default:0"`
	CategoryID uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeletedAt  *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with zero initial stock
func NewProduct(name, sku string, price, minStock int64, categoryID uuid.UUID) (*Product, error) {
	if name == "" {
		return nil, shared.NewValidationError("Product name cannot be empty")
	}
	if sku == "" {
		return nil, shared.NewValidationError("Product SKU cannot be empty")
	}
	if price < 1 {
		return nil, shared.NewValidationError("Product price must be at least 1")
	}
	if minStock < 0 {
		return nil, shared.NewValidationError("Minimum stock cannot be negative")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewValidationError("Category ID cannot be empty")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		SKU:               sku,
		Price:             price,
		CostPrice:         0,
		Quantity:          0,
		MinStock:          minStock,
		CategoryID:        categoryID,
	}, nil
}

// Update changes the mutable product attributes
func (p *Product) Update(name string, price, minStock int64, categoryID uuid.UUID) error {
	if name == "" {
		return shared.NewValidationError("Product name cannot be empty")
	}
	if price < 1 {
		return shared.NewValidationError("Product price must be at least 1")
	}
	if minStock < 0 {
		return shared.NewValidationError("Minimum stock cannot be negative")
	}
	if categoryID == uuid.Nil {
		return shared.NewValidationError("Category ID cannot be empty")
	}

	p.Name = name
	p.Price = price
	p.MinStock = minStock
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// CanFulfill returns true if on-hand stock covers the requested quantity
func (p *Product) CanFulfill(quantity int64) bool {
	return p.Quantity >= quantity
}

// IsLowStock returns true if on-hand stock is at or below the minimum threshold
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinStock
}

// IsDeleted returns true if the product has been soft-deleted
func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}

// StockValue returns the on-hand stock valued at last-received cost, in centavos
func (p *Product) StockValue() int64 {
	return p.Quantity * p.CostPrice
}
