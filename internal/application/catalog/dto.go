package catalog

import (
	"time"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CreateProductInput is the input for creating a product.
// Price is the sale price in centavos.
type CreateProductInput struct {
	Name       string
	SKU        string
	Price      int64
	MinStock   int64
	CategoryID uuid.UUID
}

// UpdateProductInput is the input for updating a product. SKU and stock
// quantity are not updatable here; quantity only moves through the ledger.
type UpdateProductInput struct {
	Name       string
	Price      int64
	MinStock   int64
	CategoryID uuid.UUID
}

// ProductDTO is the read model for a product
type ProductDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	Price      int64     `json:"price"`
	CostPrice  int64     `json:"costPrice"`
	Quantity   int64     `json:"quantity"`
	MinStock   int64     `json:"minStock"`
	CategoryID uuid.UUID `json:"categoryId"`
	LowStock   bool      `json:"lowStock"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ProductFromDomain maps a product to its DTO
func ProductFromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:         p.ID,
		Name:       p.Name,
		SKU:        p.SKU,
		Price:      p.Price,
		CostPrice:  p.CostPrice,
		Quantity:   p.Quantity,
		MinStock:   p.MinStock,
		CategoryID: p.CategoryID,
		LowStock:   p.IsLowStock(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// CreateCategoryInput is the input for creating a category
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput is the input for updating a category
type UpdateCategoryInput struct {
	Name        string
	Description string
}

// CategoryDTO is the read model for a category
type CategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryFromDomain maps a category to its DTO
func CategoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
