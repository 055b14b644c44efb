package catalog

import (
	"time"

	"github.com/estoque/backend/internal/domain/shared"
)

// Category groups products for navigation and reporting
type Category struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name, description string) (*Category, error) {
	if name == "" {
		return nil, shared.NewValidationError("Category name cannot be empty")
	}

	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}

// Update changes the category attributes
func (c *Category) Update(name, description string) error {
	if name == "" {
		return shared.NewValidationError("Category name cannot be empty")
	}

	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now()

	return nil
}
