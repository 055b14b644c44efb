package partner

import (
	"time"

	"github.com/estoque/backend/internal/domain/shared"
)

// Customer represents a sales customer
type Customer struct {
	shared.BaseEntity
	Name      string     `gorm:"type:varchar(200);not null"`
	Document  string     `gorm:"type:varchar(20);not null;uniqueIndex"` // CPF or CNPJ
	Email     string     `gorm:"type:varchar(200)"`
	Phone     string     `gorm:"type:varchar(30)"`
	Address   string     `gorm:"type:varchar(500)"`
	DeletedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(name, document, email, phone, address string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewValidationError("Customer name cannot be empty")
	}
	if document == "" {
		return nil, shared.NewValidationError("Customer document cannot be empty")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Document:   document,
		Email:      email,
		Phone:      phone,
		Address:    address,
	}, nil
}

// Update changes the customer attributes. The document is immutable.
func (c *Customer) Update(name, email, phone, address string) error {
	if name == "" {
		return shared.NewValidationError("Customer name cannot be empty")
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.UpdatedAt = time.Now()

	return nil
}

// IsDeleted returns true if the customer has been soft-deleted
func (c *Customer) IsDeleted() bool {
	return c.DeletedAt != nil
}
