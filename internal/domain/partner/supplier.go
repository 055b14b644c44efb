package partner

import (
	"time"

	"github.com/estoque/backend/internal/domain/shared"
)

// Supplier represents a goods supplier
type Supplier struct {
	shared.BaseEntity
	Name      string     `gorm:"type:varchar(200);not null"`
	CNPJ      string     `gorm:"type:varchar(20);not null;uniqueIndex"`
	Email     string     `gorm:"type:varchar(200)"`
	Phone     string     `gorm:"type:varchar(30)"`
	Address   string     `gorm:"type:varchar(500)"`
	DeletedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name, cnpj, email, phone, address string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewValidationError("Supplier name cannot be empty")
	}
	if cnpj == "" {
		return nil, shared.NewValidationError("Supplier CNPJ cannot be empty")
	}

	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		CNPJ:       cnpj,
		Email:      email,
		Phone:      phone,
		Address:    address,
	}, nil
}

// Update changes the supplier attributes. The CNPJ is immutable.
func (s *Supplier) Update(name, email, phone, address string) error {
	if name == "" {
		return shared.NewValidationError("Supplier name cannot be empty")
	}

	s.Name = name
	s.Email = email
	s.Phone = phone
	s.Address = address
	s.UpdatedAt = time.Now()

	return nil
}

// IsDeleted returns true if the supplier has been soft-deleted
func (s *Supplier) IsDeleted() bool {
	return s.DeletedAt != nil
}
