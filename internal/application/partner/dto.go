package partner

import (
	"time"

	"github.com/estoque/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// SupplierInput is the input for creating or updating a supplier.
// CNPJ is only read on creation; it is immutable afterwards.
type SupplierInput struct {
	Name    string
	CNPJ    string
	Email   string
	Phone   string
	Address string
}

// SupplierDTO is the read model for a supplier
type SupplierDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SupplierFromDomain maps a supplier to its DTO
func SupplierFromDomain(s *partner.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:        s.ID,
		Name:      s.Name,
		CNPJ:      s.CNPJ,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// CustomerInput is the input for creating or updating a customer.
// Document (CPF or CNPJ) is only read on creation.
type CustomerInput struct {
	Name     string
	Document string
	Email    string
	Phone    string
	Address  string
}

// CustomerDTO is the read model for a customer
type CustomerDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerFromDomain maps a customer to its DTO
func CustomerFromDomain(c *partner.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
