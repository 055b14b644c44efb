package inventory

import (
	"time"

	"github.com/estoque/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// RecordMovementInput is the input for a manual stock movement
type RecordMovementInput struct {
	ProductID uuid.UUID
	Type      inventory.MovementType
	Quantity  int64
	Reason    string
}

// MovementDTO is the read model for a stock ledger entry
type MovementDTO struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName,omitempty"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MovementFromDomain maps a domain movement to its DTO
func MovementFromDomain(m inventory.StockMovement) MovementDTO {
	return MovementDTO{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type.String(),
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
	}
}

// ReconciliationDTO compares a product's stored quantity against the ledger
type ReconciliationDTO struct {
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	StoredQuantity int64     `json:"storedQuantity"`
	LedgerQuantity int64     `json:"ledgerQuantity"`
	Consistent     bool      `json:"consistent"`
}
