package partner

import (
	"context"

	"github.com/estoque/backend/internal/domain/partner"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// SupplierService handles supplier registry operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	orderRepo    trade.PurchaseOrderRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, orderRepo trade.PurchaseOrderRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
	}
}

// Create registers a supplier. CNPJ must be unique among active suppliers.
func (s *SupplierService) Create(ctx context.Context, input SupplierInput) (*SupplierDTO, error) {
	exists, err := s.supplierRepo.ExistsByCNPJ(ctx, input.CNPJ)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewConflictError("Supplier with this CNPJ already exists")
	}

	supplier, err := partner.NewSupplier(input.Name, input.CNPJ, input.Email, input.Phone, input.Address)
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	dto := SupplierFromDomain(supplier)
	return &dto, nil
}

// Get returns a supplier by ID
func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) (*SupplierDTO, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier.IsDeleted() {
		return nil, shared.ErrNotFound
	}
	dto := SupplierFromDomain(supplier)
	return &dto, nil
}

// List returns the suppliers matching the filter
func (s *SupplierService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[SupplierDTO], error) {
	suppliers, err := s.supplierRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.supplierRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]SupplierDTO, 0, len(suppliers))
	for idx := range suppliers {
		dtos = append(dtos, SupplierFromDomain(&suppliers[idx]))
	}
	return shared.NewPaginated(dtos, total, filter.Page, filter.PageSize), nil
}

// Update changes a supplier's contact data. CNPJ is immutable.
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, input SupplierInput) (*SupplierDTO, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier.IsDeleted() {
		return nil, shared.ErrNotFound
	}

	if err := supplier.Update(input.Name, input.Email, input.Phone, input.Address); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	dto := SupplierFromDomain(supplier)
	return &dto, nil
}

// Delete soft deletes a supplier. Suppliers with open purchase orders
// cannot be deleted.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier.IsDeleted() {
		return shared.ErrNotFound
	}

	open, err := s.orderRepo.CountOpenBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if open > 0 {
		return shared.NewInvalidStateError("Supplier has open purchase orders and cannot be deleted")
	}

	return s.supplierRepo.SoftDelete(ctx, id)
}
