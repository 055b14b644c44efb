package partner

import (
	"context"

	"github.com/estoque/backend/internal/domain/partner"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// CustomerService handles customer registry operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	orderRepo    trade.SalesOrderRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, orderRepo trade.SalesOrderRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

// Create registers a customer. The document must be unique among active customers.
func (s *CustomerService) Create(ctx context.Context, input CustomerInput) (*CustomerDTO, error) {
	exists, err := s.customerRepo.ExistsByDocument(ctx, input.Document)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewConflictError("Customer with this document already exists")
	}

	customer, err := partner.NewCustomer(input.Name, input.Document, input.Email, input.Phone, input.Address)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	dto := CustomerFromDomain(customer)
	return &dto, nil
}

// Get returns a customer by ID
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*CustomerDTO, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer.IsDeleted() {
		return nil, shared.ErrNotFound
	}
	dto := CustomerFromDomain(customer)
	return &dto, nil
}

// List returns the customers matching the filter
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[CustomerDTO], error) {
	customers, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.customerRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]CustomerDTO, 0, len(customers))
	for idx := range customers {
		dtos = append(dtos, CustomerFromDomain(&customers[idx]))
	}
	return shared.NewPaginated(dtos, total, filter.Page, filter.PageSize), nil
}

// Update changes a customer's contact data. The document is immutable.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input CustomerInput) (*CustomerDTO, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer.IsDeleted() {
		return nil, shared.ErrNotFound
	}

	if err := customer.Update(input.Name, input.Email, input.Phone, input.Address); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	dto := CustomerFromDomain(customer)
	return &dto, nil
}

// Delete soft deletes a customer. Customers with open sales orders
// cannot be deleted.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if customer.IsDeleted() {
		return shared.ErrNotFound
	}

	open, err := s.orderRepo.CountOpenByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if open > 0 {
		return shared.NewInvalidStateError("Customer has open sales orders and cannot be deleted")
	}

	return s.customerRepo.SoftDelete(ctx, id)
}
