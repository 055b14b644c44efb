package partner

import (
	"context"
	"time"

	"github.com/estoque/backend/internal/domain/partner"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// In-memory repositories for exercising the services without a database.

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*partner.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*partner.Supplier)}
}

func (r *fakeSupplierRepo) add(s *partner.Supplier) { r.suppliers[s.ID] = s }

func (r *fakeSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return s, nil
}

func (r *fakeSupplierRepo) FindAll(_ context.Context, _ shared.Filter) ([]partner.Supplier, error) {
	out := make([]partner.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		if s.DeletedAt == nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) Save(_ context.Context, s *partner.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	s, ok := r.suppliers[id]
	if !ok || s.DeletedAt != nil {
		return shared.ErrNotFound
	}
	now := time.Now()
	s.DeletedAt = &now
	return nil
}

func (r *fakeSupplierRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	var count int64
	for _, s := range r.suppliers {
		if s.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *fakeSupplierRepo) ExistsByCNPJ(_ context.Context, cnpj string) (bool, error) {
	for _, s := range r.suppliers {
		if s.CNPJ == cnpj && s.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

var _ partner.SupplierRepository = (*fakeSupplierRepo)(nil)

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*partner.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*partner.Customer)}
}

func (r *fakeCustomerRepo) add(c *partner.Customer) { r.customers[c.ID] = c }

func (r *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) FindAll(_ context.Context, _ shared.Filter) ([]partner.Customer, error) {
	out := make([]partner.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if c.DeletedAt == nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Save(_ context.Context, c *partner.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	c, ok := r.customers[id]
	if !ok || c.DeletedAt != nil {
		return shared.ErrNotFound
	}
	now := time.Now()
	c.DeletedAt = &now
	return nil
}

func (r *fakeCustomerRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	var count int64
	for _, c := range r.customers {
		if c.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *fakeCustomerRepo) ExistsByDocument(_ context.Context, document string) (bool, error) {
	for _, c := range r.customers {
		if c.Document == document && c.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

var _ partner.CustomerRepository = (*fakeCustomerRepo)(nil)

// fakePurchaseOrderRepo only tracks open-order counts; the supplier service
// touches nothing else on the interface.
type fakePurchaseOrderRepo struct {
	openBySupplier map[uuid.UUID]int64
}

func newFakePurchaseOrderRepo() *fakePurchaseOrderRepo {
	return &fakePurchaseOrderRepo{openBySupplier: make(map[uuid.UUID]int64)}
}

func (r *fakePurchaseOrderRepo) FindByID(context.Context, uuid.UUID) (*trade.PurchaseOrder, error) {
	return nil, shared.ErrNotFound
}

func (r *fakePurchaseOrderRepo) FindByCode(context.Context, string) (*trade.PurchaseOrder, error) {
	return nil, shared.ErrNotFound
}

func (r *fakePurchaseOrderRepo) FindAll(context.Context, shared.Filter) ([]*trade.PurchaseOrder, error) {
	return nil, nil
}

func (r *fakePurchaseOrderRepo) Count(context.Context, shared.Filter) (int64, error) { return 0, nil }

func (r *fakePurchaseOrderRepo) CountByStatus(context.Context, trade.PurchaseOrderStatus) (int64, error) {
	return 0, nil
}

func (r *fakePurchaseOrderRepo) Save(context.Context, *trade.PurchaseOrder) error { return nil }

func (r *fakePurchaseOrderRepo) SaveWithLock(context.Context, *trade.PurchaseOrder, int) error {
	return nil
}

func (r *fakePurchaseOrderRepo) SoftDelete(context.Context, uuid.UUID) error { return nil }

func (r *fakePurchaseOrderRepo) NextCode(context.Context) (string, error) { return "PO-0001", nil }

func (r *fakePurchaseOrderRepo) CountOpenBySupplier(_ context.Context, supplierID uuid.UUID) (int64, error) {
	return r.openBySupplier[supplierID], nil
}

var _ trade.PurchaseOrderRepository = (*fakePurchaseOrderRepo)(nil)

// fakeSalesOrderRepo mirrors fakePurchaseOrderRepo for the customer service.
type fakeSalesOrderRepo struct {
	openByCustomer map[uuid.UUID]int64
}

func newFakeSalesOrderRepo() *fakeSalesOrderRepo {
	return &fakeSalesOrderRepo{openByCustomer: make(map[uuid.UUID]int64)}
}

func (r *fakeSalesOrderRepo) FindByID(context.Context, uuid.UUID) (*trade.SalesOrder, error) {
	return nil, shared.ErrNotFound
}

func (r *fakeSalesOrderRepo) FindByCode(context.Context, string) (*trade.SalesOrder, error) {
	return nil, shared.ErrNotFound
}

func (r *fakeSalesOrderRepo) FindAll(context.Context, shared.Filter) ([]*trade.SalesOrder, error) {
	return nil, nil
}

func (r *fakeSalesOrderRepo) Count(context.Context, shared.Filter) (int64, error) { return 0, nil }

func (r *fakeSalesOrderRepo) CountByStatus(context.Context, trade.SalesOrderStatus) (int64, error) {
	return 0, nil
}

func (r *fakeSalesOrderRepo) Save(context.Context, *trade.SalesOrder) error { return nil }

func (r *fakeSalesOrderRepo) SaveWithLock(context.Context, *trade.SalesOrder, int) error { return nil }

func (r *fakeSalesOrderRepo) SoftDelete(context.Context, uuid.UUID) error { return nil }

func (r *fakeSalesOrderRepo) NextCode(context.Context) (string, error) { return "VD-0001", nil }

func (r *fakeSalesOrderRepo) CountOpenByCustomer(_ context.Context, customerID uuid.UUID) (int64, error) {
	return r.openByCustomer[customerID], nil
}

var _ trade.SalesOrderRepository = (*fakeSalesOrderRepo)(nil)
