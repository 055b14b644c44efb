package trade

import (
	"context"
	"fmt"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/finance"
	"github.com/estoque/backend/internal/domain/inventory"
	"github.com/estoque/backend/internal/domain/partner"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// In-memory repositories for exercising the services without a database.

type fakeProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *fakeProductRepo) add(p *catalog.Product) { r.products[p.ID] = p }

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) FindBySKU(_ context.Context, sku string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) FindLowStock(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Save(_ context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return shared.ErrNotFound
	}
	now := p.UpdatedAt
	p.DeletedAt = &now
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) CountLowStock(_ context.Context) (int64, error) { return 0, nil }

func (r *fakeProductRepo) ExistsBySKU(_ context.Context, sku string) (bool, error) {
	_, err := r.FindBySKU(context.Background(), sku)
	return err == nil, nil
}

func (r *fakeProductRepo) CountByCategory(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeProductRepo) AdjustQuantity(_ context.Context, id uuid.UUID, delta int64) error {
	p, ok := r.products[id]
	if !ok {
		return shared.ErrNotFound
	}
	if delta < 0 && p.Quantity+delta < 0 {
		return shared.ErrInsufficientStock
	}
	p.Quantity += delta
	return nil
}

func (r *fakeProductRepo) UpdateCostPrice(_ context.Context, id uuid.UUID, costPrice int64) error {
	p, ok := r.products[id]
	if !ok {
		return shared.ErrNotFound
	}
	p.CostPrice = costPrice
	return nil
}

func (r *fakeProductRepo) SumStockValue(_ context.Context) (int64, error) {
	var total int64
	for _, p := range r.products {
		total += p.StockValue()
	}
	return total, nil
}

type fakeMovementRepo struct {
	movements []inventory.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *inventory.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *fakeMovementRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.StockMovement, error) {
	for i := range r.movements {
		if r.movements[i].ID == id {
			return &r.movements[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeMovementRepo) FindByProduct(_ context.Context, productID uuid.UUID, _ shared.Filter) ([]inventory.StockMovement, error) {
	var out []inventory.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) FindAll(_ context.Context, _ shared.Filter) ([]inventory.StockMovement, error) {
	return r.movements, nil
}

func (r *fakeMovementRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.movements)), nil
}

func (r *fakeMovementRepo) CountByProduct(_ context.Context, productID uuid.UUID) (int64, error) {
	out, _ := r.FindByProduct(context.Background(), productID, shared.Filter{})
	return int64(len(out)), nil
}

func (r *fakeMovementRepo) NetQuantityByProduct(_ context.Context, productID uuid.UUID) (int64, error) {
	var net int64
	for _, m := range r.movements {
		if m.ProductID == productID {
			net += m.SignedQuantity()
		}
	}
	return net, nil
}

type fakePurchaseOrderRepo struct {
	orders map[uuid.UUID]*trade.PurchaseOrder
	seq    int
}

func newFakePurchaseOrderRepo() *fakePurchaseOrderRepo {
	return &fakePurchaseOrderRepo{orders: make(map[uuid.UUID]*trade.PurchaseOrder)}
}

func (r *fakePurchaseOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok || o.DeletedAt != nil {
		return nil, shared.ErrNotFound
	}
	clone := *o
	clone.Items = append([]trade.PurchaseOrderItem(nil), o.Items...)
	return &clone, nil
}

func (r *fakePurchaseOrderRepo) FindByCode(_ context.Context, code string) (*trade.PurchaseOrder, error) {
	for _, o := range r.orders {
		if o.Code == code {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakePurchaseOrderRepo) FindAll(_ context.Context, _ shared.Filter) ([]*trade.PurchaseOrder, error) {
	out := make([]*trade.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		if o.DeletedAt == nil {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakePurchaseOrderRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakePurchaseOrderRepo) CountByStatus(_ context.Context, status trade.PurchaseOrderStatus) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakePurchaseOrderRepo) Save(_ context.Context, o *trade.PurchaseOrder) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakePurchaseOrderRepo) SaveWithLock(_ context.Context, o *trade.PurchaseOrder, loadedVersion int) error {
	stored, ok := r.orders[o.ID]
	if !ok {
		return shared.ErrNotFound
	}
	if stored.Version != loadedVersion {
		return shared.ErrConflict
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakePurchaseOrderRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	o, ok := r.orders[id]
	if !ok {
		return shared.ErrNotFound
	}
	now := o.UpdatedAt
	o.DeletedAt = &now
	return nil
}

func (r *fakePurchaseOrderRepo) NextCode(_ context.Context) (string, error) {
	r.seq++
	return formatCode("PO", r.seq), nil
}

func (r *fakePurchaseOrderRepo) CountOpenBySupplier(_ context.Context, supplierID uuid.UUID) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.SupplierID == supplierID && !o.Status.IsTerminal() && o.DeletedAt == nil {
			n++
		}
	}
	return n, nil
}

type fakeSalesOrderRepo struct {
	orders map[uuid.UUID]*trade.SalesOrder
	seq    int
}

func newFakeSalesOrderRepo() *fakeSalesOrderRepo {
	return &fakeSalesOrderRepo{orders: make(map[uuid.UUID]*trade.SalesOrder)}
}

func (r *fakeSalesOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	o, ok := r.orders[id]
	if !ok || o.DeletedAt != nil {
		return nil, shared.ErrNotFound
	}
	clone := *o
	clone.Items = append([]trade.SalesOrderItem(nil), o.Items...)
	return &clone, nil
}

func (r *fakeSalesOrderRepo) FindByCode(_ context.Context, code string) (*trade.SalesOrder, error) {
	for _, o := range r.orders {
		if o.Code == code {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeSalesOrderRepo) FindAll(_ context.Context, _ shared.Filter) ([]*trade.SalesOrder, error) {
	out := make([]*trade.SalesOrder, 0, len(r.orders))
	for _, o := range r.orders {
		if o.DeletedAt == nil {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeSalesOrderRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeSalesOrderRepo) CountByStatus(_ context.Context, status trade.SalesOrderStatus) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeSalesOrderRepo) Save(_ context.Context, o *trade.SalesOrder) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeSalesOrderRepo) SaveWithLock(_ context.Context, o *trade.SalesOrder, loadedVersion int) error {
	stored, ok := r.orders[o.ID]
	if !ok {
		return shared.ErrNotFound
	}
	if stored.Version != loadedVersion {
		return shared.ErrConflict
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeSalesOrderRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	o, ok := r.orders[id]
	if !ok {
		return shared.ErrNotFound
	}
	now := o.UpdatedAt
	o.DeletedAt = &now
	return nil
}

func (r *fakeSalesOrderRepo) NextCode(_ context.Context) (string, error) {
	r.seq++
	return formatCode("VD", r.seq), nil
}

func (r *fakeSalesOrderRepo) CountOpenByCustomer(_ context.Context, customerID uuid.UUID) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.CustomerID == customerID && !o.Status.IsTerminal() && o.DeletedAt == nil {
			n++
		}
	}
	return n, nil
}

type fakeReceiptRepo struct {
	receipts []*trade.GoodsReceipt
}

func (r *fakeReceiptRepo) Create(_ context.Context, receipt *trade.GoodsReceipt) error {
	r.receipts = append(r.receipts, receipt)
	return nil
}

func (r *fakeReceiptRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.GoodsReceipt, error) {
	for _, receipt := range r.receipts {
		if receipt.ID == id {
			return receipt, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeReceiptRepo) FindByOrder(_ context.Context, orderID uuid.UUID) ([]*trade.GoodsReceipt, error) {
	var out []*trade.GoodsReceipt
	for _, receipt := range r.receipts {
		if receipt.OrderID == orderID {
			out = append(out, receipt)
		}
	}
	return out, nil
}

func (r *fakeReceiptRepo) FindAll(_ context.Context, _ shared.Filter) ([]*trade.GoodsReceipt, error) {
	return r.receipts, nil
}

func (r *fakeReceiptRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.receipts)), nil
}

type fakePayableRepo struct {
	payables []*finance.AccountPayable
}

func (r *fakePayableRepo) Create(_ context.Context, p *finance.AccountPayable) error {
	r.payables = append(r.payables, p)
	return nil
}

func (r *fakePayableRepo) FindByID(_ context.Context, id uuid.UUID) (*finance.AccountPayable, error) {
	for _, p := range r.payables {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakePayableRepo) FindByOrder(_ context.Context, orderID uuid.UUID) ([]*finance.AccountPayable, error) {
	var out []*finance.AccountPayable
	for _, p := range r.payables {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePayableRepo) FindAll(_ context.Context, _ shared.Filter) ([]*finance.AccountPayable, error) {
	return r.payables, nil
}

func (r *fakePayableRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.payables)), nil
}

func (r *fakePayableRepo) Save(_ context.Context, _ *finance.AccountPayable) error { return nil }

func (r *fakePayableRepo) SumPendingAmount(_ context.Context) (int64, error) {
	var total int64
	for _, p := range r.payables {
		if p.Status == finance.PayableStatusPendente {
			total += p.Amount
		}
	}
	return total, nil
}

type fakeReceivableRepo struct {
	receivables []*finance.AccountReceivable
}

func (r *fakeReceivableRepo) Create(_ context.Context, rec *finance.AccountReceivable) error {
	r.receivables = append(r.receivables, rec)
	return nil
}

func (r *fakeReceivableRepo) FindByID(_ context.Context, id uuid.UUID) (*finance.AccountReceivable, error) {
	for _, rec := range r.receivables {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeReceivableRepo) FindByOrder(_ context.Context, orderID uuid.UUID) ([]*finance.AccountReceivable, error) {
	var out []*finance.AccountReceivable
	for _, rec := range r.receivables {
		if rec.OrderID == orderID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeReceivableRepo) FindAll(_ context.Context, _ shared.Filter) ([]*finance.AccountReceivable, error) {
	return r.receivables, nil
}

func (r *fakeReceivableRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.receivables)), nil
}

func (r *fakeReceivableRepo) Save(_ context.Context, _ *finance.AccountReceivable) error { return nil }

func (r *fakeReceivableRepo) SumPendingAmount(_ context.Context) (int64, error) {
	var total int64
	for _, rec := range r.receivables {
		if rec.Status == finance.ReceivableStatusPendente {
			total += rec.Amount
		}
	}
	return total, nil
}

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
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Save(_ context.Context, s *partner.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	s, ok := r.suppliers[id]
	if !ok {
		return shared.ErrNotFound
	}
	now := s.UpdatedAt
	s.DeletedAt = &now
	return nil
}

func (r *fakeSupplierRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.suppliers)), nil
}

func (r *fakeSupplierRepo) ExistsByCNPJ(_ context.Context, cnpj string) (bool, error) {
	for _, s := range r.suppliers {
		if s.CNPJ == cnpj {
			return true, nil
		}
	}
	return false, nil
}

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
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Save(_ context.Context, c *partner.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	c, ok := r.customers[id]
	if !ok {
		return shared.ErrNotFound
	}
	now := c.UpdatedAt
	c.DeletedAt = &now
	return nil
}

func (r *fakeCustomerRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.customers)), nil
}

func (r *fakeCustomerRepo) ExistsByDocument(_ context.Context, document string) (bool, error) {
	for _, c := range r.customers {
		if c.Document == document {
			return true, nil
		}
	}
	return false, nil
}

func formatCode(prefix string, seq int) string {
	return fmt.Sprintf("%s-%04d", prefix, seq)
}
