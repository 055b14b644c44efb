package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/inventory"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *memProductRepo) add(p *catalog.Product) { r.products[p.ID] = p }

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *memProductRepo) FindBySKU(_ context.Context, _ string) (*catalog.Product, error) {
	return nil, shared.ErrNotFound
}

func (r *memProductRepo) FindByIDs(_ context.Context, _ []uuid.UUID) ([]catalog.Product, error) {
	return nil, nil
}

func (r *memProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	return nil, nil
}

func (r *memProductRepo) FindLowStock(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	return nil, nil
}

func (r *memProductRepo) Save(_ context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) SoftDelete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *memProductRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *memProductRepo) CountLowStock(_ context.Context) (int64, error) { return 0, nil }

func (r *memProductRepo) ExistsBySKU(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *memProductRepo) CountByCategory(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *memProductRepo) AdjustQuantity(_ context.Context, id uuid.UUID, delta int64) error {
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

func (r *memProductRepo) UpdateCostPrice(_ context.Context, id uuid.UUID, costPrice int64) error {
	p, ok := r.products[id]
	if !ok {
		return shared.ErrNotFound
	}
	p.CostPrice = costPrice
	return nil
}

func (r *memProductRepo) SumStockValue(_ context.Context) (int64, error) { return 0, nil }

type memMovementRepo struct {
	movements []inventory.StockMovement
}

func (r *memMovementRepo) Create(_ context.Context, m *inventory.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *memMovementRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.StockMovement, error) {
	for i := range r.movements {
		if r.movements[i].ID == id {
			return &r.movements[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memMovementRepo) FindByProduct(_ context.Context, productID uuid.UUID, _ shared.Filter) ([]inventory.StockMovement, error) {
	var out []inventory.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) FindAll(_ context.Context, _ shared.Filter) ([]inventory.StockMovement, error) {
	return r.movements, nil
}

func (r *memMovementRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.movements)), nil
}

func (r *memMovementRepo) CountByProduct(_ context.Context, productID uuid.UUID) (int64, error) {
	out, _ := r.FindByProduct(context.Background(), productID, shared.Filter{})
	return int64(len(out)), nil
}

func (r *memMovementRepo) NetQuantityByProduct(_ context.Context, productID uuid.UUID) (int64, error) {
	var net int64
	for _, m := range r.movements {
		if m.ProductID == productID {
			net += m.SignedQuantity()
		}
	}
	return net, nil
}

type stockFixture struct {
	products  *memProductRepo
	movements *memMovementRepo
	service   *StockService
}

func newStockFixture() *stockFixture {
	f := &stockFixture{
		products:  newMemProductRepo(),
		movements: &memMovementRepo{},
	}
	scope := NewNoOpTransactionScope(f.products, f.movements, nil, nil, nil, nil, nil)
	f.service = NewStockService(scope, f.products, f.movements)
	return f
}

func (f *stockFixture) newProduct(t *testing.T, name string, quantity int64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "SKU-"+uuid.NewString()[:8], 1000, 5, uuid.New())
	require.NoError(t, err)
	product.Quantity = quantity
	f.products.add(product)
	return product
}

func TestStockService_RecordMovement(t *testing.T) {
	ctx := context.Background()

	t.Run("in movement increments quantity and appends to the ledger", func(t *testing.T) {
		f := newStockFixture()
		product := f.newProduct(t, "Parafuso M6", 0)

		dto, err := f.service.RecordMovement(ctx, RecordMovementInput{
			ProductID: product.ID,
			Type:      inventory.MovementTypeIn,
			Quantity:  25,
			Reason:    "Carga inicial",
		})
		require.NoError(t, err)
		assert.Equal(t, "IN", dto.Type)
		assert.Equal(t, int64(25), dto.Quantity)
		assert.Equal(t, "Parafuso M6", dto.ProductName)
		assert.Equal(t, int64(25), product.Quantity)
		require.Len(t, f.movements.movements, 1)
		assert.Equal(t, "Carga inicial", f.movements.movements[0].Reason)
	})

	t.Run("out movement decrements quantity", func(t *testing.T) {
		f := newStockFixture()
		product := f.newProduct(t, "Porca M6", 10)

		_, err := f.service.RecordMovement(ctx, RecordMovementInput{
			ProductID: product.ID,
			Type:      inventory.MovementTypeOut,
			Quantity:  4,
			Reason:    "Ajuste de inventário",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(6), product.Quantity)
	})

	t.Run("out movement exceeding stock fails and writes nothing", func(t *testing.T) {
		f := newStockFixture()
		product := f.newProduct(t, "Arruela", 3)

		_, err := f.service.RecordMovement(ctx, RecordMovementInput{
			ProductID: product.ID,
			Type:      inventory.MovementTypeOut,
			Quantity:  5,
			Reason:    "Baixa manual",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, shared.CodeInsufficientStock, domainErr.Code)
		assert.Contains(t, domainErr.Message, "Arruela")
		assert.Equal(t, int64(3), product.Quantity)
		assert.Empty(t, f.movements.movements)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newStockFixture()

		_, err := f.service.RecordMovement(ctx, RecordMovementInput{
			ProductID: uuid.New(),
			Type:      inventory.MovementTypeIn,
			Quantity:  1,
			Reason:    "Teste",
		})
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, shared.CodeNotFound, domainErr.Code)
	})

	t.Run("invalid input is rejected before any write", func(t *testing.T) {
		f := newStockFixture()
		product := f.newProduct(t, "Prego", 10)

		_, err := f.service.RecordMovement(ctx, RecordMovementInput{
			ProductID: product.ID,
			Type:      inventory.MovementType("TRANSFER"),
			Quantity:  1,
			Reason:    "Teste",
		})
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, shared.CodeValidation, domainErr.Code)

		_, err = f.service.RecordMovement(ctx, RecordMovementInput{
			ProductID: product.ID,
			Type:      inventory.MovementTypeIn,
			Quantity:  0,
			Reason:    "Teste",
		})
		require.Error(t, err)
		assert.Equal(t, int64(10), product.Quantity)
		assert.Empty(t, f.movements.movements)
	})
}

func TestStockService_ReconcileProduct(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture()
	product := f.newProduct(t, "Parafuso M8", 0)

	for _, in := range []int64{12, 8} {
		_, err := f.service.RecordMovement(ctx, RecordMovementInput{
			ProductID: product.ID, Type: inventory.MovementTypeIn, Quantity: in, Reason: "Recebimento",
		})
		require.NoError(t, err)
	}
	_, err := f.service.RecordMovement(ctx, RecordMovementInput{
		ProductID: product.ID, Type: inventory.MovementTypeOut, Quantity: 5, Reason: "Venda",
	})
	require.NoError(t, err)

	rec, err := f.service.ReconcileProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), rec.StoredQuantity)
	assert.Equal(t, int64(15), rec.LedgerQuantity)
	assert.True(t, rec.Consistent)

	// Drift injected outside the movement path must be reported.
	product.Quantity = 20
	rec, err = f.service.ReconcileProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), rec.StoredQuantity)
	assert.Equal(t, int64(15), rec.LedgerQuantity)
	assert.False(t, rec.Consistent)
}

func TestStockService_ListProductMovements(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture()
	product := f.newProduct(t, "Parafuso M10", 0)
	other := f.newProduct(t, "Porca M10", 0)

	for _, p := range []uuid.UUID{product.ID, product.ID, other.ID} {
		_, err := f.service.RecordMovement(ctx, RecordMovementInput{
			ProductID: p, Type: inventory.MovementTypeIn, Quantity: 1, Reason: "Recebimento",
		})
		require.NoError(t, err)
	}

	page, err := f.service.ListProductMovements(ctx, product.ID, shared.Filter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Total)

	_, err = f.service.ListProductMovements(ctx, uuid.New(), shared.Filter{Page: 1, PageSize: 10})
	assert.Error(t, err)
}
