package catalog

import (
	"context"
	"time"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/shared"
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
		if p.SKU == sku && p.DeletedAt == nil {
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
		if p.DeletedAt == nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindLowStock(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0)
	for _, p := range r.products {
		if p.DeletedAt == nil && p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Save(_ context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok || p.DeletedAt != nil {
		return shared.ErrNotFound
	}
	now := time.Now()
	p.DeletedAt = &now
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) CountLowStock(_ context.Context) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.DeletedAt == nil && p.IsLowStock() {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) ExistsBySKU(_ context.Context, sku string) (bool, error) {
	for _, p := range r.products {
		if p.SKU == sku && p.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) CountByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.CategoryID == categoryID && p.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) AdjustQuantity(_ context.Context, id uuid.UUID, delta int64) error {
	p, ok := r.products[id]
	if !ok {
		return shared.ErrNotFound
	}
	if p.Quantity+delta < 0 {
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
		if p.DeletedAt == nil {
			total += p.StockValue()
		}
	}
	return total, nil
}

var _ catalog.ProductRepository = (*fakeProductRepo)(nil)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*catalog.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*catalog.Category)}
}

func (r *fakeCategoryRepo) add(c *catalog.Category) { r.categories[c.ID] = c }

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Category, error) {
	out := make([]catalog.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Save(_ context.Context, c *catalog.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.categories)), nil
}

var _ catalog.CategoryRepository = (*fakeCategoryRepo)(nil)
