package catalog

import (
	"context"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create registers a product with zero initial stock. Stock only enters
// through goods receipts or manual ledger movements.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	exists, err := s.productRepo.ExistsBySKU(ctx, input.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewConflictError("Product with this SKU already exists")
	}

	product, err := catalog.NewProduct(input.Name, input.SKU, input.Price, input.MinStock, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	dto := ProductFromDomain(product)
	return &dto, nil
}

// Get returns a product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.IsDeleted() {
		return nil, shared.ErrNotFound
	}
	dto := ProductFromDomain(product)
	return &dto, nil
}

// List returns the products matching the filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductDTO], error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return shared.NewPaginated(mapProducts(products), total, filter.Page, filter.PageSize), nil
}

// ListLowStock returns products at or below their minimum stock threshold
func (s *ProductService) ListLowStock(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductDTO], error) {
	products, err := s.productRepo.FindLowStock(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}

	return shared.NewPaginated(mapProducts(products), total, filter.Page, filter.PageSize), nil
}

// Update changes the editable fields of a product. SKU is immutable and
// quantity only moves through the stock ledger.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.IsDeleted() {
		return nil, shared.ErrNotFound
	}

	if product.CategoryID != input.CategoryID {
		if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := product.Update(input.Name, input.Price, input.MinStock, input.CategoryID); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	dto := ProductFromDomain(product)
	return &dto, nil
}

// Delete soft deletes a product. Its movement history stays intact.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.SoftDelete(ctx, id)
}

func mapProducts(products []catalog.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for idx := range products {
		dtos = append(dtos, ProductFromDomain(&products[idx]))
	}
	return dtos
}
