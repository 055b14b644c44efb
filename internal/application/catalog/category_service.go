package catalog

import (
	"context"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryService handles category operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, productRepo catalog.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error) {
	category, err := catalog.NewCategory(input.Name, input.Description)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	dto := CategoryFromDomain(category)
	return &dto, nil
}

// Get returns a category by ID
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*CategoryDTO, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := CategoryFromDomain(category)
	return &dto, nil
}

// List returns the categories matching the filter
func (s *CategoryService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[CategoryDTO], error) {
	categories, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.categoryRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for idx := range categories {
		dtos = append(dtos, CategoryFromDomain(&categories[idx]))
	}
	return shared.NewPaginated(dtos, total, filter.Page, filter.PageSize), nil
}

// Update changes a category's name and description
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.Update(input.Name, input.Description); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	dto := CategoryFromDomain(category)
	return &dto, nil
}

// Delete removes a category. Categories still referenced by products
// cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return shared.NewInvalidStateError("Category has products and cannot be deleted")
	}

	return s.categoryRepo.Delete(ctx, id)
}
