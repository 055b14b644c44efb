package handler

import (
	catalogapp "github.com/estoque/backend/internal/application/catalog"
	"github.com/estoque/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/low-stock", h.ListLowStock)
		products.GET("/:id", h.Get)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

// CreateProductRequest is the request body for creating a product.
// Monetary values are integer centavos.
type CreateProductRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	SKU        string `json:"sku" binding:"required,min=1,max=50"`
	Price      int64  `json:"price" binding:"required,gt=0"`
	MinStock   int64  `json:"min_stock" binding:"omitempty,min=0"`
	CategoryID string `json:"category_id" binding:"required,uuid"`
}

// UpdateProductRequest is the request body for updating a product
type UpdateProductRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	Price      int64  `json:"price" binding:"required,gt=0"`
	MinStock   int64  `json:"min_stock" binding:"omitempty,min=0"`
	CategoryID string `json:"category_id" binding:"required,uuid"`
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	categoryID, _ := uuid.Parse(req.CategoryID)

	product, err := h.productService.Create(c.Request.Context(), catalogapp.CreateProductInput{
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      req.Price,
		MinStock:   req.MinStock,
		CategoryID: categoryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	filter := req.ToFilter()
	if categoryID := c.Query("category_id"); categoryID != "" {
		filter.Filters["category_id"] = categoryID
	}

	page, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// ListLowStock handles GET /products/low-stock
func (h *ProductHandler) ListLowStock(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.productService.ListLowStock(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	categoryID, _ := uuid.Parse(req.CategoryID)

	product, err := h.productService.Update(c.Request.Context(), id, catalogapp.UpdateProductInput{
		Name:       req.Name,
		Price:      req.Price,
		MinStock:   req.MinStock,
		CategoryID: categoryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
