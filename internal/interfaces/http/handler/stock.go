package handler

import (
	appinventory "github.com/estoque/backend/internal/application/inventory"
	domaininventory "github.com/estoque/backend/internal/domain/inventory"
	"github.com/estoque/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StockHandler handles stock ledger and reconciliation endpoints
type StockHandler struct {
	BaseHandler
	stockService *appinventory.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *appinventory.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// RegisterRoutes registers stock routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stock := rg.Group("/stock")
	{
		stock.POST("/movements", h.RecordMovement)
		stock.GET("/movements", h.ListMovements)
	}
	products := rg.Group("/products")
	{
		products.GET("/:id/movements", h.ListProductMovements)
		products.GET("/:id/reconcile", h.Reconcile)
	}
}

// RecordMovementRequest is the request body for a manual stock movement
type RecordMovementRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Type      string `json:"type" binding:"required,oneof=IN OUT"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
	Reason    string `json:"reason" binding:"required,min=1,max=500"`
}

// RecordMovement handles POST /stock/movements
func (h *StockHandler) RecordMovement(c *gin.Context) {
	var req RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product_id")
		return
	}

	movement, err := h.stockService.RecordMovement(c.Request.Context(), appinventory.RecordMovementInput{
		ProductID: productID,
		Type:      domaininventory.MovementType(req.Type),
		Quantity:  req.Quantity,
		Reason:    req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, movement)
}

// ListMovements handles GET /stock/movements
func (h *StockHandler) ListMovements(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := req.ToFilter()
	if movType := c.Query("type"); movType != "" {
		filter.Filters["type"] = movType
	}

	page, err := h.stockService.ListMovements(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// ListProductMovements handles GET /products/:id/movements
func (h *StockHandler) ListProductMovements(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.stockService.ListProductMovements(c.Request.Context(), id, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// Reconcile handles GET /products/:id/reconcile
func (h *StockHandler) Reconcile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	result, err := h.stockService.ReconcileProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
