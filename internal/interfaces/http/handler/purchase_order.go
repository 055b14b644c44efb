package handler

import (
	tradeapp "github.com/estoque/backend/internal/application/trade"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/estoque/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PurchaseOrderHandler handles purchase order and goods receipt endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orderService   *tradeapp.PurchaseOrderService
	receiptService *tradeapp.GoodsReceiptService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orderService *tradeapp.PurchaseOrderService, receiptService *tradeapp.GoodsReceiptService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orderService: orderService, receiptService: receiptService}
}

// RegisterRoutes registers purchase order routes
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.DELETE("/:id", h.Delete)
		orders.POST("/:id/transition", h.Transition)
		orders.POST("/:id/receive", h.Receive)
		orders.GET("/:id/receipts", h.ListReceipts)
	}
	receipts := rg.Group("/goods-receipts")
	{
		receipts.GET("/:id", h.GetReceipt)
	}
}

// PurchaseItemRequest is one requested purchase line
type PurchaseItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
	UnitPrice int64  `json:"unit_price" binding:"required,gt=0"`
}

// CreatePurchaseOrderRequest is the request body for creating a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID string                `json:"supplier_id" binding:"required,uuid"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes      string                `json:"notes" binding:"max=1000"`
}

// TransitionRequest is the request body for a status transition
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReceiveItemRequest is one counted receipt line
type ReceiveItemRequest struct {
	ProductID   string `json:"product_id" binding:"required,uuid"`
	ReceivedQty int64  `json:"received_qty" binding:"gte=0"`
}

// ReceiveGoodsRequest is the request body for a goods receipt
type ReceiveGoodsRequest struct {
	Items []ReceiveItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes string               `json:"notes" binding:"max=1000"`
}

// Create handles POST /purchase-orders
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		h.BadRequest(c, "Invalid supplier_id")
		return
	}

	items := make([]tradeapp.PurchaseItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			h.BadRequest(c, "Invalid product_id")
			return
		}
		items = append(items, tradeapp.PurchaseItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order, err := h.orderService.Create(c.Request.Context(), tradeapp.CreatePurchaseOrderInput{
		SupplierID: supplierID,
		Items:      items,
		Notes:      req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// Get handles GET /purchase-orders/:id
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// List handles GET /purchase-orders
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := req.ToFilter()
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		filter.Filters["supplier_id"] = supplierID
	}

	page, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// Transition handles POST /purchase-orders/:id/transition
func (h *PurchaseOrderHandler) Transition(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	target := trade.PurchaseOrderStatus(req.Status)
	if !target.IsValid() {
		h.BadRequest(c, "Unknown purchase order status")
		return
	}

	order, err := h.orderService.Transition(c.Request.Context(), id, target)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Receive handles POST /purchase-orders/:id/receive
func (h *PurchaseOrderHandler) Receive(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	var req ReceiveGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	items := make([]tradeapp.ReceiveItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			h.BadRequest(c, "Invalid product_id")
			return
		}
		items = append(items, tradeapp.ReceiveItemInput{
			ProductID:   productID,
			ReceivedQty: item.ReceivedQty,
		})
	}

	receipt, err := h.receiptService.Receive(c.Request.Context(), id, tradeapp.ReceiveGoodsInput{
		Items: items,
		Notes: req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, receipt)
}

// ListReceipts handles GET /purchase-orders/:id/receipts
func (h *PurchaseOrderHandler) ListReceipts(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	receipts, err := h.receiptService.ListByOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receipts)
}

// GetReceipt handles GET /goods-receipts/:id
func (h *PurchaseOrderHandler) GetReceipt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	receipt, err := h.receiptService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receipt)
}

// Delete handles DELETE /purchase-orders/:id
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
