package handler

import (
	financeapp "github.com/estoque/backend/internal/application/finance"
	"github.com/estoque/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// FinanceHandler handles accounts payable and receivable endpoints
type FinanceHandler struct {
	BaseHandler
	financeService *financeapp.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(financeService *financeapp.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// RegisterRoutes registers finance routes
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payables := rg.Group("/payables")
	{
		payables.GET("", h.ListPayables)
		payables.GET("/:id", h.GetPayable)
		payables.POST("/:id/settle", h.SettlePayable)
	}
	receivables := rg.Group("/receivables")
	{
		receivables.GET("", h.ListReceivables)
		receivables.GET("/:id", h.GetReceivable)
		receivables.POST("/:id/settle", h.SettleReceivable)
	}
}

// ListPayables handles GET /payables
func (h *FinanceHandler) ListPayables(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := req.ToFilter()
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	page, err := h.financeService.ListPayables(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// GetPayable handles GET /payables/:id
func (h *FinanceHandler) GetPayable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	payable, err := h.financeService.GetPayable(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payable)
}

// SettlePayable handles POST /payables/:id/settle
func (h *FinanceHandler) SettlePayable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	payable, err := h.financeService.SettlePayable(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payable)
}

// ListReceivables handles GET /receivables
func (h *FinanceHandler) ListReceivables(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := req.ToFilter()
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	page, err := h.financeService.ListReceivables(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// GetReceivable handles GET /receivables/:id
func (h *FinanceHandler) GetReceivable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	receivable, err := h.financeService.GetReceivable(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receivable)
}

// SettleReceivable handles POST /receivables/:id/settle
func (h *FinanceHandler) SettleReceivable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.InvalidID(c)
		return
	}

	receivable, err := h.financeService.SettleReceivable(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receivable)
}
