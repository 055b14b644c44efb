package report

// MoneyDTO carries a monetary amount both as raw centavos and as a
// fixed-point decimal string in reais.
type MoneyDTO struct {
	Centavos int64  `json:"centavos"`
	Amount   string `json:"amount"`
}

// OrderCountsDTO summarizes order volumes per status
type OrderCountsDTO struct {
	Total    int64            `json:"total"`
	Open     int64            `json:"open"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// DashboardDTO is the aggregated dashboard read model
type DashboardDTO struct {
	LowStockProducts  int64          `json:"lowStockProducts"`
	StockValue        MoneyDTO       `json:"stockValue"`
	PurchaseOrders    OrderCountsDTO `json:"purchaseOrders"`
	SalesOrders       OrderCountsDTO `json:"salesOrders"`
	PendingPayable    MoneyDTO       `json:"pendingPayable"`
	PendingReceivable MoneyDTO       `json:"pendingReceivable"`
}
