package report

import (
	"context"

	"github.com/estoque/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

var centavosPerReal = decimal.NewFromInt(100)

// StockReader is the slice of the product repository the dashboard needs
type StockReader interface {
	CountLowStock(ctx context.Context) (int64, error)
	SumStockValue(ctx context.Context) (int64, error)
}

// PurchaseOrderCounter counts purchase orders per status
type PurchaseOrderCounter interface {
	CountByStatus(ctx context.Context, status trade.PurchaseOrderStatus) (int64, error)
}

// SalesOrderCounter counts sales orders per status
type SalesOrderCounter interface {
	CountByStatus(ctx context.Context, status trade.SalesOrderStatus) (int64, error)
}

// PendingSummer sums the outstanding amount of a finance account book
type PendingSummer interface {
	SumPendingAmount(ctx context.Context) (int64, error)
}

// ReportService aggregates cross-context figures for the dashboard.
// Monetary amounts are stored as integer centavos; the report surface
// converts them to decimal reais for presentation.
type ReportService struct {
	stock       StockReader
	purchases   PurchaseOrderCounter
	sales       SalesOrderCounter
	payables    PendingSummer
	receivables PendingSummer
}

// NewReportService creates a new ReportService
func NewReportService(
	stock StockReader,
	purchases PurchaseOrderCounter,
	sales SalesOrderCounter,
	payables PendingSummer,
	receivables PendingSummer,
) *ReportService {
	return &ReportService{
		stock:       stock,
		purchases:   purchases,
		sales:       sales,
		payables:    payables,
		receivables: receivables,
	}
}

// Dashboard assembles the overview figures in one call
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardDTO, error) {
	lowStock, err := s.stock.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}

	stockValue, err := s.stock.SumStockValue(ctx)
	if err != nil {
		return nil, err
	}

	purchases, err := s.purchaseOrderCounts(ctx)
	if err != nil {
		return nil, err
	}

	sales, err := s.salesOrderCounts(ctx)
	if err != nil {
		return nil, err
	}

	pendingPayable, err := s.payables.SumPendingAmount(ctx)
	if err != nil {
		return nil, err
	}

	pendingReceivable, err := s.receivables.SumPendingAmount(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardDTO{
		LowStockProducts:  lowStock,
		StockValue:        moneyFromCentavos(stockValue),
		PurchaseOrders:    purchases,
		SalesOrders:       sales,
		PendingPayable:    moneyFromCentavos(pendingPayable),
		PendingReceivable: moneyFromCentavos(pendingReceivable),
	}, nil
}

func (s *ReportService) purchaseOrderCounts(ctx context.Context) (OrderCountsDTO, error) {
	counts := OrderCountsDTO{ByStatus: make(map[string]int64)}
	for _, status := range []trade.PurchaseOrderStatus{
		trade.PurchaseOrderStatusPendente,
		trade.PurchaseOrderStatusAprovada,
		trade.PurchaseOrderStatusEmTransito,
		trade.PurchaseOrderStatusRecebida,
		trade.PurchaseOrderStatusCancelada,
	} {
		count, err := s.purchases.CountByStatus(ctx, status)
		if err != nil {
			return counts, err
		}
		counts.ByStatus[status.String()] = count
		counts.Total += count
		if !status.IsTerminal() {
			counts.Open += count
		}
	}
	return counts, nil
}

func (s *ReportService) salesOrderCounts(ctx context.Context) (OrderCountsDTO, error) {
	counts := OrderCountsDTO{ByStatus: make(map[string]int64)}
	for _, status := range []trade.SalesOrderStatus{
		trade.SalesOrderStatusPendente,
		trade.SalesOrderStatusAprovada,
		trade.SalesOrderStatusFaturada,
		trade.SalesOrderStatusCancelada,
	} {
		count, err := s.sales.CountByStatus(ctx, status)
		if err != nil {
			return counts, err
		}
		counts.ByStatus[status.String()] = count
		counts.Total += count
		if !status.IsTerminal() {
			counts.Open += count
		}
	}
	return counts, nil
}

// moneyFromCentavos converts an integer centavos amount to its decimal
// reais representation, keeping the raw value alongside.
func moneyFromCentavos(centavos int64) MoneyDTO {
	value := decimal.NewFromInt(centavos).Div(centavosPerReal)
	return MoneyDTO{
		Centavos: centavos,
		Amount:   value.StringFixed(2),
	}
}
