package inventory

import (
	"context"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/finance"
	"github.com/estoque/backend/internal/domain/inventory"
	"github.com/estoque/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories touched
// by stock-mutating workflows. When a function is executed within a scope,
// every repository operation joins the same database transaction and commits
// or rolls back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories scoped to the current
// transaction. The goods receipt and fulfillment workflows mutate products,
// orders, the movement ledger and the finance accounts in one atomic unit.
type TransactionalRepositories interface {
	ProductRepo() catalog.ProductRepository
	MovementRepo() inventory.StockMovementRepository
	PurchaseOrderRepo() trade.PurchaseOrderRepository
	SalesOrderRepo() trade.SalesOrderRepository
	GoodsReceiptRepo() trade.GoodsReceiptRepository
	PayableRepo() finance.AccountPayableRepository
	ReceivableRepo() finance.AccountReceivableRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for service tests backed by in-memory repositories.
type NoOpTransactionScope struct {
	productRepo    catalog.ProductRepository
	movementRepo   inventory.StockMovementRepository
	purchaseRepo   trade.PurchaseOrderRepository
	salesRepo      trade.SalesOrderRepository
	receiptRepo    trade.GoodsReceiptRepository
	payableRepo    finance.AccountPayableRepository
	receivableRepo finance.AccountReceivableRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	movementRepo inventory.StockMovementRepository,
	purchaseRepo trade.PurchaseOrderRepository,
	salesRepo trade.SalesOrderRepository,
	receiptRepo trade.GoodsReceiptRepository,
	payableRepo finance.AccountPayableRepository,
	receivableRepo finance.AccountReceivableRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:    productRepo,
		movementRepo:   movementRepo,
		purchaseRepo:   purchaseRepo,
		salesRepo:      salesRepo,
		receiptRepo:    receiptRepo,
		payableRepo:    payableRepo,
		receivableRepo: receivableRepo,
	}
}

// Execute runs the function without transactional guarantees.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository            { return s.productRepo }
func (s *NoOpTransactionScope) MovementRepo() inventory.StockMovementRepository  { return s.movementRepo }
func (s *NoOpTransactionScope) PurchaseOrderRepo() trade.PurchaseOrderRepository { return s.purchaseRepo }
func (s *NoOpTransactionScope) SalesOrderRepo() trade.SalesOrderRepository       { return s.salesRepo }
func (s *NoOpTransactionScope) GoodsReceiptRepo() trade.GoodsReceiptRepository   { return s.receiptRepo }
func (s *NoOpTransactionScope) PayableRepo() finance.AccountPayableRepository    { return s.payableRepo }
func (s *NoOpTransactionScope) ReceivableRepo() finance.AccountReceivableRepository {
	return s.receivableRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
