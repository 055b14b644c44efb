package persistence

import (
	"fmt"
	"testing"

	"github.com/estoque/backend/internal/domain/catalog"
	"github.com/estoque/backend/internal/domain/finance"
	"github.com/estoque/backend/internal/domain/inventory"
	"github.com/estoque/backend/internal/domain/partner"
	"github.com/estoque/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database with the full schema.
// cache=shared keeps the database alive across the pooled connections opened
// by GORM; the per-test name keeps tests isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&catalog.Category{},
		&catalog.Product{},
		&partner.Supplier{},
		&partner.Customer{},
		&inventory.StockMovement{},
		&trade.PurchaseOrder{},
		&trade.PurchaseOrderItem{},
		&trade.SalesOrder{},
		&trade.SalesOrderItem{},
		&trade.GoodsReceipt{},
		&trade.GoodsReceiptItem{},
		&finance.AccountPayable{},
		&finance.AccountReceivable{},
	))

	return db
}

// mustProduct creates and persists a product with the given stock level
func mustProduct(t *testing.T, db *gorm.DB, name, sku string, quantity int64) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(name, sku, 1990, 5, uuid.New())
	require.NoError(t, err)
	product.Quantity = quantity

	require.NoError(t, db.Create(product).Error)
	return product
}
