package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/estoque/backend/internal/application/catalog"
	financeapp "github.com/estoque/backend/internal/application/finance"
	inventoryapp "github.com/estoque/backend/internal/application/inventory"
	partnerapp "github.com/estoque/backend/internal/application/partner"
	reportapp "github.com/estoque/backend/internal/application/report"
	tradeapp "github.com/estoque/backend/internal/application/trade"
	"github.com/estoque/backend/internal/infrastructure/config"
	"github.com/estoque/backend/internal/infrastructure/logger"
	"github.com/estoque/backend/internal/infrastructure/persistence"
	"github.com/estoque/backend/internal/interfaces/http/handler"
	"github.com/estoque/backend/internal/interfaces/http/middleware"
	"github.com/estoque/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting estoque backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	movementRepo := persistence.NewGormStockMovementRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	receiptRepo := persistence.NewGormGoodsReceiptRepository(db.DB)
	payableRepo := persistence.NewGormAccountPayableRepository(db.DB)
	receivableRepo := persistence.NewGormAccountReceivableRepository(db.DB)

	scope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo, purchaseOrderRepo)
	customerService := partnerapp.NewCustomerService(customerRepo, salesOrderRepo)
	stockService := inventoryapp.NewStockService(scope, productRepo, movementRepo)
	purchaseOrderService := tradeapp.NewPurchaseOrderService(scope, purchaseOrderRepo, supplierRepo, productRepo)
	salesOrderService := tradeapp.NewSalesOrderService(scope, salesOrderRepo, customerRepo, productRepo)
	receiptService := tradeapp.NewGoodsReceiptService(scope, purchaseOrderRepo, receiptRepo)
	financeService := financeapp.NewFinanceService(payableRepo, receivableRepo)
	reportService := reportapp.NewReportService(productRepo, purchaseOrderRepo, salesOrderRepo, payableRepo, receivableRepo)

	// HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	customerHandler := handler.NewCustomerHandler(customerService)
	stockHandler := handler.NewStockHandler(stockService)
	purchaseOrderHandler := handler.NewPurchaseOrderHandler(purchaseOrderService, receiptService)
	salesOrderHandler := handler.NewSalesOrderHandler(salesOrderService)
	financeHandler := handler.NewFinanceHandler(financeService)
	reportHandler := handler.NewReportHandler(reportService)
	systemHandler := handler.NewSystemHandler(db, version)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(productHandler).
		Register(categoryHandler).
		Register(supplierHandler).
		Register(customerHandler).
		Register(stockHandler).
		Register(purchaseOrderHandler).
		Register(salesOrderHandler).
		Register(financeHandler).
		Register(reportHandler).
		Register(systemHandler)
	r.Setup()

	// Plain health endpoint outside the versioned API for load balancers
	engine.GET("/health", systemHandler.Health)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
