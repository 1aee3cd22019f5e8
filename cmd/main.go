package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"modamart/internal/caching"
	"modamart/internal/config"
	"modamart/internal/handlers"
	"modamart/internal/jobs"
	"modamart/internal/jobs/background"
	"modamart/internal/middleware"
	"modamart/internal/models"
	"modamart/internal/repositories"
	"modamart/internal/services"
	"modamart/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	cacheService := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	imageService, err := services.NewImageService(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Failed to create image storage client: %v", err)
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := imageService.EnsureBucketExists(ctx); err != nil {
			log.Printf("Failed to ensure image bucket: %v", err)
		}
		cancel()
	}

	// Repositories
	designerRepo := repositories.NewDesignerRepository(pool)
	collectionRepo := repositories.NewCollectionRepository(pool)
	itemRepo := repositories.NewClothingItemRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	saleRepo := repositories.NewSaleRepository(pool)
	alertRepo := repositories.NewAlertRepository(pool)
	storeRepo := repositories.NewStoreRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	fabricRepo := repositories.NewFabricRepository(pool)
	poRepo := repositories.NewPurchaseOrderRepository(pool)
	userRepo := repositories.NewUserRepository(pool)
	auditRepo := repositories.NewAuditLogRepository(pool)
	reportingRepo := repositories.NewReportingRepository(pool)

	// Services
	inventoryService := services.NewInventoryService(pool, inventoryRepo, alertRepo, cacheService)
	saleService := services.NewSaleService(pool, saleRepo, itemRepo, storeRepo, inventoryService, cacheService)
	designerService := services.NewDesignerService(pool, designerRepo, collectionRepo, itemRepo)
	collectionService := services.NewCollectionService(collectionRepo, designerRepo, itemRepo)
	itemService := services.NewItemService(pool, itemRepo, collectionRepo, inventoryRepo, imageService, cacheService)
	fabricService := services.NewFabricService(fabricRepo, supplierRepo, itemRepo)
	storeService := services.NewStoreService(storeRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	catalogService := services.NewCatalogService(reportingRepo, cacheService)
	poService := services.NewPurchaseOrderService(pool, poRepo, alertRepo, fabricRepo, supplierRepo, inventoryService)
	userService := services.NewUserService(userRepo, cfg.JWTSecret)
	auditService := services.NewAuditLogService(auditRepo)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(userService)
	userHandlers := handlers.NewUserHandlers(userService)
	designerHandlers := handlers.NewDesignerHandlers(designerService)
	collectionHandlers := handlers.NewCollectionHandlers(collectionService)
	itemHandlers := handlers.NewItemHandlers(itemService)
	fabricHandlers := handlers.NewFabricHandlers(fabricService)
	supplierHandlers := handlers.NewSupplierHandlers(supplierService)
	storeHandlers := handlers.NewStoreHandlers(storeService)
	inventoryHandlers := handlers.NewInventoryHandlers(inventoryService)
	saleHandlers := handlers.NewSaleHandlers(saleService)
	poHandlers := handlers.NewPurchaseOrderHandlers(poService)
	alertHandlers := handlers.NewAlertHandlers(alertRepo)
	reportHandlers := handlers.NewReportHandlers(catalogService)
	auditHandlers := handlers.NewAuditLogHandlers(auditService)
	healthHandlers := handlers.NewHealthHandlers(pool)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())

	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	v1 := e.Group("/v1")
	v1.POST("/auth/signup", authHandlers.Signup)
	v1.POST("/auth/login", authHandlers.Login)

	auditMiddleware := middleware.NewAuditMiddleware(auditService)

	api := v1.Group("", middleware.JWTMiddleware(cfg.JWTSecret), auditMiddleware.AuditRequest())

	manager := middleware.RequireRole(models.RoleManager)
	cashier := middleware.RequireRole(models.RoleManager, models.RoleCashier)
	procurement := middleware.RequireRole(models.RoleManager, models.RoleProcurement)
	analyst := middleware.RequireRole(models.RoleManager, models.RoleAnalyst)
	admin := middleware.RequireRole(models.RoleAdmin)

	api.POST("/designers", designerHandlers.CreateDesigner, manager)
	api.GET("/designers", designerHandlers.ListDesigners)
	api.GET("/designers/:id", designerHandlers.GetDesigner)
	api.PUT("/designers/:id", designerHandlers.UpdateDesigner, manager)
	api.DELETE("/designers/:id", designerHandlers.DeleteDesigner, manager)
	api.GET("/designers/:id/portfolio", designerHandlers.GetPortfolio)

	api.POST("/collections", collectionHandlers.CreateCollection, manager)
	api.GET("/collections", collectionHandlers.ListCollections)
	api.GET("/collections/:id", collectionHandlers.GetCollection)
	api.PUT("/collections/:id", collectionHandlers.UpdateCollection, manager)
	api.DELETE("/collections/:id", collectionHandlers.DeleteCollection, manager)

	api.POST("/items", itemHandlers.CreateItem, manager)
	api.GET("/items", itemHandlers.ListItems)
	api.GET("/items/:id", itemHandlers.GetItem)
	api.PUT("/items/:id", itemHandlers.UpdateItem, manager)
	api.DELETE("/items/:id", itemHandlers.DeleteItem, manager)
	api.POST("/items/:id/image", itemHandlers.UploadItemImage, manager)
	api.GET("/items/:id/image", itemHandlers.GetItemImageURL)
	api.GET("/items/:id/cost", reportHandlers.GetItemCost, analyst)
	api.GET("/items/:id/fabrics", fabricHandlers.ListUsageByItem)

	api.POST("/fabrics", fabricHandlers.CreateFabric, procurement)
	api.GET("/fabrics", fabricHandlers.ListFabrics)
	api.GET("/fabrics/:id", fabricHandlers.GetFabric)
	api.PUT("/fabrics/:id", fabricHandlers.UpdateFabric, procurement)
	api.DELETE("/fabrics/:id", fabricHandlers.DeleteFabric, procurement)
	api.POST("/fabrics/usage", fabricHandlers.RecordUsage, procurement)

	api.POST("/suppliers", supplierHandlers.CreateSupplier, procurement)
	api.GET("/suppliers", supplierHandlers.ListSuppliers)
	api.GET("/suppliers/:id", supplierHandlers.GetSupplier)
	api.PUT("/suppliers/:id", supplierHandlers.UpdateSupplier, procurement)
	api.DELETE("/suppliers/:id", supplierHandlers.DeleteSupplier, procurement)

	api.POST("/stores", storeHandlers.CreateStore, manager)
	api.GET("/stores", storeHandlers.ListStores)
	api.GET("/stores/:id", storeHandlers.GetStore)
	api.PUT("/stores/:id", storeHandlers.UpdateStore, manager)
	api.DELETE("/stores/:id", storeHandlers.DeleteStore, manager)

	api.POST("/inventory", inventoryHandlers.CreateInventory, manager)
	api.GET("/inventory", inventoryHandlers.ListInventory)
	api.GET("/inventory/low-stock", inventoryHandlers.ListLowStock)
	api.GET("/inventory/:item_id", inventoryHandlers.GetInventory)
	api.POST("/inventory/:item_id/adjust", inventoryHandlers.AdjustInventory, manager)

	api.POST("/sales", saleHandlers.ProcessSale, cashier)
	api.GET("/sales", saleHandlers.ListSales)
	api.GET("/sales/:id", saleHandlers.GetSale)

	api.POST("/purchase-orders", poHandlers.CreatePurchaseOrder, procurement)
	api.POST("/purchase-orders/from-alert", poHandlers.CreateFromAlert, procurement)
	api.GET("/purchase-orders", poHandlers.ListPurchaseOrders)
	api.GET("/purchase-orders/:id", poHandlers.GetPurchaseOrder)
	api.POST("/purchase-orders/:id/receive", poHandlers.ReceivePurchaseOrder, procurement)
	api.POST("/purchase-orders/:id/cancel", poHandlers.CancelPurchaseOrder, procurement)

	api.GET("/alerts", alertHandlers.ListAlerts)
	api.GET("/alerts/unactioned", alertHandlers.ListUnactionedAlerts, procurement)

	api.GET("/reports/catalog", reportHandlers.GetCatalog)
	api.GET("/reports/sales", reportHandlers.GetSaleDetails, analyst)
	api.GET("/reports/designer-performance", reportHandlers.GetDesignerPerformance, analyst)
	api.GET("/reports/top-sellers", reportHandlers.GetTopSellingItems, analyst)
	api.GET("/reports/monthly-sales", reportHandlers.GetMonthlySalesReport, analyst)

	api.POST("/users", userHandlers.CreateUser, admin)
	api.GET("/users", userHandlers.ListUsers, admin)

	api.GET("/audit-logs", auditHandlers.ListAuditLogs, admin)

	// Background jobs
	reporter := jobs.NewLowStockReporter(inventoryRepo, itemRepo)
	scheduler, err := background.NewJobScheduler(poService, catalogService, reporter)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("Failed to stop scheduler: %v", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := e.Start(addr); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}
}
