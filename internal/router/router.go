package router

import (
	"time"

	"minegocio/internal/config"
	"minegocio/internal/handler"
	"minegocio/internal/infra"
	"minegocio/internal/middleware"
	"minegocio/internal/repository"
	"minegocio/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	creditRepo := repository.NewCreditRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	cashflowRepo := repository.NewCashflowRepository(db)
	closureRepo := repository.NewClosureRepository(db)
	invLogRepo := repository.NewInventoryLogRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	cartSvc := service.NewCartService()
	catalogSvc := service.NewCatalogService(productRepo, categoryRepo, invLogRepo, rdb)
	saleSvc := service.NewSaleService(saleRepo, productRepo, creditRepo, customerRepo, cartSvc, cfg.CompanyName)
	ledgerSvc := service.NewLedgerService(creditRepo, debtRepo, customerRepo)
	cashflowSvc := service.NewCashflowService(cashflowRepo)
	closureSvc := service.NewClosureService(saleRepo, cashflowRepo, creditRepo, debtRepo, closureRepo)
	partnerSvc := service.NewPartnerService(customerRepo, supplierRepo)
	reportSvc := service.NewReportService(saleRepo, creditRepo, debtRepo)

	renderer := infra.NewReceiptRenderer()

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(catalogSvc)
	categoriesH := handler.NewCategoriesHandler(catalogSvc)
	priceH := handler.NewPriceHandler(catalogSvc, rdb)
	cartH := handler.NewCartHandler(cartSvc, catalogSvc)
	salesH := handler.NewSalesHandler(saleSvc, renderer)
	creditsH := handler.NewCreditsHandler(ledgerSvc)
	debtsH := handler.NewDebtsHandler(ledgerSvc)
	customersH := handler.NewCustomersHandler(partnerSvc)
	suppliersH := handler.NewSuppliersHandler(partnerSvc)
	cashflowH := handler.NewCashflowHandler(cashflowSvc)
	closureH := handler.NewClosureHandler(closureSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Price check, read-only and uncached-tolerant
	r.GET("/v1/price/:code", priceH.GetByCode)

	v1 := r.Group("/v1")
	{
		v1.GET("/products", productsH.List)
		v1.POST("/products", productsH.Create)
		v1.GET("/products/:id", productsH.Get)
		v1.PUT("/products/:id", productsH.Update)
		v1.DELETE("/products/:id", productsH.Delete)
		v1.POST("/products/:id/stock", productsH.AdjustStock)
		v1.GET("/products/:id/stock-history", productsH.StockHistory)
		v1.GET("/inventory/log", productsH.InventoryLog)

		v1.GET("/categories", categoriesH.List)
		v1.POST("/categories", categoriesH.Create)
		v1.DELETE("/categories/:id", categoriesH.Delete)

		v1.GET("/cart/:register", cartH.Get)
		v1.POST("/cart/:register/items", cartH.Add)
		v1.PUT("/cart/:register/items/:code", cartH.SetQty)
		v1.DELETE("/cart/:register/items/:code", cartH.Remove)
		v1.DELETE("/cart/:register", cartH.Clear)

		v1.POST("/checkout", salesH.Checkout)
		v1.GET("/sales", salesH.List)
		v1.GET("/sales/:id", salesH.Get)
		v1.GET("/sales/:id/receipt", salesH.Receipt)

		v1.GET("/customers", customersH.List)
		v1.POST("/customers", customersH.Create)
		v1.PUT("/customers/:id", customersH.Update)
		v1.DELETE("/customers/:id", customersH.Delete)

		v1.GET("/suppliers", suppliersH.List)
		v1.POST("/suppliers", suppliersH.Create)
		v1.PUT("/suppliers/:id", suppliersH.Update)
		v1.DELETE("/suppliers/:id", suppliersH.Delete)

		v1.GET("/credits", creditsH.List)
		v1.POST("/credits", creditsH.Create)
		v1.POST("/credits/:id/payments", creditsH.AddPayment)
		v1.GET("/credits/:id/payments", creditsH.Payments)

		v1.GET("/debts", debtsH.List)
		v1.POST("/debts", debtsH.Create)
		v1.POST("/debts/:id/payments", debtsH.AddPayment)
		v1.GET("/debts/:id/payments", debtsH.Payments)

		v1.GET("/outflows", cashflowH.ListOutflows)
		v1.POST("/outflows", cashflowH.CreateOutflow)
		v1.GET("/adjustments", cashflowH.ListAdjustments)
		v1.POST("/adjustments", cashflowH.CreateAdjustment)
		v1.GET("/paid-orders", cashflowH.ListPaidOrders)
		v1.POST("/paid-orders", cashflowH.CreatePaidOrder)
		v1.DELETE("/paid-orders/:id", cashflowH.DeletePaidOrder)

		v1.GET("/reports/sales", reportsH.Sales)

		v1.GET("/closure/summary", closureH.Summary)
		v1.GET("/closure/export", closureH.ExportCSV)
		v1.POST("/closure", closureH.Register)
		v1.GET("/closure/latest", closureH.Latest)
		v1.GET("/closures", closureH.List)
		v1.GET("/closures/:id", closureH.Get)
	}

	// Swagger UI, development only
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
