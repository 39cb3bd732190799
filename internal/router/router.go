// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/config"
	"github.com/shoplane/pos-backend/internal/handlers"
	"github.com/shoplane/pos-backend/internal/middleware"
	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/services"
	"github.com/shoplane/pos-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	orderService := services.NewOrderService(db, cfg.Store.StockSaleRetries)
	customerService := services.NewCustomerService(db)
	discountService := services.NewDiscountService(db)
	returnService := services.NewReturnService(db)
	payrollService := services.NewPayrollService(db)
	dashboardService := services.NewDashboardService(db)
	paymentService := services.NewPaymentService(db, cfg)
	reportService := services.NewReportService(db, cfg.Store.ReportExportDir)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService, customerService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	discountHandler := handlers.NewDiscountHandler(discountService)
	returnHandler := handlers.NewReturnHandler(returnService)
	payrollHandler := handlers.NewPayrollHandler(payrollService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/register", middleware.AuthRequired(), middleware.AdminRequired(), authHandler.Register)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product routes
		products := v1.Group("/products")
		products.Use(middleware.AuthRequired())
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/code/:code", productHandler.GetProductByCode)
			products.GET("/category/:category", productHandler.GetProductsByCategory)

			managed := products.Group("")
			managed.Use(middleware.ManagerRequired())
			{
				managed.POST("", productHandler.CreateProduct)
				managed.PUT("/:id", productHandler.UpdateProduct)
				managed.DELETE("/:id", productHandler.DeleteProduct)
				managed.POST("/:id/discount", productHandler.AttachDiscount)
				managed.DELETE("/:id/discount", productHandler.RemoveDiscount)
				managed.POST("/upload-image", middleware.UploadRateLimit(), productHandler.UploadProductImage)
			}
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.CreateSale)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/sales", orderHandler.ListSales)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id/status", middleware.ManagerRequired(), orderHandler.UpdateOrderStatus)
		}

		// Customer routes
		customers := v1.Group("/customers")
		customers.Use(middleware.AuthRequired())
		{
			customers.POST("", customerHandler.CreateCustomer)
			customers.GET("", customerHandler.ListCustomers)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", middleware.ManagerRequired(), customerHandler.DeleteCustomer)
		}

		// Discount routes
		discounts := v1.Group("/discounts")
		discounts.Use(middleware.AuthRequired(), middleware.ManagerRequired())
		{
			discounts.POST("", discountHandler.CreateDiscount)
			discounts.GET("", discountHandler.ListDiscounts)
			discounts.GET("/:id", discountHandler.GetDiscount)
			discounts.DELETE("/:id", discountHandler.DeleteDiscount)
		}

		// Return routes
		returns := v1.Group("/returns")
		returns.Use(middleware.AuthRequired())
		{
			returns.POST("", returnHandler.CreateReturn)
			returns.GET("", returnHandler.ListReturns)
			returns.GET("/:id", returnHandler.GetReturn)
			returns.PUT("/:id/resolve", middleware.ManagerRequired(), returnHandler.ResolveReturn)
		}

		// Payment routes
		payments := v1.Group("/payments")
		payments.Use(middleware.AuthRequired())
		{
			payments.POST("/intent", paymentHandler.CreatePaymentIntent)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		dashboard.Use(middleware.AuthRequired())
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
			dashboard.GET("/chart", dashboardHandler.GetChartSeries)
		}

		// Staff and payroll management
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			employees := admin.Group("/employees")
			{
				employees.POST("", payrollHandler.CreateEmployee)
				employees.GET("", payrollHandler.ListEmployees)
				employees.GET("/:id", payrollHandler.GetEmployee)
				employees.PUT("/:id", payrollHandler.UpdateEmployee)
				employees.DELETE("/:id", payrollHandler.DeleteEmployee)
			}

			payrolls := admin.Group("/payrolls")
			{
				payrolls.POST("/generate", payrollHandler.GeneratePayroll)
				payrolls.GET("", payrollHandler.ListPayrolls)
				payrolls.PUT("/:id/pay", payrollHandler.MarkPaid)
			}

			reports := admin.Group("/reports")
			{
				reports.GET("/sales.parquet", reportHandler.ExportSales)
			}
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", getCategoriesHandler)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}

func getCategoriesHandler(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": models.ProductCategories,
	})
}
