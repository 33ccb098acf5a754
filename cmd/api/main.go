package main

import (
	"fmt"
	"hestia/internal/config"
	"hestia/internal/database"
	"hestia/internal/handlers"
	"hestia/internal/logger"
	"hestia/internal/middleware"
	"hestia/internal/services"
	"hestia/internal/validator"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "hestia/internal/docs" // Import swagger docs
)

// @title           Hestia API
// @version         1.0
// @description     Hestia is a household management application for keeping track of properties and everything inside them: rooms, assets, workers, shutoff points, paint codes, expenses, maintenance tasks, and recurring bills.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators used by the binding tags
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	propertyService := services.NewPropertyService(db)
	roomService := services.NewRoomService(db)
	assetService := services.NewAssetService(db)
	workerService := services.NewWorkerService(db)
	shutoffService := services.NewShutoffService(db)
	paintCodeService := services.NewPaintCodeService(db)
	expenseService := services.NewExpenseService(db)
	maintenanceService := services.NewMaintenanceService(db)
	billTemplateService := services.NewBillTemplateService(db)
	billPaymentService := services.NewBillPaymentService(db)
	timelineService := services.NewTimelineService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	propertyHandler := handlers.NewPropertyHandler(propertyService, auditService)
	roomHandler := handlers.NewRoomHandler(roomService, auditService)
	assetHandler := handlers.NewAssetHandler(assetService, auditService)
	workerHandler := handlers.NewWorkerHandler(workerService, auditService)
	shutoffHandler := handlers.NewShutoffHandler(shutoffService, auditService)
	paintCodeHandler := handlers.NewPaintCodeHandler(paintCodeService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService, auditService)
	billHandler := handlers.NewBillHandler(billTemplateService, billPaymentService, auditService)
	timelineHandler := handlers.NewTimelineHandler(timelineService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Property routes, including per-property child collections
	properties := protected.Group("/properties")
	properties.POST("", propertyHandler.CreateProperty)
	properties.GET("", propertyHandler.GetProperties)
	properties.GET("/:id", propertyHandler.GetProperty)
	properties.PUT("/:id", propertyHandler.UpdateProperty)
	properties.DELETE("/:id", propertyHandler.DeleteProperty)
	properties.POST("/:id/rooms", roomHandler.CreateRoom)
	properties.GET("/:id/rooms", roomHandler.GetRooms)
	properties.POST("/:id/assets", assetHandler.CreateAsset)
	properties.GET("/:id/assets", assetHandler.GetAssets)
	properties.POST("/:id/workers", workerHandler.CreateWorker)
	properties.GET("/:id/workers", workerHandler.GetWorkers)
	properties.POST("/:id/shutoffs", shutoffHandler.CreateShutoff)
	properties.GET("/:id/shutoffs", shutoffHandler.GetShutoffs)
	properties.POST("/:id/paint-codes", paintCodeHandler.CreatePaintCode)
	properties.GET("/:id/paint-codes", paintCodeHandler.GetPaintCodes)
	properties.POST("/:id/expenses", expenseHandler.CreateExpense)
	properties.GET("/:id/expenses", expenseHandler.GetExpenses)
	properties.GET("/:id/expenses/monthly-totals", expenseHandler.GetMonthlyTotals)
	properties.POST("/:id/tasks", maintenanceHandler.CreateTask)
	properties.GET("/:id/tasks", maintenanceHandler.GetTasks)
	properties.POST("/:id/bill-templates", billHandler.CreateBillTemplate)
	properties.GET("/:id/bill-templates", billHandler.GetBillTemplates)
	properties.GET("/:id/timeline", timelineHandler.GetTimeline)

	// Room routes
	rooms := protected.Group("/rooms")
	rooms.GET("/:id", roomHandler.GetRoom)
	rooms.PUT("/:id", roomHandler.UpdateRoom)
	rooms.DELETE("/:id", roomHandler.DeleteRoom)

	// Asset routes
	assets := protected.Group("/assets")
	assets.GET("/:id", assetHandler.GetAsset)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)

	// Worker routes
	workers := protected.Group("/workers")
	workers.GET("/:id", workerHandler.GetWorker)
	workers.PUT("/:id", workerHandler.UpdateWorker)
	workers.DELETE("/:id", workerHandler.DeleteWorker)

	// Shutoff point routes
	shutoffs := protected.Group("/shutoffs")
	shutoffs.GET("/:id", shutoffHandler.GetShutoff)
	shutoffs.PUT("/:id", shutoffHandler.UpdateShutoff)
	shutoffs.DELETE("/:id", shutoffHandler.DeleteShutoff)

	// Paint code routes
	paintCodes := protected.Group("/paint-codes")
	paintCodes.GET("/:id", paintCodeHandler.GetPaintCode)
	paintCodes.PUT("/:id", paintCodeHandler.UpdatePaintCode)
	paintCodes.DELETE("/:id", paintCodeHandler.DeletePaintCode)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Maintenance task routes
	tasks := protected.Group("/tasks")
	tasks.GET("/:id", maintenanceHandler.GetTask)
	tasks.PUT("/:id", maintenanceHandler.UpdateTask)
	tasks.POST("/:id/complete", maintenanceHandler.CompleteTask)
	tasks.POST("/:id/reopen", maintenanceHandler.ReopenTask)
	tasks.DELETE("/:id", maintenanceHandler.DeleteTask)

	// Bill template routes
	billTemplates := protected.Group("/bill-templates")
	billTemplates.GET("/:id", billHandler.GetBillTemplate)
	billTemplates.PUT("/:id", billHandler.UpdateBillTemplate)
	billTemplates.POST("/:id/toggle", billHandler.ToggleBillTemplate)
	billTemplates.DELETE("/:id", billHandler.DeleteBillTemplate)
	billTemplates.POST("/:id/payments", billHandler.RecordPayment)
	billTemplates.DELETE("/:id/payments/:paymentID", billHandler.DeletePayment)

	log.Infof("Starting Hestia backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
