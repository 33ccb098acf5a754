package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hestia/internal/handlers"
	"hestia/internal/logger"
	"hestia/internal/middleware"
	"hestia/internal/models"
	"hestia/internal/services"
	"hestia/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Property{},
		&models.Room{},
		&models.Asset{},
		&models.Worker{},
		&models.ShutoffPoint{},
		&models.PaintCode{},
		&models.Expense{},
		&models.MaintenanceTask{},
		&models.BillTemplate{},
		&models.BillPayment{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
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

	// Handlers
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

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

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

	rooms := protected.Group("/rooms")
	rooms.GET("/:id", roomHandler.GetRoom)
	rooms.PUT("/:id", roomHandler.UpdateRoom)
	rooms.DELETE("/:id", roomHandler.DeleteRoom)

	assets := protected.Group("/assets")
	assets.GET("/:id", assetHandler.GetAsset)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)

	workers := protected.Group("/workers")
	workers.GET("/:id", workerHandler.GetWorker)
	workers.PUT("/:id", workerHandler.UpdateWorker)
	workers.DELETE("/:id", workerHandler.DeleteWorker)

	shutoffs := protected.Group("/shutoffs")
	shutoffs.GET("/:id", shutoffHandler.GetShutoff)
	shutoffs.PUT("/:id", shutoffHandler.UpdateShutoff)
	shutoffs.DELETE("/:id", shutoffHandler.DeleteShutoff)

	paintCodes := protected.Group("/paint-codes")
	paintCodes.GET("/:id", paintCodeHandler.GetPaintCode)
	paintCodes.PUT("/:id", paintCodeHandler.UpdatePaintCode)
	paintCodes.DELETE("/:id", paintCodeHandler.DeletePaintCode)

	expenses := protected.Group("/expenses")
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	tasks := protected.Group("/tasks")
	tasks.GET("/:id", maintenanceHandler.GetTask)
	tasks.PUT("/:id", maintenanceHandler.UpdateTask)
	tasks.POST("/:id/complete", maintenanceHandler.CompleteTask)
	tasks.POST("/:id/reopen", maintenanceHandler.ReopenTask)
	tasks.DELETE("/:id", maintenanceHandler.DeleteTask)

	billTemplates := protected.Group("/bill-templates")
	billTemplates.GET("/:id", billHandler.GetBillTemplate)
	billTemplates.PUT("/:id", billHandler.UpdateBillTemplate)
	billTemplates.POST("/:id/toggle", billHandler.ToggleBillTemplate)
	billTemplates.DELETE("/:id", billHandler.DeleteBillTemplate)
	billTemplates.POST("/:id/payments", billHandler.RecordPayment)
	billTemplates.DELETE("/:id/payments/:paymentID", billHandler.DeletePayment)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// createProperty creates a property and returns its ID.
func (app *testApp) createProperty(t *testing.T, token, name string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/properties",
		fmt.Sprintf(`{"name":%q,"type":"house"}`, name), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create property failed: %d %s", rec.Code, rec.Body.String())
	}
	property := parseJSON(t, rec)["property"].(map[string]interface{})
	return property["id"].(string)
}
