package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"spendwise/internal/handlers"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/models"
	"spendwise/internal/seed"
	"spendwise/internal/services"
	"spendwise/internal/token"
	"spendwise/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Issuer *token.Issuer
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
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Category{},
		&models.Expense{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite, with the same routes the api binary registers.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	if err := seed.Run(db); err != nil {
		t.Fatalf("failed to seed categories: %v", err)
	}

	issuer, err := token.NewIssuer("integration-test-secret", "HS256", 30*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}

	// Services
	userService := services.NewUserService(db)
	authService := services.NewAuthService(userService, issuer)
	categoryService := services.NewCategoryService(db)
	expenseService := services.NewExpenseService(db, categoryService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	auth := router.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(issuer))

	protected.GET("/auth/me", authHandler.Me)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.Create)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.Create)
	expenses.GET("", expenseHandler.List)
	expenses.GET("/:id", expenseHandler.Get)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	return &testApp{DB: db, Issuer: issuer, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, accessToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
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

// parseJSONArray parses the response body into a slice of maps.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns its ID.
func (app *testApp) registerUser(t *testing.T, email, username, password string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"username":%q,"password":%q}`, email, username, password)
	rec := app.request("POST", "/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["id"].(float64)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// signup registers a fresh user and logs in, returning the access token.
func (app *testApp) signup(t *testing.T, email, username string) string {
	t.Helper()
	app.registerUser(t, email, username, "password123")
	access, _ := app.loginUser(t, email, "password123")
	return access
}

// createExpense creates an expense for the given token and returns its ID.
func (app *testApp) createExpense(t *testing.T, accessToken string, amount float64, categoryID int, description, date string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"amount":%v,"category_id":%d,"description":%q,"date":%q}`, amount, categoryID, description, date)
	rec := app.request("POST", "/expenses", body, accessToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["id"].(float64)
}

// errorCode extracts the error code from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no error object: %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}
