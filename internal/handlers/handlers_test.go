package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
	"spendwise/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Register()
	os.Exit(m.Run())
}

// injectUserID stands in for the auth middleware in handler tests.
func injectUserID(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Errorf("expected status %d, got %d (body: %s)", status, w.Code, w.Body.String())
	}
	var resp ErrorResponse
	parseJSON(t, w, &resp)
	if resp.Error.Code != code {
		t.Errorf("expected error code %q, got %q", code, resp.Error.Code)
	}
}

// mockAuthService implements services.AuthServicer with function fields.
type mockAuthService struct {
	RegisterFn    func(email, username, password string) (*models.User, error)
	LoginFn       func(email, password string) (*services.TokenPair, error)
	RefreshFn     func(refreshToken string) (*services.TokenPair, error)
	CurrentUserFn func(userID uint) (*models.User, error)
}

func (m *mockAuthService) Register(email, username, password string) (*models.User, error) {
	return m.RegisterFn(email, username, password)
}

func (m *mockAuthService) Login(email, password string) (*services.TokenPair, error) {
	return m.LoginFn(email, password)
}

func (m *mockAuthService) Refresh(refreshToken string) (*services.TokenPair, error) {
	return m.RefreshFn(refreshToken)
}

func (m *mockAuthService) CurrentUser(userID uint) (*models.User, error) {
	return m.CurrentUserFn(userID)
}

// mockCategoryService implements services.CategoryServicer with function fields.
type mockCategoryService struct {
	CreateCategoryFn  func(name, description, icon, color string) (*models.Category, error)
	ListCategoriesFn  func(includeInactive bool) ([]models.Category, error)
	GetCategoryByIDFn func(id uint) (*models.Category, error)
}

func (m *mockCategoryService) CreateCategory(name, description, icon, color string) (*models.Category, error) {
	return m.CreateCategoryFn(name, description, icon, color)
}

func (m *mockCategoryService) ListCategories(includeInactive bool) ([]models.Category, error) {
	return m.ListCategoriesFn(includeInactive)
}

func (m *mockCategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	return m.GetCategoryByIDFn(id)
}

// mockExpenseService implements services.ExpenseServicer with function fields.
type mockExpenseService struct {
	CreateExpenseFn  func(userID uint, amount float64, categoryID uint, description string, date time.Time, notes string) (*models.Expense, error)
	ListExpensesFn   func(userID uint, params pagination.ListParams, filter services.ExpenseFilter) ([]models.Expense, error)
	GetExpenseByIDFn func(userID, expenseID uint) (*models.Expense, error)
	UpdateExpenseFn  func(userID, expenseID uint, patch services.ExpensePatch) (*models.Expense, error)
	DeleteExpenseFn  func(userID, expenseID uint) error
}

func (m *mockExpenseService) CreateExpense(userID uint, amount float64, categoryID uint, description string, date time.Time, notes string) (*models.Expense, error) {
	return m.CreateExpenseFn(userID, amount, categoryID, description, date, notes)
}

func (m *mockExpenseService) ListExpenses(userID uint, params pagination.ListParams, filter services.ExpenseFilter) ([]models.Expense, error) {
	return m.ListExpensesFn(userID, params, filter)
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	return m.GetExpenseByIDFn(userID, expenseID)
}

func (m *mockExpenseService) UpdateExpense(userID, expenseID uint, patch services.ExpensePatch) (*models.Expense, error) {
	return m.UpdateExpenseFn(userID, expenseID, patch)
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID uint) error {
	return m.DeleteExpenseFn(userID, expenseID)
}

var _ services.AuthServicer = (*mockAuthService)(nil)
var _ services.CategoryServicer = (*mockCategoryService)(nil)
var _ services.ExpenseServicer = (*mockExpenseService)(nil)
