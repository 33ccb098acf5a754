package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
	"hestia/internal/services"
	"hestia/internal/uuid"
)

type mockExpenseService struct {
	createExpenseFn       func(userID, propertyID, name string, category models.ExpenseCategory, amount int64, date time.Time, notes string) (*models.Expense, error)
	getPropertyExpensesFn func(userID, propertyID string, page pagination.PageRequest, filter services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	getExpenseByIDFn      func(userID, expenseID string) (*models.Expense, error)
	updateExpenseFn       func(userID, expenseID, name string, category *models.ExpenseCategory, amount *int64, date *time.Time, notes string) (*models.Expense, error)
	deleteExpenseFn       func(userID, expenseID string) error
	getMonthlyTotalsFn    func(userID, propertyID string, year int) ([]services.MonthlyTotal, error)
}

func (m *mockExpenseService) CreateExpense(userID, propertyID, name string, category models.ExpenseCategory, amount int64, date time.Time, notes string) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(userID, propertyID, name, category, amount, date, notes)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) GetPropertyExpenses(userID, propertyID string, page pagination.PageRequest, filter services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	if m.getPropertyExpensesFn != nil {
		return m.getPropertyExpensesFn(userID, propertyID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(userID, expenseID)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) UpdateExpense(userID, expenseID, name string, category *models.ExpenseCategory, amount *int64, date *time.Time, notes string) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(userID, expenseID, name, category, amount, date, notes)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(userID, expenseID)
	}
	return nil
}

func (m *mockExpenseService) GetMonthlyTotals(userID, propertyID string, year int) ([]services.MonthlyTotal, error) {
	if m.getMonthlyTotalsFn != nil {
		return m.getMonthlyTotalsFn(userID, propertyID, year)
	}
	return []services.MonthlyTotal{}, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID("user-1"))
	auth.POST("/properties/:id/expenses", handler.CreateExpense)
	auth.GET("/properties/:id/expenses", handler.GetExpenses)
	auth.GET("/properties/:id/expenses/monthly-totals", handler.GetMonthlyTotals)
	auth.GET("/expenses/:id", handler.GetExpense)
	auth.PUT("/expenses/:id", handler.UpdateExpense)
	auth.DELETE("/expenses/:id", handler.DeleteExpense)
	return r
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	propertyID := uuid.New()

	t.Run("returns 201 on success", func(t *testing.T) {
		expSvc := &mockExpenseService{
			createExpenseFn: func(_, propertyID, name string, category models.ExpenseCategory, amount int64, date time.Time, _ string) (*models.Expense, error) {
				return &models.Expense{
					Base:       models.Base{ID: uuid.New()},
					PropertyID: propertyID,
					Name:       name,
					Category:   category,
					Amount:     amount,
					Date:       date,
				}, nil
			},
		}
		handler := NewExpenseHandler(expSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/expenses",
			`{"name":"Gutter cleaning","category":"cleaning","amount":18000,"date":"2024-04-02T00:00:00Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["expense"].(map[string]interface{})
		if expense["name"] != "Gutter cleaning" {
			t.Errorf("expected Gutter cleaning, got %v", expense["name"])
		}
		if expense["amount"].(float64) != 18000 {
			t.Errorf("expected amount=18000, got %v", expense["amount"])
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/expenses",
			`{"name":"Gutter cleaning","amount":0,"date":"2024-04-02T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing date", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/expenses",
			`{"name":"Gutter cleaning","amount":18000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown category", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/expenses",
			`{"name":"Gutter cleaning","category":"entertainment","amount":18000,"date":"2024-04-02T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on missing property", func(t *testing.T) {
		expSvc := &mockExpenseService{
			createExpenseFn: func(_, _, _ string, _ models.ExpenseCategory, _ int64, _ time.Time, _ string) (*models.Expense, error) {
				return nil, apperrors.ErrPropertyNotFound
			},
		}
		handler := NewExpenseHandler(expSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/properties/"+propertyID+"/expenses",
			`{"name":"Gutter cleaning","amount":18000,"date":"2024-04-02T00:00:00Z"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_GetExpenses(t *testing.T) {
	propertyID := uuid.New()

	t.Run("returns 200 with paginated expenses", func(t *testing.T) {
		expSvc := &mockExpenseService{
			getPropertyExpensesFn: func(_, _ string, _ pagination.PageRequest, _ services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
				resp := pagination.NewPageResponse([]models.Expense{
					{Base: models.Base{ID: uuid.New()}, Name: "Gutter cleaning", Amount: 18000},
					{Base: models.Base{ID: uuid.New()}, Name: "Roof patch", Amount: 95000},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		handler := NewExpenseHandler(expSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/properties/"+propertyID+"/expenses", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 expenses, got %d", len(data))
		}
	})

	t.Run("passes filters to service", func(t *testing.T) {
		var captured services.ExpenseFilter
		expSvc := &mockExpenseService{
			getPropertyExpensesFn: func(_, _ string, _ pagination.PageRequest, filter services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
				captured = filter
				resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewExpenseHandler(expSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		doRequest(r, "GET", "/properties/"+propertyID+"/expenses?category=repairs&from=2024-01-01&to=2024-06-30", "")

		if captured.Category == nil || *captured.Category != models.ExpenseCategoryRepairs {
			t.Error("expected category=repairs to be passed")
		}
		if captured.FromDate == nil || captured.FromDate.Format("2006-01-02") != "2024-01-01" {
			t.Error("expected from=2024-01-01 to be passed")
		}
		if captured.ToDate == nil || captured.ToDate.Format("2006-01-02") != "2024-06-30" {
			t.Error("expected to=2024-06-30 to be passed")
		}
	})

	t.Run("returns 400 on unknown category filter", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/properties/"+propertyID+"/expenses?category=entertainment", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed from date", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/properties/"+propertyID+"/expenses?from=January", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_GetMonthlyTotals(t *testing.T) {
	propertyID := uuid.New()

	t.Run("returns 200 with twelve buckets", func(t *testing.T) {
		expSvc := &mockExpenseService{
			getMonthlyTotalsFn: func(_, _ string, year int) ([]services.MonthlyTotal, error) {
				totals := make([]services.MonthlyTotal, 12)
				for i := range totals {
					totals[i] = services.MonthlyTotal{Month: i + 1}
				}
				totals[3].Total = 18000
				return totals, nil
			},
		}
		handler := NewExpenseHandler(expSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/properties/"+propertyID+"/expenses/monthly-totals?year=2024", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["year"].(float64) != 2024 {
			t.Errorf("expected year=2024, got %v", result["year"])
		}
		totals := result["totals"].([]interface{})
		if len(totals) != 12 {
			t.Fatalf("expected 12 buckets, got %d", len(totals))
		}
		april := totals[3].(map[string]interface{})
		if april["month"].(float64) != 4 || april["total"].(float64) != 18000 {
			t.Errorf("expected April total 18000, got %v", april)
		}
	})

	t.Run("defaults to the current year", func(t *testing.T) {
		var captured int
		expSvc := &mockExpenseService{
			getMonthlyTotalsFn: func(_, _ string, year int) ([]services.MonthlyTotal, error) {
				captured = year
				return []services.MonthlyTotal{}, nil
			},
		}
		handler := NewExpenseHandler(expSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		doRequest(r, "GET", "/properties/"+propertyID+"/expenses/monthly-totals", "")

		if captured != time.Now().UTC().Year() {
			t.Errorf("expected current year, got %d", captured)
		}
	})

	t.Run("returns 400 on non-integer year", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/properties/"+propertyID+"/expenses/monthly-totals?year=current", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestExpenseHandler_GetExpense(t *testing.T) {
	expenseID := uuid.New()

	t.Run("returns 200 on success", func(t *testing.T) {
		expSvc := &mockExpenseService{
			getExpenseByIDFn: func(_, expenseID string) (*models.Expense, error) {
				return &models.Expense{Base: models.Base{ID: expenseID}, Name: "Gutter cleaning"}, nil
			},
		}
		handler := NewExpenseHandler(expSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/"+expenseID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["expense"].(map[string]interface{})
		if expense["id"] != expenseID {
			t.Errorf("expected %s, got %v", expenseID, expense["id"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		expSvc := &mockExpenseService{
			getExpenseByIDFn: func(_, _ string) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(expSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/"+expenseID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EXPENSE_NOT_FOUND")
	})
}

func TestExpenseHandler_UpdateExpense(t *testing.T) {
	expenseID := uuid.New()

	t.Run("returns 200 on success", func(t *testing.T) {
		expSvc := &mockExpenseService{
			updateExpenseFn: func(_, expenseID, name string, _ *models.ExpenseCategory, amount *int64, _ *time.Time, _ string) (*models.Expense, error) {
				updated := &models.Expense{Base: models.Base{ID: expenseID}, Name: name}
				if amount != nil {
					updated.Amount = *amount
				}
				return updated, nil
			},
		}
		handler := NewExpenseHandler(expSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/"+expenseID, `{"name":"Gutters","amount":20000}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["expense"].(map[string]interface{})
		if expense["amount"].(float64) != 20000 {
			t.Errorf("expected amount=20000, got %v", expense["amount"])
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/"+expenseID, `{"amount":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		expSvc := &mockExpenseService{
			updateExpenseFn: func(_, _, _ string, _ *models.ExpenseCategory, _ *int64, _ *time.Time, _ string) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(expSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/"+expenseID, `{"name":"Gutters"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	expenseID := uuid.New()

	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "DELETE", "/expenses/"+expenseID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Expense deleted successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		expSvc := &mockExpenseService{
			deleteExpenseFn: func(_, _ string) error {
				return apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(expSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "DELETE", "/expenses/"+expenseID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EXPENSE_NOT_FOUND")
	})
}
