package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

func findOwnedExpense(db *gorm.DB, userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := db.Where("id = ?", expenseID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := findOwnedProperty(db, userID, expense.PropertyID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, err
	}

	return &expense, nil
}

// CreateExpense records a one-off expense against a property.
func (s *expenseService) CreateExpense(
	userID, propertyID, name string,
	category models.ExpenseCategory,
	amount int64,
	date time.Time,
	notes string,
) (*models.Expense, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if date.After(time.Now()) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense date cannot be in the future")
	}
	if category == "" {
		category = models.ExpenseCategoryOther
	}

	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		PropertyID: propertyID,
		Name:       name,
		Category:   category,
		Amount:     amount,
		Date:       date,
		Notes:      notes,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetPropertyExpenses returns a paginated list of a property's expenses,
// newest first, with optional category and date-range filters.
func (s *expenseService) GetPropertyExpenses(
	userID, propertyID string,
	page pagination.PageRequest,
	filter ExpenseFilter,
) (*pagination.PageResponse[models.Expense], error) {
	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("property_id = ?", propertyID)
	if filter.Category != nil {
		base = base.Where("category = ?", *filter.Category)
	}
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("date DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID returns an expense by ID if it belongs to the user.
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	return findOwnedExpense(s.db, userID, expenseID)
}

// UpdateExpense updates an existing expense's fields.
func (s *expenseService) UpdateExpense(
	userID, expenseID, name string,
	category *models.ExpenseCategory,
	amount *int64,
	date *time.Time,
	notes string,
) (*models.Expense, error) {
	expense, err := findOwnedExpense(s.db, userID, expenseID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if category != nil {
		updates["category"] = *category
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *amount
	}
	if date != nil {
		if date.After(time.Now()) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense date cannot be in the future")
		}
		updates["date"] = *date
	}
	if notes != "" {
		updates["notes"] = notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return expense, nil
}

// DeleteExpense soft-deletes an expense.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := findOwnedExpense(s.db, userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetMonthlyTotals buckets one calendar year of a property's expenses into
// twelve month totals. The rows are fetched for the year window and summed
// here rather than in SQL, so the result is identical across the postgres
// and sqlite backends.
func (s *expenseService) GetMonthlyTotals(userID, propertyID string, year int) ([]MonthlyTotal, error) {
	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}

	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year+1, 1, 1, 0, 0, 0, 0, time.UTC)

	var expenses []models.Expense
	if err := s.db.Where("property_id = ? AND date >= ? AND date < ?", propertyID, from, to).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := make([]MonthlyTotal, 12)
	for i := range totals {
		totals[i].Month = i + 1
	}
	for _, e := range expenses {
		m := int(e.Date.UTC().Month())
		totals[m-1].Total += e.Amount
	}

	return totals, nil
}
