package models

import "time"

// ExpenseCategory represents the type of a one-off property expense
type ExpenseCategory string

const (
	ExpenseCategoryRepairs      ExpenseCategory = "repairs"
	ExpenseCategoryImprovements ExpenseCategory = "improvements"
	ExpenseCategoryUtilities    ExpenseCategory = "utilities"
	ExpenseCategoryInsurance    ExpenseCategory = "insurance"
	ExpenseCategoryTaxes        ExpenseCategory = "taxes"
	ExpenseCategoryCleaning     ExpenseCategory = "cleaning"
	ExpenseCategoryLandscaping  ExpenseCategory = "landscaping"
	ExpenseCategoryOther        ExpenseCategory = "other"
)

// IsValid reports whether c is a known expense category.
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryRepairs, ExpenseCategoryImprovements, ExpenseCategoryUtilities,
		ExpenseCategoryInsurance, ExpenseCategoryTaxes, ExpenseCategoryCleaning,
		ExpenseCategoryLandscaping, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense represents a one-off cost recorded against a property.
// Amount is in cents.
type Expense struct {
	Base
	PropertyID string          `gorm:"type:uuid;not null;index" json:"property_id"`
	Name       string          `gorm:"not null" json:"name"`
	Category   ExpenseCategory `gorm:"not null;default:'other'" json:"category"`
	Amount     int64           `gorm:"type:bigint;not null" json:"amount"`
	Date       time.Time       `gorm:"not null" json:"date"`
	Notes      string          `json:"notes"`
}
