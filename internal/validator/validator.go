// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("property_type", validatePropertyType)
		_ = v.RegisterValidation("asset_category", validateAssetCategory)
		_ = v.RegisterValidation("utility_type", validateUtilityType)
		_ = v.RegisterValidation("paint_finish", validatePaintFinish)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("task_status", validateTaskStatus)
		_ = v.RegisterValidation("bill_category", validateBillCategory)
		_ = v.RegisterValidation("bill_frequency", validateBillFrequency)
		_ = v.RegisterValidation("payment_day", validatePaymentDay)
	}
}

func validatePropertyType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "house", "apartment", "condo", "townhouse", "cottage", "other":
		return true
	}
	return false
}

func validateAssetCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "appliance", "hvac", "plumbing", "electrical", "furniture", "structure", "other":
		return true
	}
	return false
}

func validateUtilityType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "water", "gas", "electricity":
		return true
	}
	return false
}

func validatePaintFinish(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "flat", "matte", "eggshell", "satin", "semi_gloss", "gloss":
		return true
	}
	return false
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "repairs", "improvements", "utilities", "insurance", "taxes", "cleaning", "landscaping", "other":
		return true
	}
	return false
}

func validateTaskStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "done":
		return true
	}
	return false
}

func validateBillCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "electricity", "water", "gas", "internet", "trash", "rent", "mortgage", "insurance", "other":
		return true
	}
	return false
}

func validateBillFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "weekly", "biweekly", "monthly", "quarterly", "yearly":
		return true
	}
	return false
}

func validatePaymentDay(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "1st", "5th", "10th", "15th", "20th", "25th", "end_of_month":
		return true
	}
	return false
}
