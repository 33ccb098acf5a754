package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"hestia/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProperty creates a property owned by the given user.
func CreateTestProperty(t *testing.T, db *gorm.DB, userID string) *models.Property {
	t.Helper()

	property := &models.Property{
		UserID: userID,
		Name:   fmt.Sprintf("Test Property %d", nextID()),
		Type:   models.PropertyTypeHouse,
	}
	if err := db.Create(property).Error; err != nil {
		t.Fatalf("failed to create test property: %v", err)
	}
	return property
}

// CreateTestRoom creates a room in the given property.
func CreateTestRoom(t *testing.T, db *gorm.DB, propertyID string) *models.Room {
	t.Helper()

	room := &models.Room{
		PropertyID: propertyID,
		Name:       fmt.Sprintf("Test Room %d", nextID()),
		Floor:      1,
	}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("failed to create test room: %v", err)
	}
	return room
}

// CreateTestAsset creates an asset in the given property, not tied to a room.
func CreateTestAsset(t *testing.T, db *gorm.DB, propertyID string) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		PropertyID: propertyID,
		Name:       fmt.Sprintf("Test Asset %d", nextID()),
		Category:   models.AssetCategoryAppliance,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestWorker creates a worker for the given property.
func CreateTestWorker(t *testing.T, db *gorm.DB, propertyID string) *models.Worker {
	t.Helper()

	worker := &models.Worker{
		PropertyID: propertyID,
		Name:       fmt.Sprintf("Test Worker %d", nextID()),
		Trade:      "plumber",
	}
	if err := db.Create(worker).Error; err != nil {
		t.Fatalf("failed to create test worker: %v", err)
	}
	return worker
}

// CreateTestShutoff creates a water shutoff point for the given property.
func CreateTestShutoff(t *testing.T, db *gorm.DB, propertyID string) *models.ShutoffPoint {
	t.Helper()

	shutoff := &models.ShutoffPoint{
		PropertyID: propertyID,
		Utility:    models.UtilityWater,
		Location:   fmt.Sprintf("Basement corner %d", nextID()),
	}
	if err := db.Create(shutoff).Error; err != nil {
		t.Fatalf("failed to create test shutoff point: %v", err)
	}
	return shutoff
}

// CreateTestPaintCode creates a paint code for the given property, not tied
// to a room.
func CreateTestPaintCode(t *testing.T, db *gorm.DB, propertyID string) *models.PaintCode {
	t.Helper()

	paintCode := &models.PaintCode{
		PropertyID: propertyID,
		Brand:      "Test Brand",
		ColorName:  fmt.Sprintf("Test Color %d", nextID()),
		Code:       "TC-001",
		Finish:     models.PaintFinishMatte,
	}
	if err := db.Create(paintCode).Error; err != nil {
		t.Fatalf("failed to create test paint code: %v", err)
	}
	return paintCode
}

// CreateTestExpense creates an expense with the given amount (in cents) and date.
func CreateTestExpense(t *testing.T, db *gorm.DB, propertyID string, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		PropertyID: propertyID,
		Name:       fmt.Sprintf("Test Expense %d", nextID()),
		Category:   models.ExpenseCategoryRepairs,
		Amount:     amount,
		Date:       date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestTask creates a pending maintenance task for the given property.
func CreateTestTask(t *testing.T, db *gorm.DB, propertyID string) *models.MaintenanceTask {
	t.Helper()

	task := &models.MaintenanceTask{
		PropertyID: propertyID,
		Title:      fmt.Sprintf("Test Task %d", nextID()),
		Status:     models.TaskStatusPending,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateTestBillTemplate creates an active monthly bill template for the
// given property.
func CreateTestBillTemplate(t *testing.T, db *gorm.DB, propertyID string) *models.BillTemplate {
	t.Helper()

	template := &models.BillTemplate{
		PropertyID: propertyID,
		Name:       fmt.Sprintf("Test Bill %d", nextID()),
		Category:   models.BillCategoryElectricity,
		Frequency:  models.FrequencyMonthly,
		IsActive:   true,
	}
	if err := db.Create(template).Error; err != nil {
		t.Fatalf("failed to create test bill template: %v", err)
	}
	return template
}

// CreateTestPayment records a payment of the given amount (in cents) against
// a bill template on the given date.
func CreateTestPayment(t *testing.T, db *gorm.DB, templateID string, amount int64, paidDate time.Time) *models.BillPayment {
	t.Helper()

	payment := &models.BillPayment{
		TemplateID: templateID,
		Amount:     amount,
		PaidDate:   paidDate,
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}
