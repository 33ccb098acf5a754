package services

import (
	"time"

	"hestia/internal/models"
	"hestia/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID string, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// PropertyServicer defines the contract for property-related business logic.
type PropertyServicer interface {
	CreateProperty(userID, name string, propertyType models.PropertyType, address, notes string) (*models.Property, error)
	GetUserProperties(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Property], error)
	GetPropertyByID(userID, propertyID string) (*models.Property, error)
	UpdateProperty(userID, propertyID, name string, propertyType *models.PropertyType, address, notes string) (*models.Property, error)
	DeleteProperty(userID, propertyID string) error
}

// RoomServicer defines the contract for room-related business logic.
type RoomServicer interface {
	CreateRoom(userID, propertyID, name string, floor int, notes string) (*models.Room, error)
	GetPropertyRooms(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.Room], error)
	GetRoomByID(userID, roomID string) (*models.Room, error)
	UpdateRoom(userID, roomID, name string, floor *int, notes string) (*models.Room, error)
	DeleteRoom(userID, roomID string) error
}

// AssetServicer defines the contract for asset-related business logic.
type AssetServicer interface {
	CreateAsset(userID, propertyID string, roomID *string, name string, category models.AssetCategory, purchaseDate *time.Time, purchasePrice *int64, serialNumber, notes string) (*models.Asset, error)
	GetPropertyAssets(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	GetAssetByID(userID, assetID string) (*models.Asset, error)
	UpdateAsset(userID, assetID string, roomID *string, name string, category *models.AssetCategory, purchaseDate *time.Time, purchasePrice *int64, serialNumber, notes string) (*models.Asset, error)
	DeleteAsset(userID, assetID string) error
}

// WorkerServicer defines the contract for worker-related business logic.
type WorkerServicer interface {
	CreateWorker(userID, propertyID, name, trade, phone, email string, hourlyRate *int64, notes string) (*models.Worker, error)
	GetPropertyWorkers(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.Worker], error)
	GetWorkerByID(userID, workerID string) (*models.Worker, error)
	UpdateWorker(userID, workerID, name, trade, phone, email string, hourlyRate *int64, notes string) (*models.Worker, error)
	DeleteWorker(userID, workerID string) error
}

// ShutoffServicer defines the contract for shutoff-point business logic.
type ShutoffServicer interface {
	CreateShutoff(userID, propertyID string, utility models.UtilityType, location, notes string) (*models.ShutoffPoint, error)
	GetPropertyShutoffs(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.ShutoffPoint], error)
	GetShutoffByID(userID, shutoffID string) (*models.ShutoffPoint, error)
	UpdateShutoff(userID, shutoffID string, utility *models.UtilityType, location, notes string) (*models.ShutoffPoint, error)
	DeleteShutoff(userID, shutoffID string) error
}

// PaintCodeServicer defines the contract for paint-code business logic.
type PaintCodeServicer interface {
	CreatePaintCode(userID, propertyID string, roomID *string, brand, colorName, code string, finish models.PaintFinish, notes string) (*models.PaintCode, error)
	GetPropertyPaintCodes(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.PaintCode], error)
	GetPaintCodeByID(userID, paintCodeID string) (*models.PaintCode, error)
	UpdatePaintCode(userID, paintCodeID string, roomID *string, brand, colorName, code string, finish *models.PaintFinish, notes string) (*models.PaintCode, error)
	DeletePaintCode(userID, paintCodeID string) error
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Category *models.ExpenseCategory
}

// MonthlyTotal is the summed expense amount for one calendar month.
type MonthlyTotal struct {
	Month int   `json:"month"`
	Total int64 `json:"total"`
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID, propertyID, name string, category models.ExpenseCategory, amount int64, date time.Time, notes string) (*models.Expense, error)
	GetPropertyExpenses(userID, propertyID string, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID, name string, category *models.ExpenseCategory, amount *int64, date *time.Time, notes string) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
	GetMonthlyTotals(userID, propertyID string, year int) ([]MonthlyTotal, error)
}

// MaintenanceServicer defines the contract for maintenance-task business logic.
type MaintenanceServicer interface {
	CreateTask(userID, propertyID, title string, dueDate *time.Time, notes string) (*models.MaintenanceTask, error)
	GetPropertyTasks(userID, propertyID string, page pagination.PageRequest, status *models.TaskStatus) (*pagination.PageResponse[models.MaintenanceTask], error)
	GetTaskByID(userID, taskID string) (*models.MaintenanceTask, error)
	UpdateTask(userID, taskID, title string, dueDate *time.Time, notes string) (*models.MaintenanceTask, error)
	CompleteTask(userID, taskID string) (*models.MaintenanceTask, error)
	ReopenTask(userID, taskID string) (*models.MaintenanceTask, error)
	DeleteTask(userID, taskID string) error
}

// TimelineKind distinguishes the source record behind a timeline entry.
type TimelineKind string

const (
	TimelineKindExpense TimelineKind = "expense"
	TimelineKindTask    TimelineKind = "task"
)

// TimelineEntry is a single dated event in a property's activity feed.
// Amount is set for expenses, Status for maintenance tasks.
type TimelineEntry struct {
	ID     string             `json:"id"`
	Kind   TimelineKind       `json:"kind"`
	Date   time.Time          `json:"date"`
	Title  string             `json:"title"`
	Amount *int64             `json:"amount,omitempty"`
	Status *models.TaskStatus `json:"status,omitempty"`
}

// TimelineDay groups the entries that share one calendar day.
type TimelineDay struct {
	Date    string          `json:"date"`
	Entries []TimelineEntry `json:"entries"`
}

// TimelineServicer defines the contract for the property activity feed.
type TimelineServicer interface {
	GetPropertyTimeline(userID, propertyID string, kind *TimelineKind, status *models.TaskStatus) ([]TimelineDay, error)
}

// TemplateSummary pairs a bill template with the fields derived from its
// payment history, for list views.
type TemplateSummary struct {
	Template          models.BillTemplate `json:"template"`
	PaymentCount      int                 `json:"payment_count"`
	LastPaymentDate   *time.Time          `json:"last_payment_date,omitempty"`
	LastPaymentAmount *int64              `json:"last_payment_amount,omitempty"`
}

// TemplateDetail is the full client view of a bill template: the template
// itself, fields derived from its complete payment history, and the payment
// list narrowed to the selected year. Payments and TotalPaid reflect the
// year filter; the derived fields and Years always cover the full history.
type TemplateDetail struct {
	Template          models.BillTemplate  `json:"template"`
	PaymentCount      int                  `json:"payment_count"`
	LastPaymentDate   *time.Time           `json:"last_payment_date,omitempty"`
	LastPaymentAmount *int64               `json:"last_payment_amount,omitempty"`
	Years             []int                `json:"years"`
	SelectedYear      *int                 `json:"selected_year,omitempty"`
	Payments          []models.BillPayment `json:"payments"`
	TotalPaid         int64                `json:"total_paid"`
}

// BillTemplateServicer defines the contract for recurring bill templates.
type BillTemplateServicer interface {
	CreateTemplate(userID, propertyID, name string, category models.BillCategory, frequency models.BillFrequency, paymentDay *models.PaymentDay) (*models.BillTemplate, error)
	GetPropertyTemplates(userID, propertyID string, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[TemplateSummary], error)
	GetTemplateByID(userID, templateID string) (*models.BillTemplate, error)
	GetTemplateDetail(userID, templateID string, year *int) (*TemplateDetail, error)
	UpdateTemplate(userID, templateID, name string, category *models.BillCategory, frequency *models.BillFrequency, paymentDay *models.PaymentDay) (*models.BillTemplate, error)
	ToggleTemplateActive(userID, templateID string) (*models.BillTemplate, error)
	DeleteTemplate(userID, templateID string) error
}

// BillPaymentServicer defines the contract for payments recorded against a
// bill template. Mutations return the refreshed template detail so callers
// never have to re-derive state from a stale snapshot.
type BillPaymentServicer interface {
	RecordPayment(userID, templateID string, amount int64, paidDate time.Time, notes string) (*TemplateDetail, error)
	DeletePayment(userID, templateID, paymentID string, selectedYear *int) (*TemplateDetail, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
