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

// maintenanceService handles maintenance-task business logic.
type maintenanceService struct {
	db *gorm.DB
}

// NewMaintenanceService creates a new MaintenanceServicer.
func NewMaintenanceService(db *gorm.DB) MaintenanceServicer {
	return &maintenanceService{db: db}
}

func findOwnedTask(db *gorm.DB, userID, taskID string) (*models.MaintenanceTask, error) {
	var task models.MaintenanceTask
	if err := db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := findOwnedProperty(db, userID, task.PropertyID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

// CreateTask creates a pending maintenance task on a property.
func (s *maintenanceService) CreateTask(
	userID, propertyID, title string,
	dueDate *time.Time,
	notes string,
) (*models.MaintenanceTask, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "task title is required")
	}

	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}

	task := &models.MaintenanceTask{
		PropertyID: propertyID,
		Title:      title,
		Status:     models.TaskStatusPending,
		DueDate:    dueDate,
		Notes:      notes,
	}

	if err := s.db.Create(task).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return task, nil
}

// GetPropertyTasks returns a paginated list of a property's tasks with an
// optional status filter. Pending tasks sort by due date (unscheduled
// last); everything breaks ties on creation order.
func (s *maintenanceService) GetPropertyTasks(
	userID, propertyID string,
	page pagination.PageRequest,
	status *models.TaskStatus,
) (*pagination.PageResponse[models.MaintenanceTask], error) {
	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}
	page.Defaults()

	base := s.db.Model(&models.MaintenanceTask{}).Where("property_id = ?", propertyID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var tasks []models.MaintenanceTask
	if err := base.Order("due_date ASC NULLS LAST, created_at ASC, id ASC").
		Scopes(pagination.Paginate(page)).Find(&tasks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(tasks, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTaskByID returns a task by ID if it belongs to the user.
func (s *maintenanceService) GetTaskByID(userID, taskID string) (*models.MaintenanceTask, error) {
	return findOwnedTask(s.db, userID, taskID)
}

// UpdateTask updates a task's title, due date, or notes. Status moves only
// through CompleteTask and ReopenTask.
func (s *maintenanceService) UpdateTask(
	userID, taskID, title string,
	dueDate *time.Time,
	notes string,
) (*models.MaintenanceTask, error) {
	task, err := findOwnedTask(s.db, userID, taskID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if dueDate != nil {
		updates["due_date"] = dueDate
	}
	if notes != "" {
		updates["notes"] = notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(task).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return task, nil
}

// CompleteTask marks a task done and stamps the completion time. Completing
// an already-done task just refreshes the stamp.
func (s *maintenanceService) CompleteTask(userID, taskID string) (*models.MaintenanceTask, error) {
	task, err := findOwnedTask(s.db, userID, taskID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.TaskStatusDone,
		"completed_at": now,
	}
	if err := s.db.Model(task).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return task, nil
}

// ReopenTask puts a completed task back to pending and clears the
// completion time.
func (s *maintenanceService) ReopenTask(userID, taskID string) (*models.MaintenanceTask, error) {
	task, err := findOwnedTask(s.db, userID, taskID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":       models.TaskStatusPending,
		"completed_at": nil,
	}
	if err := s.db.Model(task).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return task, nil
}

// DeleteTask soft-deletes a task.
func (s *maintenanceService) DeleteTask(userID, taskID string) error {
	task, err := findOwnedTask(s.db, userID, taskID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(task).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
