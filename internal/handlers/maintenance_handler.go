package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
	"hestia/internal/services"
)

// MaintenanceHandler handles maintenance-task requests.
type MaintenanceHandler struct {
	maintenanceService services.MaintenanceServicer
	auditService       services.AuditServicer
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(maintenanceService services.MaintenanceServicer, auditService services.AuditServicer) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService, auditService: auditService}
}

// CreateTaskRequest represents the request payload for creating a maintenance task.
type CreateTaskRequest struct {
	Title   string     `json:"title" binding:"required,min=1,max=200"`
	DueDate *time.Time `json:"due_date"`
	Notes   string     `json:"notes" binding:"max=1000"`
}

// UpdateTaskRequest represents the request payload for updating a maintenance task.
// Omitted fields are left unchanged. Status transitions go through the
// complete and reopen endpoints, not through update.
type UpdateTaskRequest struct {
	Title   string     `json:"title" binding:"omitempty,min=1,max=200"`
	DueDate *time.Time `json:"due_date"`
	Notes   string     `json:"notes" binding:"max=1000"`
}

// CreateTask handles the creation of a new maintenance task.
// @Summary     Create a maintenance task
// @Description Create a new maintenance task for a property
// @Tags        maintenance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Property ID"
// @Param       request body CreateTaskRequest true "Task details"
// @Success     201 {object} models.MaintenanceTask "Task created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/tasks [post]
func (h *MaintenanceHandler) CreateTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.maintenanceService.CreateTask(userID, propertyID, req.Title, req.DueDate, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TASK", "maintenance_task", task.ID, c.ClientIP(),
		map[string]interface{}{"title": req.Title, "property_id": propertyID})

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// GetTasks handles listing the maintenance tasks of a property.
// @Summary     Get maintenance tasks
// @Description Get a paginated list of maintenance tasks for a property
// @Tags        maintenance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Property ID"
// @Param       status    query string false "Filter by status (pending/done)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.MaintenanceTask] "Paginated tasks"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/tasks [get]
func (h *MaintenanceHandler) GetTasks(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var status *models.TaskStatus
	if v := c.Query("status"); v != "" {
		s := models.TaskStatus(v)
		if !s.IsValid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be 'pending' or 'done'"))
			return
		}
		status = &s
	}

	result, err := h.maintenanceService.GetPropertyTasks(userID, propertyID, page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTask handles retrieving a specific maintenance task.
// @Summary     Get task by ID
// @Description Get a specific maintenance task by ID
// @Tags        maintenance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} models.MaintenanceTask "Task details"
// @Failure     400 {object} ErrorResponse "Invalid task ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tasks/{id} [get]
func (h *MaintenanceHandler) GetTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	taskID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	task, err := h.maintenanceService.GetTaskByID(userID, taskID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// UpdateTask handles updating an existing maintenance task.
// @Summary     Update task
// @Description Update a maintenance task's title, due date, or notes
// @Tags        maintenance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Task ID"
// @Param       request body UpdateTaskRequest true "Updated task details"
// @Success     200 {object} models.MaintenanceTask "Updated task"
// @Failure     400 {object} ErrorResponse "Invalid input or task ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tasks/{id} [put]
func (h *MaintenanceHandler) UpdateTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	taskID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.maintenanceService.UpdateTask(userID, taskID, req.Title, req.DueDate, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TASK", "maintenance_task", taskID, c.ClientIP(),
		map[string]interface{}{"title": req.Title})

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// CompleteTask handles marking a maintenance task as done.
// @Summary     Complete task
// @Description Mark a maintenance task as done, stamping the completion time
// @Tags        maintenance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} models.MaintenanceTask "Completed task"
// @Failure     400 {object} ErrorResponse "Invalid task ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tasks/{id}/complete [post]
func (h *MaintenanceHandler) CompleteTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	taskID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	task, err := h.maintenanceService.CompleteTask(userID, taskID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "COMPLETE_TASK", "maintenance_task", taskID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// ReopenTask handles moving a completed task back to pending.
// @Summary     Reopen task
// @Description Move a completed maintenance task back to pending, clearing the completion time
// @Tags        maintenance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} models.MaintenanceTask "Reopened task"
// @Failure     400 {object} ErrorResponse "Invalid task ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tasks/{id}/reopen [post]
func (h *MaintenanceHandler) ReopenTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	taskID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	task, err := h.maintenanceService.ReopenTask(userID, taskID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REOPEN_TASK", "maintenance_task", taskID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// DeleteTask handles deleting a maintenance task.
// @Summary     Delete task
// @Description Delete a maintenance task by ID (soft delete)
// @Tags        maintenance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} MessageResponse "Task deleted"
// @Failure     400 {object} ErrorResponse "Invalid task ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tasks/{id} [delete]
func (h *MaintenanceHandler) DeleteTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	taskID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.maintenanceService.DeleteTask(userID, taskID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TASK", "maintenance_task", taskID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
