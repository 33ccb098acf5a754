package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hestia/internal/errors"
	"hestia/internal/pagination"
	"hestia/internal/services"
)

// WorkerHandler handles requests for a property's contact list of
// tradespeople and service providers.
type WorkerHandler struct {
	workerService services.WorkerServicer
	auditService  services.AuditServicer
}

// NewWorkerHandler creates a new WorkerHandler.
func NewWorkerHandler(workerService services.WorkerServicer, auditService services.AuditServicer) *WorkerHandler {
	return &WorkerHandler{workerService: workerService, auditService: auditService}
}

// CreateWorkerRequest represents the request payload for creating a worker.
type CreateWorkerRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	Trade      string `json:"trade" binding:"max=100"`
	Phone      string `json:"phone" binding:"max=50"`
	Email      string `json:"email" binding:"omitempty,email,max=255"`
	HourlyRate *int64 `json:"hourly_rate" binding:"omitempty,gte=0"`
	Notes      string `json:"notes" binding:"max=1000"`
}

// UpdateWorkerRequest represents the request payload for updating a worker.
// Omitted fields are left unchanged.
type UpdateWorkerRequest struct {
	Name       string `json:"name" binding:"omitempty,min=1,max=100"`
	Trade      string `json:"trade" binding:"max=100"`
	Phone      string `json:"phone" binding:"max=50"`
	Email      string `json:"email" binding:"omitempty,email,max=255"`
	HourlyRate *int64 `json:"hourly_rate" binding:"omitempty,gte=0"`
	Notes      string `json:"notes" binding:"max=1000"`
}

// CreateWorker handles the creation of a new worker.
// @Summary     Create a worker
// @Description Add a tradesperson or service provider to a property's contact list
// @Tags        workers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Property ID"
// @Param       request body CreateWorkerRequest true "Worker details"
// @Success     201 {object} models.Worker "Worker created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/workers [post]
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
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

	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	worker, err := h.workerService.CreateWorker(
		userID, propertyID, req.Name, req.Trade, req.Phone, req.Email, req.HourlyRate, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_WORKER", "worker", worker.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "trade": req.Trade, "property_id": propertyID})

	c.JSON(http.StatusCreated, gin.H{"worker": worker})
}

// GetWorkers handles listing the workers of a property.
// @Summary     Get workers
// @Description Get a paginated list of workers for a property
// @Tags        workers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Property ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Worker] "Paginated workers"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/workers [get]
func (h *WorkerHandler) GetWorkers(c *gin.Context) {
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

	result, err := h.workerService.GetPropertyWorkers(userID, propertyID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetWorker handles retrieving a specific worker.
// @Summary     Get worker by ID
// @Description Get a specific worker by ID
// @Tags        workers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Worker ID"
// @Success     200 {object} models.Worker "Worker details"
// @Failure     400 {object} ErrorResponse "Invalid worker ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Worker not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /workers/{id} [get]
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	workerID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	worker, err := h.workerService.GetWorkerByID(userID, workerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"worker": worker})
}

// UpdateWorker handles updating an existing worker.
// @Summary     Update worker
// @Description Update an existing worker
// @Tags        workers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Worker ID"
// @Param       request body UpdateWorkerRequest true "Updated worker details"
// @Success     200 {object} models.Worker "Updated worker"
// @Failure     400 {object} ErrorResponse "Invalid input or worker ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Worker not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /workers/{id} [put]
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	workerID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	worker, err := h.workerService.UpdateWorker(
		userID, workerID, req.Name, req.Trade, req.Phone, req.Email, req.HourlyRate, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_WORKER", "worker", workerID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, gin.H{"worker": worker})
}

// DeleteWorker handles deleting a worker.
// @Summary     Delete worker
// @Description Delete a worker by ID (soft delete)
// @Tags        workers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Worker ID"
// @Success     200 {object} MessageResponse "Worker deleted"
// @Failure     400 {object} ErrorResponse "Invalid worker ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Worker not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /workers/{id} [delete]
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	workerID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.workerService.DeleteWorker(userID, workerID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_WORKER", "worker", workerID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Worker deleted successfully"})
}
