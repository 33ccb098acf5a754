package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
	"hestia/internal/services"
)

// ShutoffHandler handles shutoff-point requests.
type ShutoffHandler struct {
	shutoffService services.ShutoffServicer
	auditService   services.AuditServicer
}

// NewShutoffHandler creates a new ShutoffHandler.
func NewShutoffHandler(shutoffService services.ShutoffServicer, auditService services.AuditServicer) *ShutoffHandler {
	return &ShutoffHandler{shutoffService: shutoffService, auditService: auditService}
}

// CreateShutoffRequest represents the request payload for creating a shutoff point.
type CreateShutoffRequest struct {
	Utility  models.UtilityType `json:"utility" binding:"required,utility_type"`
	Location string             `json:"location" binding:"required,min=1,max=255"`
	Notes    string             `json:"notes" binding:"max=1000"`
}

// UpdateShutoffRequest represents the request payload for updating a shutoff point.
// Omitted fields are left unchanged.
type UpdateShutoffRequest struct {
	Utility  *models.UtilityType `json:"utility" binding:"omitempty,utility_type"`
	Location string              `json:"location" binding:"omitempty,min=1,max=255"`
	Notes    string              `json:"notes" binding:"max=1000"`
}

// CreateShutoff handles recording a new shutoff point.
// @Summary     Create a shutoff point
// @Description Record where a utility's emergency shutoff is located in a property
// @Tags        shutoffs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Property ID"
// @Param       request body CreateShutoffRequest true "Shutoff point details"
// @Success     201 {object} models.ShutoffPoint "Shutoff point created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/shutoffs [post]
func (h *ShutoffHandler) CreateShutoff(c *gin.Context) {
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

	var req CreateShutoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	shutoff, err := h.shutoffService.CreateShutoff(userID, propertyID, req.Utility, req.Location, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_SHUTOFF", "shutoff_point", shutoff.ID, c.ClientIP(),
		map[string]interface{}{"utility": req.Utility, "location": req.Location, "property_id": propertyID})

	c.JSON(http.StatusCreated, gin.H{"shutoff_point": shutoff})
}

// GetShutoffs handles listing the shutoff points of a property.
// @Summary     Get shutoff points
// @Description Get a paginated list of shutoff points in a property
// @Tags        shutoffs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Property ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.ShutoffPoint] "Paginated shutoff points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/shutoffs [get]
func (h *ShutoffHandler) GetShutoffs(c *gin.Context) {
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

	result, err := h.shutoffService.GetPropertyShutoffs(userID, propertyID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetShutoff handles retrieving a specific shutoff point.
// @Summary     Get shutoff point by ID
// @Description Get a specific shutoff point by ID
// @Tags        shutoffs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Shutoff point ID"
// @Success     200 {object} models.ShutoffPoint "Shutoff point details"
// @Failure     400 {object} ErrorResponse "Invalid shutoff point ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Shutoff point not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /shutoffs/{id} [get]
func (h *ShutoffHandler) GetShutoff(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	shutoffID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	shutoff, err := h.shutoffService.GetShutoffByID(userID, shutoffID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shutoff_point": shutoff})
}

// UpdateShutoff handles updating an existing shutoff point.
// @Summary     Update shutoff point
// @Description Update an existing shutoff point
// @Tags        shutoffs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Shutoff point ID"
// @Param       request body UpdateShutoffRequest true "Updated shutoff point details"
// @Success     200 {object} models.ShutoffPoint "Updated shutoff point"
// @Failure     400 {object} ErrorResponse "Invalid input or shutoff point ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Shutoff point not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /shutoffs/{id} [put]
func (h *ShutoffHandler) UpdateShutoff(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	shutoffID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateShutoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	shutoff, err := h.shutoffService.UpdateShutoff(userID, shutoffID, req.Utility, req.Location, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SHUTOFF", "shutoff_point", shutoffID, c.ClientIP(),
		map[string]interface{}{"location": req.Location})

	c.JSON(http.StatusOK, gin.H{"shutoff_point": shutoff})
}

// DeleteShutoff handles deleting a shutoff point.
// @Summary     Delete shutoff point
// @Description Delete a shutoff point by ID (soft delete)
// @Tags        shutoffs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Shutoff point ID"
// @Success     200 {object} MessageResponse "Shutoff point deleted"
// @Failure     400 {object} ErrorResponse "Invalid shutoff point ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Shutoff point not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /shutoffs/{id} [delete]
func (h *ShutoffHandler) DeleteShutoff(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	shutoffID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.shutoffService.DeleteShutoff(userID, shutoffID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_SHUTOFF", "shutoff_point", shutoffID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Shutoff point deleted successfully"})
}
