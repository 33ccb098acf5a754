package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
	"hestia/internal/services"
)

// PropertyHandler handles property-related requests.
type PropertyHandler struct {
	propertyService services.PropertyServicer
	auditService    services.AuditServicer
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService services.PropertyServicer, auditService services.AuditServicer) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, auditService: auditService}
}

// CreatePropertyRequest represents the request payload for creating a property.
type CreatePropertyRequest struct {
	Name    string              `json:"name" binding:"required,min=1,max=100"`
	Type    models.PropertyType `json:"type" binding:"omitempty,property_type"`
	Address string              `json:"address" binding:"max=255"`
	Notes   string              `json:"notes" binding:"max=1000"`
}

// UpdatePropertyRequest represents the request payload for updating a property.
// Omitted fields are left unchanged.
type UpdatePropertyRequest struct {
	Name    string               `json:"name" binding:"omitempty,min=1,max=100"`
	Type    *models.PropertyType `json:"type" binding:"omitempty,property_type"`
	Address string               `json:"address" binding:"max=255"`
	Notes   string               `json:"notes" binding:"max=1000"`
}

// CreateProperty handles the creation of a new property.
// @Summary     Create a property
// @Description Create a new property for the authenticated user
// @Tags        properties
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePropertyRequest true "Property details"
// @Success     201 {object} models.Property "Property created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	property, err := h.propertyService.CreateProperty(userID, req.Name, req.Type, req.Address, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PROPERTY", "property", property.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "type": property.Type})

	c.JSON(http.StatusCreated, gin.H{"property": property})
}

// GetProperties handles listing properties for the authenticated user.
// @Summary     Get properties
// @Description Get a paginated list of properties for the authenticated user
// @Tags        properties
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Property] "Paginated properties"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties [get]
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.propertyService.GetUserProperties(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProperty handles retrieving a specific property.
// @Summary     Get property by ID
// @Description Get a specific property by ID
// @Tags        properties
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Property ID"
// @Success     200 {object} models.Property "Property details"
// @Failure     400 {object} ErrorResponse "Invalid property ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
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

	property, err := h.propertyService.GetPropertyByID(userID, propertyID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// UpdateProperty handles updating an existing property.
// @Summary     Update property
// @Description Update an existing property
// @Tags        properties
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Property ID"
// @Param       request body UpdatePropertyRequest true "Updated property details"
// @Success     200 {object} models.Property "Updated property"
// @Failure     400 {object} ErrorResponse "Invalid input or property ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
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

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	property, err := h.propertyService.UpdateProperty(userID, propertyID, req.Name, req.Type, req.Address, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PROPERTY", "property", propertyID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// DeleteProperty handles deleting a property and everything recorded under it.
// @Summary     Delete property
// @Description Delete a property and all of its rooms, assets, bills, expenses, and tasks
// @Tags        properties
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Property ID"
// @Success     200 {object} MessageResponse "Property deleted"
// @Failure     400 {object} ErrorResponse "Invalid property ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
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

	if err := h.propertyService.DeleteProperty(userID, propertyID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_PROPERTY", "property", propertyID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
