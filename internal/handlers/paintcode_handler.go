package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
	"hestia/internal/services"
)

// PaintCodeHandler handles paint-code requests.
type PaintCodeHandler struct {
	paintCodeService services.PaintCodeServicer
	auditService     services.AuditServicer
}

// NewPaintCodeHandler creates a new PaintCodeHandler.
func NewPaintCodeHandler(paintCodeService services.PaintCodeServicer, auditService services.AuditServicer) *PaintCodeHandler {
	return &PaintCodeHandler{paintCodeService: paintCodeService, auditService: auditService}
}

// CreatePaintCodeRequest represents the request payload for creating a paint code.
type CreatePaintCodeRequest struct {
	ColorName string             `json:"color_name" binding:"required,min=1,max=100"`
	Brand     string             `json:"brand" binding:"max=100"`
	Code      string             `json:"code" binding:"max=100"`
	Finish    models.PaintFinish `json:"finish" binding:"omitempty,paint_finish"`
	RoomID    *string            `json:"room_id" binding:"omitempty,uuid"`
	Notes     string             `json:"notes" binding:"max=1000"`
}

// UpdatePaintCodeRequest represents the request payload for updating a paint code.
// Omitted fields are left unchanged; an empty room_id detaches the paint code
// from its room.
type UpdatePaintCodeRequest struct {
	ColorName string              `json:"color_name" binding:"omitempty,min=1,max=100"`
	Brand     string              `json:"brand" binding:"max=100"`
	Code      string              `json:"code" binding:"max=100"`
	Finish    *models.PaintFinish `json:"finish" binding:"omitempty,paint_finish"`
	RoomID    *string             `json:"room_id"`
	Notes     string              `json:"notes" binding:"max=1000"`
}

// CreatePaintCode handles recording a new paint code.
// @Summary     Create a paint code
// @Description Record the paint used in a property, optionally tied to a room
// @Tags        paint-codes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Property ID"
// @Param       request body CreatePaintCodeRequest true "Paint code details"
// @Success     201 {object} models.PaintCode "Paint code created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property or room not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/paint-codes [post]
func (h *PaintCodeHandler) CreatePaintCode(c *gin.Context) {
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

	var req CreatePaintCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	paintCode, err := h.paintCodeService.CreatePaintCode(
		userID, propertyID, req.RoomID, req.Brand, req.ColorName, req.Code, req.Finish, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PAINT_CODE", "paint_code", paintCode.ID, c.ClientIP(),
		map[string]interface{}{"color_name": req.ColorName, "brand": req.Brand, "property_id": propertyID})

	c.JSON(http.StatusCreated, gin.H{"paint_code": paintCode})
}

// GetPaintCodes handles listing the paint codes of a property.
// @Summary     Get paint codes
// @Description Get a paginated list of paint codes in a property
// @Tags        paint-codes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Property ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.PaintCode] "Paginated paint codes"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/paint-codes [get]
func (h *PaintCodeHandler) GetPaintCodes(c *gin.Context) {
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

	result, err := h.paintCodeService.GetPropertyPaintCodes(userID, propertyID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPaintCode handles retrieving a specific paint code.
// @Summary     Get paint code by ID
// @Description Get a specific paint code by ID
// @Tags        paint-codes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Paint code ID"
// @Success     200 {object} models.PaintCode "Paint code details"
// @Failure     400 {object} ErrorResponse "Invalid paint code ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Paint code not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paint-codes/{id} [get]
func (h *PaintCodeHandler) GetPaintCode(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paintCodeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	paintCode, err := h.paintCodeService.GetPaintCodeByID(userID, paintCodeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paint_code": paintCode})
}

// UpdatePaintCode handles updating an existing paint code.
// @Summary     Update paint code
// @Description Update an existing paint code
// @Tags        paint-codes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Paint code ID"
// @Param       request body UpdatePaintCodeRequest true "Updated paint code details"
// @Success     200 {object} models.PaintCode "Updated paint code"
// @Failure     400 {object} ErrorResponse "Invalid input or paint code ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Paint code not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paint-codes/{id} [put]
func (h *PaintCodeHandler) UpdatePaintCode(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paintCodeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePaintCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	paintCode, err := h.paintCodeService.UpdatePaintCode(
		userID, paintCodeID, req.RoomID, req.Brand, req.ColorName, req.Code, req.Finish, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PAINT_CODE", "paint_code", paintCodeID, c.ClientIP(),
		map[string]interface{}{"color_name": req.ColorName})

	c.JSON(http.StatusOK, gin.H{"paint_code": paintCode})
}

// DeletePaintCode handles deleting a paint code.
// @Summary     Delete paint code
// @Description Delete a paint code by ID (soft delete)
// @Tags        paint-codes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Paint code ID"
// @Success     200 {object} MessageResponse "Paint code deleted"
// @Failure     400 {object} ErrorResponse "Invalid paint code ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Paint code not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paint-codes/{id} [delete]
func (h *PaintCodeHandler) DeletePaintCode(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paintCodeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.paintCodeService.DeletePaintCode(userID, paintCodeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_PAINT_CODE", "paint_code", paintCodeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Paint code deleted successfully"})
}
