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

// AssetHandler handles asset-related requests.
type AssetHandler struct {
	assetService services.AssetServicer
	auditService services.AuditServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer, auditService services.AuditServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService, auditService: auditService}
}

// CreateAssetRequest represents the request payload for creating an asset.
type CreateAssetRequest struct {
	Name          string               `json:"name" binding:"required,min=1,max=100"`
	Category      models.AssetCategory `json:"category" binding:"omitempty,asset_category"`
	RoomID        *string              `json:"room_id" binding:"omitempty,uuid"`
	PurchaseDate  *time.Time           `json:"purchase_date"`
	PurchasePrice *int64               `json:"purchase_price" binding:"omitempty,gte=0"`
	SerialNumber  string               `json:"serial_number" binding:"max=100"`
	Notes         string               `json:"notes" binding:"max=1000"`
}

// UpdateAssetRequest represents the request payload for updating an asset.
// Omitted fields are left unchanged; an empty room_id detaches the asset
// from its room.
type UpdateAssetRequest struct {
	Name          string                `json:"name" binding:"omitempty,min=1,max=100"`
	Category      *models.AssetCategory `json:"category" binding:"omitempty,asset_category"`
	RoomID        *string               `json:"room_id"`
	PurchaseDate  *time.Time            `json:"purchase_date"`
	PurchasePrice *int64                `json:"purchase_price" binding:"omitempty,gte=0"`
	SerialNumber  string                `json:"serial_number" binding:"max=100"`
	Notes         string                `json:"notes" binding:"max=1000"`
}

// CreateAsset handles the creation of a new asset.
// @Summary     Create an asset
// @Description Create a new asset in a property, optionally placed in a room
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Property ID"
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property or room not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
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

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.CreateAsset(
		userID, propertyID, req.RoomID, req.Name, req.Category,
		req.PurchaseDate, req.PurchasePrice, req.SerialNumber, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_ASSET", "asset", asset.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "category": asset.Category, "property_id": propertyID})

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// GetAssets handles listing the assets of a property.
// @Summary     Get assets
// @Description Get a paginated list of assets in a property
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Property ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Asset] "Paginated assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/assets [get]
func (h *AssetHandler) GetAssets(c *gin.Context) {
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

	result, err := h.assetService.GetPropertyAssets(userID, propertyID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAsset handles retrieving a specific asset.
// @Summary     Get asset by ID
// @Description Get a specific asset by ID
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} models.Asset "Asset details"
// @Failure     400 {object} ErrorResponse "Invalid asset ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAssetByID(userID, assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// UpdateAsset handles updating an existing asset.
// @Summary     Update asset
// @Description Update an existing asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Asset ID"
// @Param       request body UpdateAssetRequest true "Updated asset details"
// @Success     200 {object} models.Asset "Updated asset"
// @Failure     400 {object} ErrorResponse "Invalid input or asset ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.UpdateAsset(
		userID, assetID, req.RoomID, req.Name, req.Category,
		req.PurchaseDate, req.PurchasePrice, req.SerialNumber, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_ASSET", "asset", assetID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// DeleteAsset handles deleting an asset.
// @Summary     Delete asset
// @Description Delete an asset by ID (soft delete)
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} MessageResponse "Asset deleted"
// @Failure     400 {object} ErrorResponse "Invalid asset ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.DeleteAsset(userID, assetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_ASSET", "asset", assetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}
