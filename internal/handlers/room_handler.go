package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hestia/internal/errors"
	"hestia/internal/pagination"
	"hestia/internal/services"
)

// RoomHandler handles room-related requests.
type RoomHandler struct {
	roomService  services.RoomServicer
	auditService services.AuditServicer
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(roomService services.RoomServicer, auditService services.AuditServicer) *RoomHandler {
	return &RoomHandler{roomService: roomService, auditService: auditService}
}

// CreateRoomRequest represents the request payload for creating a room.
type CreateRoomRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Floor int    `json:"floor" binding:"omitempty,gte=-5,lte=200"`
	Notes string `json:"notes" binding:"max=1000"`
}

// UpdateRoomRequest represents the request payload for updating a room.
// Omitted fields are left unchanged.
type UpdateRoomRequest struct {
	Name  string `json:"name" binding:"omitempty,min=1,max=100"`
	Floor *int   `json:"floor" binding:"omitempty,gte=-5,lte=200"`
	Notes string `json:"notes" binding:"max=1000"`
}

// CreateRoom handles the creation of a new room.
// @Summary     Create a room
// @Description Create a new room in a property
// @Tags        rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Property ID"
// @Param       request body CreateRoomRequest true "Room details"
// @Success     201 {object} models.Room "Room created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
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

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	room, err := h.roomService.CreateRoom(userID, propertyID, req.Name, req.Floor, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_ROOM", "room", room.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "property_id": propertyID})

	c.JSON(http.StatusCreated, gin.H{"room": room})
}

// GetRooms handles listing the rooms of a property.
// @Summary     Get rooms
// @Description Get a paginated list of rooms in a property
// @Tags        rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Property ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Room] "Paginated rooms"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/rooms [get]
func (h *RoomHandler) GetRooms(c *gin.Context) {
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

	result, err := h.roomService.GetPropertyRooms(userID, propertyID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRoom handles retrieving a specific room.
// @Summary     Get room by ID
// @Description Get a specific room by ID
// @Tags        rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Room ID"
// @Success     200 {object} models.Room "Room details"
// @Failure     400 {object} ErrorResponse "Invalid room ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Room not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	roomID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	room, err := h.roomService.GetRoomByID(userID, roomID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": room})
}

// UpdateRoom handles updating an existing room.
// @Summary     Update room
// @Description Update an existing room
// @Tags        rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Room ID"
// @Param       request body UpdateRoomRequest true "Updated room details"
// @Success     200 {object} models.Room "Updated room"
// @Failure     400 {object} ErrorResponse "Invalid input or room ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Room not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	roomID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	room, err := h.roomService.UpdateRoom(userID, roomID, req.Name, req.Floor, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_ROOM", "room", roomID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, gin.H{"room": room})
}

// DeleteRoom handles deleting a room. Assets and paint codes that referenced
// the room are kept and detached.
// @Summary     Delete room
// @Description Delete a room by ID; assets and paint codes in the room are detached, not deleted
// @Tags        rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Room ID"
// @Success     200 {object} MessageResponse "Room deleted"
// @Failure     400 {object} ErrorResponse "Invalid room ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Room not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	roomID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.roomService.DeleteRoom(userID, roomID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_ROOM", "room", roomID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
