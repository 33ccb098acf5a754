package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/services"
)

// TimelineHandler handles the property activity feed. It is read only, so
// it carries no audit dependency.
type TimelineHandler struct {
	timelineService services.TimelineServicer
}

// NewTimelineHandler creates a new TimelineHandler.
func NewTimelineHandler(timelineService services.TimelineServicer) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService}
}

// GetTimeline handles retrieving a property's activity feed, grouped by day.
// @Summary     Get property timeline
// @Description Get a property's expenses and maintenance tasks merged into one day-grouped feed, newest first
// @Tags        timeline
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id     path  string true  "Property ID"
// @Param       kind   query string false "Filter by entry kind (expense/task)"
// @Param       status query string false "Filter tasks by status (pending/done)"
// @Success     200 {object} map[string]interface{} "Day-grouped timeline"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/timeline [get]
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
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

	var kind *services.TimelineKind
	if v := c.Query("kind"); v != "" {
		k := services.TimelineKind(v)
		if k != services.TimelineKindExpense && k != services.TimelineKindTask {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be 'expense' or 'task'"))
			return
		}
		kind = &k
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

	days, err := h.timelineService.GetPropertyTimeline(userID, propertyID, kind, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}
