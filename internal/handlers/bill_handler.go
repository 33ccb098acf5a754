package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
	"hestia/internal/services"
)

// BillHandler handles recurring bill templates and the payments recorded
// against them.
type BillHandler struct {
	templateService services.BillTemplateServicer
	paymentService  services.BillPaymentServicer
	auditService    services.AuditServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(templateService services.BillTemplateServicer, paymentService services.BillPaymentServicer, auditService services.AuditServicer) *BillHandler {
	return &BillHandler{
		templateService: templateService,
		paymentService:  paymentService,
		auditService:    auditService,
	}
}

// CreateBillTemplateRequest represents the request payload for creating a
// bill template.
type CreateBillTemplateRequest struct {
	Name       string               `json:"name" binding:"required,min=1,max=100"`
	Category   models.BillCategory  `json:"category" binding:"required,bill_category"`
	Frequency  models.BillFrequency `json:"frequency" binding:"required,bill_frequency"`
	PaymentDay *models.PaymentDay   `json:"payment_day" binding:"omitempty,payment_day"`
}

// UpdateBillTemplateRequest represents the request payload for updating a
// bill template. Omitted fields are left unchanged; an empty payment_day
// clears the scheduled day.
type UpdateBillTemplateRequest struct {
	Name       string                `json:"name" binding:"omitempty,min=1,max=100"`
	Category   *models.BillCategory  `json:"category" binding:"omitempty,bill_category"`
	Frequency  *models.BillFrequency `json:"frequency" binding:"omitempty,bill_frequency"`
	PaymentDay *models.PaymentDay    `json:"payment_day"`
}

// RecordPaymentRequest represents the request payload for recording a payment
// against a bill template. Amount is in cents.
type RecordPaymentRequest struct {
	Amount   int64     `json:"amount" binding:"required,gt=0"`
	PaidDate time.Time `json:"paid_date" binding:"required"`
	Notes    string    `json:"notes" binding:"max=1000"`
}

// parseYearQuery parses the optional year query parameter used to narrow a
// template's payment list to one calendar year.
func parseYearQuery(c *gin.Context) (*int, error) {
	v := c.Query("year")
	if v == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(v)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be an integer")
	}
	return &year, nil
}

// CreateBillTemplate handles the creation of a new bill template.
// @Summary     Create a bill template
// @Description Create a recurring bill definition for a property
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Property ID"
// @Param       request body CreateBillTemplateRequest true "Bill template details"
// @Success     201 {object} models.BillTemplate "Bill template created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/bill-templates [post]
func (h *BillHandler) CreateBillTemplate(c *gin.Context) {
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

	var req CreateBillTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	template, err := h.templateService.CreateTemplate(
		userID, propertyID, req.Name, req.Category, req.Frequency, req.PaymentDay,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BILL_TEMPLATE", "bill_template", template.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "category": req.Category, "frequency": req.Frequency})

	c.JSON(http.StatusCreated, gin.H{"template": template})
}

// GetBillTemplates handles listing the bill templates of a property.
// @Summary     Get bill templates
// @Description Get a paginated list of bill templates for a property, each with payment-history summary fields
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Property ID"
// @Param       is_active query bool   false "Filter by active status"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[services.TemplateSummary] "Paginated bill templates"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties/{id}/bill-templates [get]
func (h *BillHandler) GetBillTemplates(c *gin.Context) {
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

	var isActive *bool
	if v := c.Query("is_active"); v != "" {
		switch v {
		case "true":
			b := true
			isActive = &b
		case "false":
			b := false
			isActive = &b
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "is_active must be 'true' or 'false'"))
			return
		}
	}

	result, err := h.templateService.GetPropertyTemplates(userID, propertyID, page, isActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBillTemplate handles retrieving a bill template's full detail view.
// @Summary     Get bill template detail
// @Description Get a bill template with derived payment-history fields and its payment list, optionally narrowed to one year
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path  string true  "Bill template ID"
// @Param       year query int    false "Narrow the payment list to one calendar year"
// @Success     200 {object} services.TemplateDetail "Bill template detail"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bill-templates/{id} [get]
func (h *BillHandler) GetBillTemplate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := parseYearQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.templateService.GetTemplateDetail(userID, templateID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateBillTemplate handles updating an existing bill template.
// @Summary     Update bill template
// @Description Update a bill template's name, category, frequency, or payment day
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Bill template ID"
// @Param       request body UpdateBillTemplateRequest true "Updated bill template details"
// @Success     200 {object} models.BillTemplate "Updated bill template"
// @Failure     400 {object} ErrorResponse "Invalid input or template ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bill-templates/{id} [put]
func (h *BillHandler) UpdateBillTemplate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBillTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	template, err := h.templateService.UpdateTemplate(
		userID, templateID, req.Name, req.Category, req.Frequency, req.PaymentDay,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BILL_TEMPLATE", "bill_template", templateID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, gin.H{"template": template})
}

// ToggleBillTemplate handles flipping a bill template between active and paused.
// @Summary     Toggle bill template
// @Description Flip a bill template's active flag without touching its payment history
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bill template ID"
// @Success     200 {object} models.BillTemplate "Toggled bill template"
// @Failure     400 {object} ErrorResponse "Invalid template ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bill-templates/{id}/toggle [post]
func (h *BillHandler) ToggleBillTemplate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	template, err := h.templateService.ToggleTemplateActive(userID, templateID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "TOGGLE_BILL_TEMPLATE", "bill_template", templateID, c.ClientIP(),
		map[string]interface{}{"is_active": template.IsActive})

	c.JSON(http.StatusOK, gin.H{"template": template})
}

// DeleteBillTemplate handles deleting a bill template and its payment history.
// @Summary     Delete bill template
// @Description Delete a bill template together with every payment recorded against it
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bill template ID"
// @Success     200 {object} MessageResponse "Bill template deleted"
// @Failure     400 {object} ErrorResponse "Invalid template ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bill-templates/{id} [delete]
func (h *BillHandler) DeleteBillTemplate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.templateService.DeleteTemplate(userID, templateID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BILL_TEMPLATE", "bill_template", templateID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Bill template deleted successfully"})
}

// RecordPayment handles recording a payment against a bill template.
// @Summary     Record a payment
// @Description Record a payment against a bill template and return the refreshed template detail
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Bill template ID"
// @Param       request body RecordPaymentRequest true "Payment details"
// @Success     201 {object} services.TemplateDetail "Refreshed template detail"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bill-templates/{id}/payments [post]
func (h *BillHandler) RecordPayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	detail, err := h.paymentService.RecordPayment(userID, templateID, req.Amount, req.PaidDate, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "RECORD_BILL_PAYMENT", "bill_template", templateID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount, "paid_date": req.PaidDate})

	c.JSON(http.StatusCreated, detail)
}

// DeletePayment handles removing a payment from a bill template's history.
// @Summary     Delete a payment
// @Description Delete a payment from a bill template's history and return the refreshed template detail. If the year filter no longer matches any payment, the filter is cleared.
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Bill template ID"
// @Param       paymentID path  string true  "Payment ID"
// @Param       year      query int    false "Year filter currently applied by the caller"
// @Success     200 {object} services.TemplateDetail "Refreshed template detail"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill template or payment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bill-templates/{id}/payments/{paymentID} [delete]
func (h *BillHandler) DeletePayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	paymentID, err := parsePathID(c, "paymentID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := parseYearQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.paymentService.DeletePayment(userID, templateID, paymentID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BILL_PAYMENT", "bill_payment", paymentID, c.ClientIP(),
		map[string]interface{}{"template_id": templateID})

	c.JSON(http.StatusOK, detail)
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
}
