package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
)

// billTemplateService handles recurring bill template business logic.
type billTemplateService struct {
	db *gorm.DB
}

// NewBillTemplateService creates a new BillTemplateServicer.
func NewBillTemplateService(db *gorm.DB) BillTemplateServicer {
	return &billTemplateService{db: db}
}

// findOwnedTemplate loads a template and verifies, through its property,
// that it belongs to the user. A template on another user's property is
// reported as not found rather than forbidden.
func findOwnedTemplate(db *gorm.DB, userID, templateID string) (*models.BillTemplate, error) {
	var template models.BillTemplate
	if err := db.Where("id = ?", templateID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var property models.Property
	if err := db.Where("id = ? AND user_id = ?", template.PropertyID, userID).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &template, nil
}

// loadTemplateHistory returns a template's full payment history ordered
// most recent first (paid_date, then id, both descending).
func loadTemplateHistory(db *gorm.DB, templateID string) ([]models.BillPayment, error) {
	var history []models.BillPayment
	if err := db.Where("template_id = ?", templateID).
		Order("paid_date DESC, id DESC").
		Find(&history).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return history, nil
}

// assembleTemplateDetail builds the client view of a template from an
// already-loaded history. Derived fields and the year list always cover
// the full history; Payments and TotalPaid honor the year filter.
func assembleTemplateDetail(template *models.BillTemplate, history []models.BillPayment, year *int) *TemplateDetail {
	derived := computeDerived(history)
	filtered := filterByYear(history, year)
	if filtered == nil {
		filtered = []models.BillPayment{}
	}

	return &TemplateDetail{
		Template:          *template,
		PaymentCount:      derived.count,
		LastPaymentDate:   derived.lastDate,
		LastPaymentAmount: derived.lastAmount,
		Years:             extractYears(history),
		SelectedYear:      year,
		Payments:          filtered,
		TotalPaid:         sumAmounts(filtered),
	}
}

// buildTemplateDetail reads the template's history fresh and assembles the
// detail view. Mutation paths call this after committing, so a response
// never carries aggregates from a stale snapshot.
func buildTemplateDetail(db *gorm.DB, template *models.BillTemplate, year *int) (*TemplateDetail, error) {
	history, err := loadTemplateHistory(db, template.ID)
	if err != nil {
		return nil, err
	}
	return assembleTemplateDetail(template, history, year), nil
}

// CreateTemplate creates a recurring bill template for a property. New
// templates start active.
func (s *billTemplateService) CreateTemplate(
	userID, propertyID, name string,
	category models.BillCategory,
	frequency models.BillFrequency,
	paymentDay *models.PaymentDay,
) (*models.BillTemplate, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "template name is required")
	}
	if !category.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown bill category")
	}
	if !frequency.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown bill frequency")
	}
	if paymentDay != nil && !paymentDay.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown payment day")
	}

	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}

	template := &models.BillTemplate{
		PropertyID: propertyID,
		Name:       name,
		Category:   category,
		Frequency:  frequency,
		PaymentDay: paymentDay,
		IsActive:   true,
	}

	if err := s.db.Create(template).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return template, nil
}

// GetPropertyTemplates returns a paginated list of a property's templates
// in insertion order, each with fields derived from its payment history.
func (s *billTemplateService) GetPropertyTemplates(
	userID, propertyID string,
	page pagination.PageRequest,
	isActive *bool,
) (*pagination.PageResponse[TemplateSummary], error) {
	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}
	page.Defaults()

	base := s.db.Model(&models.BillTemplate{}).Where("property_id = ?", propertyID)
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var templates []models.BillTemplate
	if err := base.Order("created_at ASC, id ASC").Scopes(pagination.Paginate(page)).Find(&templates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summaries, err := s.summarize(templates)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResponse(summaries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// summarize attaches derived payment fields to a page of templates using a
// single batched history read.
func (s *billTemplateService) summarize(templates []models.BillTemplate) ([]TemplateSummary, error) {
	summaries := make([]TemplateSummary, 0, len(templates))
	if len(templates) == 0 {
		return summaries, nil
	}

	ids := make([]string, len(templates))
	for i, t := range templates {
		ids[i] = t.ID
	}

	var payments []models.BillPayment
	if err := s.db.Where("template_id IN ?", ids).Find(&payments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byTemplate := make(map[string][]models.BillPayment, len(templates))
	for _, p := range payments {
		byTemplate[p.TemplateID] = append(byTemplate[p.TemplateID], p)
	}

	for _, t := range templates {
		derived := computeDerived(byTemplate[t.ID])
		summaries = append(summaries, TemplateSummary{
			Template:          t,
			PaymentCount:      derived.count,
			LastPaymentDate:   derived.lastDate,
			LastPaymentAmount: derived.lastAmount,
		})
	}

	return summaries, nil
}

// GetTemplateByID returns a template by ID if it belongs to the user.
func (s *billTemplateService) GetTemplateByID(userID, templateID string) (*models.BillTemplate, error) {
	return findOwnedTemplate(s.db, userID, templateID)
}

// GetTemplateDetail returns the full template view with its payment history
// narrowed to the given calendar year. A nil year means the whole history.
func (s *billTemplateService) GetTemplateDetail(userID, templateID string, year *int) (*TemplateDetail, error) {
	template, err := findOwnedTemplate(s.db, userID, templateID)
	if err != nil {
		return nil, err
	}
	return buildTemplateDetail(s.db, template, year)
}

// UpdateTemplate applies a partial update to a template. The property a
// template belongs to is fixed at creation and is not an updatable field.
// A pointer to the empty string clears the payment day.
func (s *billTemplateService) UpdateTemplate(
	userID, templateID, name string,
	category *models.BillCategory,
	frequency *models.BillFrequency,
	paymentDay *models.PaymentDay,
) (*models.BillTemplate, error) {
	template, err := findOwnedTemplate(s.db, userID, templateID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		if strings.TrimSpace(name) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "template name cannot be blank")
		}
		updates["name"] = name
	}
	if category != nil {
		if !category.IsValid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown bill category")
		}
		updates["category"] = *category
	}
	if frequency != nil {
		if !frequency.IsValid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown bill frequency")
		}
		updates["frequency"] = *frequency
	}
	if paymentDay != nil {
		switch {
		case *paymentDay == "":
			updates["payment_day"] = nil
		case paymentDay.IsValid():
			updates["payment_day"] = *paymentDay
		default:
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown payment day")
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(template).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return template, nil
}

// ToggleTemplateActive flips a template's active flag. Toggling twice
// restores the original value; the payment history is never touched.
func (s *billTemplateService) ToggleTemplateActive(userID, templateID string) (*models.BillTemplate, error) {
	template, err := findOwnedTemplate(s.db, userID, templateID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(template).Update("is_active", !template.IsActive).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return template, nil
}

// DeleteTemplate removes a template together with its entire payment
// history in one transaction. History goes first; if that fails the
// transaction rolls back and the template survives untouched.
func (s *billTemplateService) DeleteTemplate(userID, templateID string) error {
	template, err := findOwnedTemplate(s.db, userID, templateID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Where("template_id = ?", template.ID).Delete(&models.BillPayment{}).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if txErr := tx.Delete(template).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
}
