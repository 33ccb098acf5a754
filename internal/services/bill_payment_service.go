package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
)

// billPaymentService handles payments recorded against bill templates.
// Payments are add/delete only; there is no update.
type billPaymentService struct {
	db *gorm.DB
}

// NewBillPaymentService creates a new BillPaymentServicer.
func NewBillPaymentService(db *gorm.DB) BillPaymentServicer {
	return &billPaymentService{db: db}
}

// RecordPayment appends a payment to a template's history and returns the
// refreshed detail view over the full history. Inactive templates accept
// payments like active ones. On a validation failure nothing is written.
func (s *billPaymentService) RecordPayment(
	userID, templateID string,
	amount int64,
	paidDate time.Time,
	notes string,
) (*TemplateDetail, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment amount must be greater than zero")
	}
	if paidDate.After(time.Now()) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment date cannot be in the future")
	}

	template, err := findOwnedTemplate(s.db, userID, templateID)
	if err != nil {
		return nil, err
	}

	payment := &models.BillPayment{
		TemplateID: template.ID,
		Amount:     amount,
		PaidDate:   paidDate,
		Notes:      notes,
	}
	if err := s.db.Create(payment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return buildTemplateDetail(s.db, template, nil)
}

// DeletePayment removes one payment from a template's history and returns
// the refreshed detail view under the caller's year filter. When the
// deletion leaves the selected year with no payments the filter falls back
// to the full history, so the caller is never stranded on an empty view.
func (s *billPaymentService) DeletePayment(
	userID, templateID, paymentID string,
	selectedYear *int,
) (*TemplateDetail, error) {
	template, err := findOwnedTemplate(s.db, userID, templateID)
	if err != nil {
		return nil, err
	}

	var payment models.BillPayment
	if err := s.db.Where("id = ? AND template_id = ?", paymentID, template.ID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&payment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	history, err := loadTemplateHistory(s.db, template.ID)
	if err != nil {
		return nil, err
	}

	year := selectedYear
	if year != nil && len(filterByYear(history, year)) == 0 {
		year = nil
	}

	return assembleTemplateDetail(template, history, year), nil
}
