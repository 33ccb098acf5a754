package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
)

// workerService handles the contact book of tradespeople per property.
type workerService struct {
	db *gorm.DB
}

// NewWorkerService creates a new WorkerServicer.
func NewWorkerService(db *gorm.DB) WorkerServicer {
	return &workerService{db: db}
}

func findOwnedWorker(db *gorm.DB, userID, workerID string) (*models.Worker, error) {
	var worker models.Worker
	if err := db.Where("id = ?", workerID).First(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := findOwnedProperty(db, userID, worker.PropertyID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, err
	}

	return &worker, nil
}

// CreateWorker records a tradesperson for a property.
func (s *workerService) CreateWorker(
	userID, propertyID, name, trade, phone, email string,
	hourlyRate *int64,
	notes string,
) (*models.Worker, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "worker name is required")
	}
	if hourlyRate != nil && *hourlyRate < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "hourly rate cannot be negative")
	}

	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}

	worker := &models.Worker{
		PropertyID: propertyID,
		Name:       name,
		Trade:      trade,
		Phone:      phone,
		Email:      email,
		HourlyRate: hourlyRate,
		Notes:      notes,
	}

	if err := s.db.Create(worker).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return worker, nil
}

// GetPropertyWorkers returns a paginated list of a property's workers.
func (s *workerService) GetPropertyWorkers(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.Worker], error) {
	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}
	page.Defaults()

	base := s.db.Model(&models.Worker{}).Where("property_id = ?", propertyID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var workers []models.Worker
	if err := base.Order("name ASC").Scopes(pagination.Paginate(page)).Find(&workers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(workers, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetWorkerByID returns a worker by ID if it belongs to the user.
func (s *workerService) GetWorkerByID(userID, workerID string) (*models.Worker, error) {
	return findOwnedWorker(s.db, userID, workerID)
}

// UpdateWorker updates an existing worker's fields.
func (s *workerService) UpdateWorker(
	userID, workerID, name, trade, phone, email string,
	hourlyRate *int64,
	notes string,
) (*models.Worker, error) {
	worker, err := findOwnedWorker(s.db, userID, workerID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if trade != "" {
		updates["trade"] = trade
	}
	if phone != "" {
		updates["phone"] = phone
	}
	if email != "" {
		updates["email"] = email
	}
	if hourlyRate != nil {
		if *hourlyRate < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "hourly rate cannot be negative")
		}
		updates["hourly_rate"] = *hourlyRate
	}
	if notes != "" {
		updates["notes"] = notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(worker).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return worker, nil
}

// DeleteWorker soft-deletes a worker.
func (s *workerService) DeleteWorker(userID, workerID string) error {
	worker, err := findOwnedWorker(s.db, userID, workerID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(worker).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
