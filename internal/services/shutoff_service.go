package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
)

// shutoffService tracks where a property's utility shutoff valves and
// breakers are, the thing nobody remembers in an emergency.
type shutoffService struct {
	db *gorm.DB
}

// NewShutoffService creates a new ShutoffServicer.
func NewShutoffService(db *gorm.DB) ShutoffServicer {
	return &shutoffService{db: db}
}

func findOwnedShutoff(db *gorm.DB, userID, shutoffID string) (*models.ShutoffPoint, error) {
	var shutoff models.ShutoffPoint
	if err := db.Where("id = ?", shutoffID).First(&shutoff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShutoffNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := findOwnedProperty(db, userID, shutoff.PropertyID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrShutoffNotFound
		}
		return nil, err
	}

	return &shutoff, nil
}

// CreateShutoff records a utility shutoff location for a property.
func (s *shutoffService) CreateShutoff(
	userID, propertyID string,
	utility models.UtilityType,
	location, notes string,
) (*models.ShutoffPoint, error) {
	if strings.TrimSpace(location) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "shutoff location is required")
	}

	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}

	shutoff := &models.ShutoffPoint{
		PropertyID: propertyID,
		Utility:    utility,
		Location:   location,
		Notes:      notes,
	}

	if err := s.db.Create(shutoff).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return shutoff, nil
}

// GetPropertyShutoffs returns a paginated list of a property's shutoff points.
func (s *shutoffService) GetPropertyShutoffs(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.ShutoffPoint], error) {
	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}
	page.Defaults()

	base := s.db.Model(&models.ShutoffPoint{}).Where("property_id = ?", propertyID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var shutoffs []models.ShutoffPoint
	if err := base.Order("utility ASC, location ASC").Scopes(pagination.Paginate(page)).Find(&shutoffs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(shutoffs, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetShutoffByID returns a shutoff point by ID if it belongs to the user.
func (s *shutoffService) GetShutoffByID(userID, shutoffID string) (*models.ShutoffPoint, error) {
	return findOwnedShutoff(s.db, userID, shutoffID)
}

// UpdateShutoff updates an existing shutoff point's fields.
func (s *shutoffService) UpdateShutoff(
	userID, shutoffID string,
	utility *models.UtilityType,
	location, notes string,
) (*models.ShutoffPoint, error) {
	shutoff, err := findOwnedShutoff(s.db, userID, shutoffID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if utility != nil {
		updates["utility"] = *utility
	}
	if location != "" {
		updates["location"] = location
	}
	if notes != "" {
		updates["notes"] = notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(shutoff).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return shutoff, nil
}

// DeleteShutoff soft-deletes a shutoff point.
func (s *shutoffService) DeleteShutoff(userID, shutoffID string) error {
	shutoff, err := findOwnedShutoff(s.db, userID, shutoffID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(shutoff).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
