package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
)

// propertyService handles property-related business logic.
type propertyService struct {
	db *gorm.DB
}

// NewPropertyService creates a new PropertyServicer.
func NewPropertyService(db *gorm.DB) PropertyServicer {
	return &propertyService{db: db}
}

// findOwnedProperty loads a property if it belongs to the user. Property
// records under other users are reported as not found.
func findOwnedProperty(db *gorm.DB, userID, propertyID string) (*models.Property, error) {
	var property models.Property
	if err := db.Where("id = ? AND user_id = ?", propertyID, userID).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &property, nil
}

// CreateProperty creates a new property for the user.
func (s *propertyService) CreateProperty(
	userID, name string,
	propertyType models.PropertyType,
	address, notes string,
) (*models.Property, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "property name is required")
	}
	if propertyType == "" {
		propertyType = models.PropertyTypeHouse
	}

	property := &models.Property{
		UserID:  userID,
		Name:    name,
		Type:    propertyType,
		Address: address,
		Notes:   notes,
	}

	if err := s.db.Create(property).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return property, nil
}

// GetUserProperties returns a paginated list of the user's properties.
func (s *propertyService) GetUserProperties(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Property], error) {
	page.Defaults()

	base := s.db.Model(&models.Property{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var properties []models.Property
	if err := base.Order("created_at ASC, id ASC").Scopes(pagination.Paginate(page)).Find(&properties).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(properties, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPropertyByID returns a property by ID if it belongs to the user.
func (s *propertyService) GetPropertyByID(userID, propertyID string) (*models.Property, error) {
	return findOwnedProperty(s.db, userID, propertyID)
}

// UpdateProperty updates an existing property's fields.
func (s *propertyService) UpdateProperty(
	userID, propertyID, name string,
	propertyType *models.PropertyType,
	address, notes string,
) (*models.Property, error) {
	property, err := findOwnedProperty(s.db, userID, propertyID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if propertyType != nil {
		updates["type"] = *propertyType
	}
	if address != "" {
		updates["address"] = address
	}
	if notes != "" {
		updates["notes"] = notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(property).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return property, nil
}

// DeleteProperty removes a property and everything recorded under it:
// rooms, assets, workers, shutoff points, paint codes, expenses,
// maintenance tasks, and bill templates with their payments. All of it
// runs in one transaction; if any step fails the property and its
// records survive untouched.
func (s *propertyService) DeleteProperty(userID, propertyID string) error {
	property, err := findOwnedProperty(s.db, userID, propertyID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Payments hang off templates, not the property, so they go first
		// via a subquery on the property's templates.
		templateIDs := tx.Model(&models.BillTemplate{}).Select("id").Where("property_id = ?", property.ID)
		if txErr := tx.Where("template_id IN (?)", templateIDs).Delete(&models.BillPayment{}).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		for _, model := range []interface{}{
			&models.BillTemplate{},
			&models.Expense{},
			&models.MaintenanceTask{},
			&models.PaintCode{},
			&models.ShutoffPoint{},
			&models.Worker{},
			&models.Asset{},
			&models.Room{},
		} {
			if txErr := tx.Where("property_id = ?", property.ID).Delete(model).Error; txErr != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
			}
		}

		if txErr := tx.Delete(property).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
}
