package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
)

// paintCodeService tracks the paint brands, colors, and finishes used
// around a property so touch-ups match.
type paintCodeService struct {
	db *gorm.DB
}

// NewPaintCodeService creates a new PaintCodeServicer.
func NewPaintCodeService(db *gorm.DB) PaintCodeServicer {
	return &paintCodeService{db: db}
}

func findOwnedPaintCode(db *gorm.DB, userID, paintCodeID string) (*models.PaintCode, error) {
	var paint models.PaintCode
	if err := db.Where("id = ?", paintCodeID).First(&paint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaintNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := findOwnedProperty(db, userID, paint.PropertyID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrPaintNotFound
		}
		return nil, err
	}

	return &paint, nil
}

// CreatePaintCode records a paint color for a property, optionally tied to
// a room of the same property.
func (s *paintCodeService) CreatePaintCode(
	userID, propertyID string,
	roomID *string,
	brand, colorName, code string,
	finish models.PaintFinish,
	notes string,
) (*models.PaintCode, error) {
	if strings.TrimSpace(colorName) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "color name is required")
	}
	if finish == "" {
		finish = models.PaintFinishMatte
	}

	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}
	if roomID != nil {
		if err := checkRoomOnProperty(s.db, propertyID, *roomID); err != nil {
			return nil, err
		}
	}

	paint := &models.PaintCode{
		PropertyID: propertyID,
		RoomID:     roomID,
		Brand:      brand,
		ColorName:  colorName,
		Code:       code,
		Finish:     finish,
		Notes:      notes,
	}

	if err := s.db.Create(paint).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return paint, nil
}

// GetPropertyPaintCodes returns a paginated list of a property's paint codes.
func (s *paintCodeService) GetPropertyPaintCodes(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.PaintCode], error) {
	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}
	page.Defaults()

	base := s.db.Model(&models.PaintCode{}).Where("property_id = ?", propertyID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var paints []models.PaintCode
	if err := base.Preload("Room").Order("color_name ASC").Scopes(pagination.Paginate(page)).Find(&paints).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(paints, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPaintCodeByID returns a paint code by ID, with its room, if it
// belongs to the user.
func (s *paintCodeService) GetPaintCodeByID(userID, paintCodeID string) (*models.PaintCode, error) {
	var paint models.PaintCode
	if err := s.db.Preload("Room").Where("id = ?", paintCodeID).First(&paint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaintNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := findOwnedProperty(s.db, userID, paint.PropertyID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrPaintNotFound
		}
		return nil, err
	}

	return &paint, nil
}

// UpdatePaintCode applies a partial update. A pointer to the empty string
// clears the room reference; a non-empty room must be on the same
// property.
func (s *paintCodeService) UpdatePaintCode(
	userID, paintCodeID string,
	roomID *string,
	brand, colorName, code string,
	finish *models.PaintFinish,
	notes string,
) (*models.PaintCode, error) {
	paint, err := findOwnedPaintCode(s.db, userID, paintCodeID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if roomID != nil {
		if *roomID == "" {
			updates["room_id"] = nil
		} else {
			if err := checkRoomOnProperty(s.db, paint.PropertyID, *roomID); err != nil {
				return nil, err
			}
			updates["room_id"] = *roomID
		}
	}
	if brand != "" {
		updates["brand"] = brand
	}
	if colorName != "" {
		updates["color_name"] = colorName
	}
	if code != "" {
		updates["code"] = code
	}
	if finish != nil {
		updates["finish"] = *finish
	}
	if notes != "" {
		updates["notes"] = notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(paint).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return paint, nil
}

// DeletePaintCode soft-deletes a paint code.
func (s *paintCodeService) DeletePaintCode(userID, paintCodeID string) error {
	paint, err := findOwnedPaintCode(s.db, userID, paintCodeID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(paint).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
