package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
)

// assetService handles asset-related business logic.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

func findOwnedAsset(db *gorm.DB, userID, assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := db.Where("id = ?", assetID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := findOwnedProperty(db, userID, asset.PropertyID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, err
	}

	return &asset, nil
}

// CreateAsset creates an asset on a property, optionally placed in a room
// of the same property.
func (s *assetService) CreateAsset(
	userID, propertyID string,
	roomID *string,
	name string,
	category models.AssetCategory,
	purchaseDate *time.Time,
	purchasePrice *int64,
	serialNumber, notes string,
) (*models.Asset, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "asset name is required")
	}
	if purchasePrice != nil && *purchasePrice < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase price cannot be negative")
	}
	if category == "" {
		category = models.AssetCategoryOther
	}

	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}
	if roomID != nil {
		if err := checkRoomOnProperty(s.db, propertyID, *roomID); err != nil {
			return nil, err
		}
	}

	asset := &models.Asset{
		PropertyID:    propertyID,
		RoomID:        roomID,
		Name:          name,
		Category:      category,
		PurchaseDate:  purchaseDate,
		PurchasePrice: purchasePrice,
		SerialNumber:  serialNumber,
		Notes:         notes,
	}

	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return asset, nil
}

// GetPropertyAssets returns a paginated list of a property's assets.
func (s *assetService) GetPropertyAssets(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}
	page.Defaults()

	base := s.db.Model(&models.Asset{}).Where("property_id = ?", propertyID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assets []models.Asset
	if err := base.Preload("Room").Order("name ASC").Scopes(pagination.Paginate(page)).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(assets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAssetByID returns an asset by ID, with its room, if it belongs to
// the user.
func (s *assetService) GetAssetByID(userID, assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Preload("Room").Where("id = ?", assetID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := findOwnedProperty(s.db, userID, asset.PropertyID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, err
	}

	return &asset, nil
}

// UpdateAsset applies a partial update. A pointer to the empty string
// clears the room reference; a non-empty room must be on the same
// property.
func (s *assetService) UpdateAsset(
	userID, assetID string,
	roomID *string,
	name string,
	category *models.AssetCategory,
	purchaseDate *time.Time,
	purchasePrice *int64,
	serialNumber, notes string,
) (*models.Asset, error) {
	asset, err := findOwnedAsset(s.db, userID, assetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if roomID != nil {
		if *roomID == "" {
			updates["room_id"] = nil
		} else {
			if err := checkRoomOnProperty(s.db, asset.PropertyID, *roomID); err != nil {
				return nil, err
			}
			updates["room_id"] = *roomID
		}
	}
	if name != "" {
		updates["name"] = name
	}
	if category != nil {
		updates["category"] = *category
	}
	if purchaseDate != nil {
		updates["purchase_date"] = purchaseDate
	}
	if purchasePrice != nil {
		if *purchasePrice < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase price cannot be negative")
		}
		updates["purchase_price"] = *purchasePrice
	}
	if serialNumber != "" {
		updates["serial_number"] = serialNumber
	}
	if notes != "" {
		updates["notes"] = notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(asset).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return asset, nil
}

// DeleteAsset soft-deletes an asset.
func (s *assetService) DeleteAsset(userID, assetID string) error {
	asset, err := findOwnedAsset(s.db, userID, assetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(asset).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
