package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
	"hestia/internal/pagination"
)

// roomService handles room-related business logic.
type roomService struct {
	db *gorm.DB
}

// NewRoomService creates a new RoomServicer.
func NewRoomService(db *gorm.DB) RoomServicer {
	return &roomService{db: db}
}

// findOwnedRoom loads a room and verifies, through its property, that it
// belongs to the user.
func findOwnedRoom(db *gorm.DB, userID, roomID string) (*models.Room, error) {
	var room models.Room
	if err := db.Where("id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := findOwnedProperty(db, userID, room.PropertyID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}

	return &room, nil
}

// checkRoomOnProperty verifies that a referenced room exists on the given
// property. A room on a different property is a mismatch, not a missing
// room.
func checkRoomOnProperty(db *gorm.DB, propertyID, roomID string) error {
	var room models.Room
	if err := db.Where("id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoomNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if room.PropertyID != propertyID {
		return apperrors.ErrRoomMismatch
	}
	return nil
}

// CreateRoom creates a room on a property. Floor may be negative for
// basements.
func (s *roomService) CreateRoom(userID, propertyID, name string, floor int, notes string) (*models.Room, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "room name is required")
	}

	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}

	room := &models.Room{
		PropertyID: propertyID,
		Name:       name,
		Floor:      floor,
		Notes:      notes,
	}

	if err := s.db.Create(room).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return room, nil
}

// GetPropertyRooms returns a paginated list of a property's rooms.
func (s *roomService) GetPropertyRooms(userID, propertyID string, page pagination.PageRequest) (*pagination.PageResponse[models.Room], error) {
	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}
	page.Defaults()

	base := s.db.Model(&models.Room{}).Where("property_id = ?", propertyID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rooms []models.Room
	if err := base.Order("floor ASC, name ASC").Scopes(pagination.Paginate(page)).Find(&rooms).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(rooms, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetRoomByID returns a room by ID if it belongs to the user.
func (s *roomService) GetRoomByID(userID, roomID string) (*models.Room, error) {
	return findOwnedRoom(s.db, userID, roomID)
}

// UpdateRoom updates an existing room's fields.
func (s *roomService) UpdateRoom(userID, roomID, name string, floor *int, notes string) (*models.Room, error) {
	room, err := findOwnedRoom(s.db, userID, roomID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if floor != nil {
		updates["floor"] = *floor
	}
	if notes != "" {
		updates["notes"] = notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(room).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return room, nil
}

// DeleteRoom removes a room. Assets and paint codes that pointed at the
// room stay on the property with their room reference cleared, all in one
// transaction.
func (s *roomService) DeleteRoom(userID, roomID string) error {
	room, err := findOwnedRoom(s.db, userID, roomID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Model(&models.Asset{}).Where("room_id = ?", room.ID).Update("room_id", nil).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if txErr := tx.Model(&models.PaintCode{}).Where("room_id = ?", room.ID).Update("room_id", nil).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if txErr := tx.Delete(room).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
}
