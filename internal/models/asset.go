package models

import "time"

// AssetCategory represents the kind of household asset
type AssetCategory string

const (
	AssetCategoryAppliance  AssetCategory = "appliance"
	AssetCategoryHVAC       AssetCategory = "hvac"
	AssetCategoryPlumbing   AssetCategory = "plumbing"
	AssetCategoryElectrical AssetCategory = "electrical"
	AssetCategoryFurniture  AssetCategory = "furniture"
	AssetCategoryStructure  AssetCategory = "structure"
	AssetCategoryOther      AssetCategory = "other"
)

// Asset represents a tracked item in a property (water heater, fridge, ...).
// The room reference is optional: not every asset lives in a single room.
type Asset struct {
	Base
	PropertyID    string        `gorm:"type:uuid;not null;index" json:"property_id"`
	RoomID        *string       `gorm:"type:uuid" json:"room_id,omitempty"`
	Name          string        `gorm:"not null" json:"name"`
	Category      AssetCategory `gorm:"not null;default:'other'" json:"category"`
	PurchaseDate  *time.Time    `json:"purchase_date,omitempty"`
	PurchasePrice *int64        `gorm:"type:bigint" json:"purchase_price,omitempty"`
	SerialNumber  string        `json:"serial_number"`
	Notes         string        `json:"notes"`

	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
