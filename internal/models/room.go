package models

// Room represents a room inside a property. Paint codes and assets may
// optionally reference the room they belong to.
type Room struct {
	Base
	PropertyID string `gorm:"type:uuid;not null;index" json:"property_id"`
	Name       string `gorm:"not null" json:"name"`
	Floor      int    `gorm:"default:0" json:"floor"`
	Notes      string `json:"notes"`
}
