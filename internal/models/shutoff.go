package models

// UtilityType represents the utility a shutoff point controls
type UtilityType string

const (
	UtilityWater       UtilityType = "water"
	UtilityGas         UtilityType = "gas"
	UtilityElectricity UtilityType = "electricity"
)

// ShutoffPoint records where a property's emergency shutoff for a utility
// is located, so it can be found quickly when something leaks or sparks.
type ShutoffPoint struct {
	Base
	PropertyID string      `gorm:"type:uuid;not null;index" json:"property_id"`
	Utility    UtilityType `gorm:"not null" json:"utility"`
	Location   string      `gorm:"not null" json:"location"`
	Notes      string      `json:"notes"`
}
