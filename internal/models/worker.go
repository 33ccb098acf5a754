package models

// Worker represents a contractor or service person associated with a property.
type Worker struct {
	Base
	PropertyID string `gorm:"type:uuid;not null;index" json:"property_id"`
	Name       string `gorm:"not null" json:"name"`
	Trade      string `json:"trade"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	HourlyRate *int64 `gorm:"type:bigint" json:"hourly_rate,omitempty"`
	Notes      string `json:"notes"`
}
