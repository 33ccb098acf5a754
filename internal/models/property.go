package models

// PropertyType represents the kind of dwelling a property is
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeTownhouse PropertyType = "townhouse"
	PropertyTypeCottage   PropertyType = "cottage"
	PropertyTypeOther     PropertyType = "other"
)

// Property represents a household or building managed by a user.
// All other household records (rooms, assets, bills, expenses, tasks)
// hang off a property.
type Property struct {
	Base
	UserID  string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name    string       `gorm:"not null" json:"name"`
	Type    PropertyType `gorm:"not null;default:'house'" json:"type"`
	Address string       `json:"address"`
	Notes   string       `json:"notes"`

	// Relationships
	Rooms         []Room            `gorm:"foreignKey:PropertyID" json:"rooms,omitempty"`
	Assets        []Asset           `gorm:"foreignKey:PropertyID" json:"assets,omitempty"`
	Workers       []Worker          `gorm:"foreignKey:PropertyID" json:"workers,omitempty"`
	ShutoffPoints []ShutoffPoint    `gorm:"foreignKey:PropertyID" json:"shutoff_points,omitempty"`
	PaintCodes    []PaintCode       `gorm:"foreignKey:PropertyID" json:"paint_codes,omitempty"`
	Expenses      []Expense         `gorm:"foreignKey:PropertyID" json:"expenses,omitempty"`
	Tasks         []MaintenanceTask `gorm:"foreignKey:PropertyID" json:"tasks,omitempty"`
	BillTemplates []BillTemplate    `gorm:"foreignKey:PropertyID" json:"bill_templates,omitempty"`
}
