package models

// PaintFinish represents the sheen of a paint
type PaintFinish string

const (
	PaintFinishFlat      PaintFinish = "flat"
	PaintFinishMatte     PaintFinish = "matte"
	PaintFinishEggshell  PaintFinish = "eggshell"
	PaintFinishSatin     PaintFinish = "satin"
	PaintFinishSemiGloss PaintFinish = "semi_gloss"
	PaintFinishGloss     PaintFinish = "gloss"
)

// PaintCode records the exact paint used somewhere in a property so
// touch-ups can be matched years later.
type PaintCode struct {
	Base
	PropertyID string      `gorm:"type:uuid;not null;index" json:"property_id"`
	RoomID     *string     `gorm:"type:uuid" json:"room_id,omitempty"`
	Brand      string      `json:"brand"`
	ColorName  string      `gorm:"not null" json:"color_name"`
	Code       string      `json:"code"`
	Finish     PaintFinish `gorm:"not null;default:'matte'" json:"finish"`
	Notes      string      `json:"notes"`

	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
