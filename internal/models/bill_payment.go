package models

import "time"

// BillPayment records a single payment made against a bill template.
// Amount is stored in cents. A payment never moves between templates;
// TemplateID is fixed at creation.
type BillPayment struct {
	Base
	TemplateID string    `gorm:"type:uuid;not null;index" json:"template_id"`
	Amount     int64     `gorm:"type:bigint;not null" json:"amount"`
	PaidDate   time.Time `gorm:"not null" json:"paid_date"`
	Notes      string    `json:"notes,omitempty"`
}
