package models

// BillCategory represents the kind of recurring bill a template tracks
type BillCategory string

const (
	BillCategoryElectricity BillCategory = "electricity"
	BillCategoryWater       BillCategory = "water"
	BillCategoryGas         BillCategory = "gas"
	BillCategoryInternet    BillCategory = "internet"
	BillCategoryTrash       BillCategory = "trash"
	BillCategoryRent        BillCategory = "rent"
	BillCategoryMortgage    BillCategory = "mortgage"
	BillCategoryInsurance   BillCategory = "insurance"
	BillCategoryOther       BillCategory = "other"
)

// IsValid reports whether c is a known bill category.
func (c BillCategory) IsValid() bool {
	switch c {
	case BillCategoryElectricity, BillCategoryWater, BillCategoryGas,
		BillCategoryInternet, BillCategoryTrash, BillCategoryRent,
		BillCategoryMortgage, BillCategoryInsurance, BillCategoryOther:
		return true
	}
	return false
}

// BillFrequency represents how often a recurring bill comes due
type BillFrequency string

const (
	FrequencyWeekly    BillFrequency = "weekly"
	FrequencyBiweekly  BillFrequency = "biweekly"
	FrequencyMonthly   BillFrequency = "monthly"
	FrequencyQuarterly BillFrequency = "quarterly"
	FrequencyYearly    BillFrequency = "yearly"
)

// IsValid reports whether f is a known bill frequency.
func (f BillFrequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly,
		FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// PaymentDay is an advisory hint for when in the cycle a bill is usually
// paid. It is never validated against actual payment dates.
type PaymentDay string

const (
	PaymentDay1st        PaymentDay = "1st"
	PaymentDay5th        PaymentDay = "5th"
	PaymentDay10th       PaymentDay = "10th"
	PaymentDay15th       PaymentDay = "15th"
	PaymentDay20th       PaymentDay = "20th"
	PaymentDay25th       PaymentDay = "25th"
	PaymentDayEndOfMonth PaymentDay = "end_of_month"
)

// IsValid reports whether d is a known payment day.
func (d PaymentDay) IsValid() bool {
	switch d {
	case PaymentDay1st, PaymentDay5th, PaymentDay10th, PaymentDay15th,
		PaymentDay20th, PaymentDay25th, PaymentDayEndOfMonth:
		return true
	}
	return false
}

// BillTemplate represents a recurring bill definition for a property,
// independent of any specific payment. Payment count and last-payment
// fields are derived from the payment history at read time, never stored.
//
// Inactive templates are retained and keep their history; they are only
// excluded from active counts. Deleting a template removes its entire
// payment history in the same transaction.
type BillTemplate struct {
	Base
	PropertyID string        `gorm:"type:uuid;not null;index" json:"property_id"`
	Name       string        `gorm:"not null" json:"name"`
	Category   BillCategory  `gorm:"not null" json:"category"`
	Frequency  BillFrequency `gorm:"not null" json:"frequency"`
	PaymentDay *PaymentDay   `json:"payment_day,omitempty"`
	IsActive   bool          `gorm:"default:true" json:"is_active"`

	Payments []BillPayment `gorm:"foreignKey:TemplateID" json:"payments,omitempty"`
}
