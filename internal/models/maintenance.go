package models

import "time"

// TaskStatus represents the lifecycle state of a maintenance task
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// IsValid reports whether s is a known task status.
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusDone
}

// MaintenanceTask represents a chore or repair tracked against a property.
// CompletedAt is set when the task transitions to done and cleared when it
// is reopened.
type MaintenanceTask struct {
	Base
	PropertyID  string     `gorm:"type:uuid;not null;index" json:"property_id"`
	Title       string     `gorm:"not null" json:"title"`
	Status      TaskStatus `gorm:"not null;default:'pending'" json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       string     `json:"notes"`
}
