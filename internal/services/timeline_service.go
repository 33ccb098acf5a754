package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "hestia/internal/errors"
	"hestia/internal/models"
)

// timelineService builds the property activity feed out of expenses and
// maintenance tasks.
type timelineService struct {
	db *gorm.DB
}

// NewTimelineService creates a new TimelineServicer.
func NewTimelineService(db *gorm.DB) TimelineServicer {
	return &timelineService{db: db}
}

// taskDate picks the date a task shows up under in the feed: when it was
// completed if done, else when it is due, else when it was created.
func taskDate(t models.MaintenanceTask) time.Time {
	switch {
	case t.CompletedAt != nil:
		return *t.CompletedAt
	case t.DueDate != nil:
		return *t.DueDate
	default:
		return t.CreatedAt
	}
}

// buildTimeline merges expenses and tasks into a date-grouped feed, most
// recent day first. Entries within a day order by kind then ID, so the
// output is deterministic for identical inputs.
func buildTimeline(expenses []models.Expense, tasks []models.MaintenanceTask) []TimelineDay {
	entries := make([]TimelineEntry, 0, len(expenses)+len(tasks))
	for _, e := range expenses {
		amount := e.Amount
		entries = append(entries, TimelineEntry{
			ID:     e.ID,
			Kind:   TimelineKindExpense,
			Date:   e.Date,
			Title:  e.Name,
			Amount: &amount,
		})
	}
	for _, t := range tasks {
		status := t.Status
		entries = append(entries, TimelineEntry{
			ID:     t.ID,
			Kind:   TimelineKindTask,
			Date:   taskDate(t),
			Title:  t.Title,
			Status: &status,
		})
	}

	byDay := make(map[string][]TimelineEntry)
	for _, entry := range entries {
		day := entry.Date.UTC().Format("2006-01-02")
		byDay[day] = append(byDay[day], entry)
	}

	days := make([]TimelineDay, 0, len(byDay))
	for day, dayEntries := range byDay {
		sort.Slice(dayEntries, func(i, j int) bool {
			if dayEntries[i].Kind != dayEntries[j].Kind {
				return dayEntries[i].Kind < dayEntries[j].Kind
			}
			return dayEntries[i].ID < dayEntries[j].ID
		})
		days = append(days, TimelineDay{Date: day, Entries: dayEntries})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })

	return days
}

// GetPropertyTimeline returns a property's merged activity feed with
// optional kind and task-status filters.
func (s *timelineService) GetPropertyTimeline(
	userID, propertyID string,
	kind *TimelineKind,
	status *models.TaskStatus,
) ([]TimelineDay, error) {
	if _, err := findOwnedProperty(s.db, userID, propertyID); err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if kind == nil || *kind == TimelineKindExpense {
		if err := s.db.Where("property_id = ?", propertyID).Find(&expenses).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	var tasks []models.MaintenanceTask
	if kind == nil || *kind == TimelineKindTask {
		q := s.db.Where("property_id = ?", propertyID)
		if status != nil {
			q = q.Where("status = ?", *status)
		}
		if err := q.Find(&tasks).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return buildTimeline(expenses, tasks), nil
}
