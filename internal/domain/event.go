package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventType discriminates calendar entries
type EventType string

const (
	EventTypeAppointment EventType = "Appointment"
	EventTypeTask        EventType = "Task"
	EventTypeMeeting     EventType = "Meeting"
	EventTypeEvent       EventType = "Event"
	EventTypeNote        EventType = "Note"
)

// RsvpStatus is a meeting participant's reply
type RsvpStatus string

const (
	RsvpAccepted RsvpStatus = "Accepted"
	RsvpDeclined RsvpStatus = "Declined"
	RsvpPending  RsvpStatus = "Pending"
)

// Event represents a calendar entry. Task-typed entries are never persisted
// here; they are projected from the tasks table so the two views cannot
// drift apart. Meeting-typed entries carry participants and their RSVP map.
type Event struct {
	BaseModel
	Title        string                                    `gorm:"type:varchar(255);not null" json:"title"`
	Date         string                                    `gorm:"type:varchar(10);not null;index:idx_events_date" json:"date"`
	Type         EventType                                 `gorm:"type:varchar(50);not null;index:idx_events_type" json:"type"`
	Description  string                                    `gorm:"type:text" json:"description,omitempty"`
	Content      string                                    `gorm:"type:text" json:"content,omitempty"`
	Tags         datatypes.JSONSlice[string]               `json:"tags,omitempty"`
	StartTime    string                                    `gorm:"type:varchar(5)" json:"startTime,omitempty"`
	EndTime      string                                    `gorm:"type:varchar(5)" json:"endTime,omitempty"`
	Location     string                                    `gorm:"type:varchar(255)" json:"location,omitempty"`
	Participants datatypes.JSONSlice[string]               `json:"participants,omitempty"`
	Rsvp         datatypes.JSONType[map[string]RsvpStatus] `json:"rsvp,omitempty"`
	Priority     Priority                                  `gorm:"type:varchar(50)" json:"priority,omitempty"`
	Reminder     string                                    `gorm:"type:varchar(50)" json:"reminder,omitempty"`
	ProjectID    *uuid.UUID                                `gorm:"type:uuid;index:idx_events_project_id" json:"projectId,omitempty"`
	Project      *Project                                  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	IdeaID       *uuid.UUID                                `gorm:"type:uuid;index:idx_events_idea_id" json:"ideaId,omitempty"`
	Idea         *Idea                                     `gorm:"foreignKey:IdeaID" json:"idea,omitempty"`
	Files        datatypes.JSONSlice[string]               `json:"files,omitempty"`

	// Mirrored task fields, populated only on the projected task entries
	AssigneeID     *uuid.UUID                  `gorm:"type:uuid" json:"assigneeId,omitempty"`
	Status         TaskStatus                  `gorm:"type:varchar(50)" json:"status,omitempty"`
	ReporterID     *uuid.UUID                  `gorm:"type:uuid" json:"reporterId,omitempty"`
	Category       string                      `gorm:"type:varchar(100)" json:"category,omitempty"`
	EstimatedHours float64                     `json:"estimatedHours,omitempty"`
	SpentHours     float64                     `json:"spentHours,omitempty"`
	StartDate      string                      `gorm:"type:varchar(10)" json:"startDate,omitempty"`
	EndDate        string                      `gorm:"type:varchar(10)" json:"endDate,omitempty"`
	CompletionDate string                      `gorm:"type:varchar(10)" json:"completionDate,omitempty"`
	Dependencies   datatypes.JSONSlice[string] `json:"dependencies,omitempty"`
	Progress       int                         `json:"progress,omitempty"`
	Notes          string                      `gorm:"type:text" json:"notes,omitempty"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// TaskCalendarEntry projects a task onto the calendar wire shape. The entry
// shares the task's id, which is what keeps the two views field-equal.
func TaskCalendarEntry(t *Task) *Event {
	e := &Event{
		BaseModel:      BaseModel{ID: t.ID, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt},
		Title:          t.Title,
		Date:           t.StartDate,
		Type:           EventTypeTask,
		Description:    t.Description,
		Tags:           t.Tags,
		Priority:       t.Priority,
		ProjectID:      t.ProjectID,
		Files:          t.Files,
		AssigneeID:     t.AssigneeID,
		Status:         t.Status,
		ReporterID:     t.ReporterID,
		Category:       t.Category,
		EstimatedHours: t.EstimatedHours,
		SpentHours:     t.SpentHours,
		StartDate:      t.StartDate,
		EndDate:        t.EndDate,
		CompletionDate: t.CompletionDate,
		Dependencies:   t.Dependencies,
		Progress:       t.Progress,
		Notes:          t.Notes,
	}
	if e.Date == "" {
		e.Date = t.EndDate
	}
	return e
}
