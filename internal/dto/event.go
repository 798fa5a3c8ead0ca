package dto

import (
	"github.com/google/uuid"

	"ejderhub-api/internal/domain"
)

// CreateEventRequest is the payload for creating a calendar entry. Task-typed
// entries are routed to the task service, so the mirrored task fields are
// accepted here too.
type CreateEventRequest struct {
	Title        string           `json:"title" binding:"required"`
	Date         string           `json:"date"`
	Type         domain.EventType `json:"type" binding:"required"`
	Description  string           `json:"description"`
	Content      string           `json:"content"`
	Tags         []string         `json:"tags"`
	StartTime    string           `json:"startTime"`
	EndTime      string           `json:"endTime"`
	Location     string           `json:"location"`
	Participants []string         `json:"participants"`
	Priority     domain.Priority  `json:"priority"`
	Reminder     string           `json:"reminder"`
	ProjectID    *uuid.UUID       `json:"projectId"`
	IdeaID       *uuid.UUID       `json:"ideaId"`
	Files        []string         `json:"files"`

	AssigneeID     *uuid.UUID        `json:"assigneeId"`
	Status         domain.TaskStatus `json:"status"`
	ReporterID     *uuid.UUID        `json:"reporterId"`
	Category       string            `json:"category"`
	EstimatedHours float64           `json:"estimatedHours"`
	SpentHours     float64           `json:"spentHours"`
	StartDate      string            `json:"startDate"`
	EndDate        string            `json:"endDate"`
	Dependencies   []string          `json:"dependencies"`
	Progress       *int              `json:"progress"`
	Notes          string            `json:"notes"`
}

// UpdateEventRequest is the payload for a partial calendar entry update
type UpdateEventRequest struct {
	Title        *string          `json:"title"`
	Date         *string          `json:"date"`
	Description  *string          `json:"description"`
	Content      *string          `json:"content"`
	Tags         *[]string        `json:"tags"`
	StartTime    *string          `json:"startTime"`
	EndTime      *string          `json:"endTime"`
	Location     *string          `json:"location"`
	Participants *[]string        `json:"participants"`
	Priority     *domain.Priority `json:"priority"`
	Reminder     *string          `json:"reminder"`
	ProjectID    *uuid.UUID       `json:"projectId"`
	IdeaID       *uuid.UUID       `json:"ideaId"`
	Files        *[]string        `json:"files"`

	AssigneeID     *uuid.UUID         `json:"assigneeId"`
	Status         *domain.TaskStatus `json:"status"`
	ReporterID     *uuid.UUID         `json:"reporterId"`
	Category       *string            `json:"category"`
	EstimatedHours *float64           `json:"estimatedHours"`
	SpentHours     *float64           `json:"spentHours"`
	StartDate      *string            `json:"startDate"`
	EndDate        *string            `json:"endDate"`
	CompletionDate *string            `json:"completionDate"`
	Dependencies   *[]string          `json:"dependencies"`
	Progress       *int               `json:"progress"`
	Notes          *string            `json:"notes"`
}

// RsvpRequest is the acting user's reply to a meeting invitation
type RsvpRequest struct {
	Status domain.RsvpStatus `json:"status" binding:"required"`
}
