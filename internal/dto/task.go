package dto

import (
	"github.com/google/uuid"

	"ejderhub-api/internal/domain"
)

// CreateTaskRequest is the payload for creating a task
type CreateTaskRequest struct {
	Title          string            `json:"title" binding:"required"`
	Description    string            `json:"description"`
	Status         domain.TaskStatus `json:"status"`
	Priority       domain.Priority   `json:"priority"`
	AssigneeID     *uuid.UUID        `json:"assigneeId"`
	ReporterID     *uuid.UUID        `json:"reporterId"`
	ProjectID      *uuid.UUID        `json:"projectId"`
	Category       string            `json:"category"`
	EstimatedHours float64           `json:"estimatedHours"`
	SpentHours     float64           `json:"spentHours"`
	StartDate      string            `json:"startDate"`
	EndDate        string            `json:"endDate"`
	Dependencies   []string          `json:"dependencies"`
	Tags           []string          `json:"tags"`
	Progress       *int              `json:"progress"`
	Notes          string            `json:"notes"`
	Files          []string          `json:"files"`
}

// UpdateTaskRequest is the payload for a partial task update
type UpdateTaskRequest struct {
	Title          *string            `json:"title"`
	Description    *string            `json:"description"`
	Status         *domain.TaskStatus `json:"status"`
	Priority       *domain.Priority   `json:"priority"`
	AssigneeID     *uuid.UUID         `json:"assigneeId"`
	ReporterID     *uuid.UUID         `json:"reporterId"`
	ProjectID      *uuid.UUID         `json:"projectId"`
	Category       *string            `json:"category"`
	EstimatedHours *float64           `json:"estimatedHours"`
	SpentHours     *float64           `json:"spentHours"`
	StartDate      *string            `json:"startDate"`
	EndDate        *string            `json:"endDate"`
	CompletionDate *string            `json:"completionDate"`
	Dependencies   *[]string          `json:"dependencies"`
	Tags           *[]string          `json:"tags"`
	Progress       *int               `json:"progress"`
	Notes          *string            `json:"notes"`
	Files          *[]string          `json:"files"`
}

// UpdateTaskStatusRequest moves a task to another kanban column
type UpdateTaskStatusRequest struct {
	Status domain.TaskStatus `json:"status" binding:"required"`
}

// UpdateTaskProgressRequest sets a task's completion percentage
type UpdateTaskProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}
