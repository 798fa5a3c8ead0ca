package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TaskStatus represents the kanban column a task sits in
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "ToDo"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusDone       TaskStatus = "Done"
)

// Task represents a unit of work. Tasks are the single source of truth for
// task-typed calendar entries: the events API derives its task rows from this
// table instead of keeping a duplicate record in sync.
type Task struct {
	BaseModel
	Title          string                      `gorm:"type:varchar(255);not null" json:"title"`
	Description    string                      `gorm:"type:text" json:"description,omitempty"`
	Status         TaskStatus                  `gorm:"type:varchar(50);not null;default:'ToDo';index:idx_tasks_status" json:"status"`
	Priority       Priority                    `gorm:"type:varchar(50);not null;default:'Medium'" json:"priority"`
	AssigneeID     *uuid.UUID                  `gorm:"type:uuid;index:idx_tasks_assignee_id" json:"assigneeId"`
	Assignee       *Resource                   `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	ReporterID     *uuid.UUID                  `gorm:"type:uuid" json:"reporterId,omitempty"`
	Reporter       *Resource                   `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	ProjectID      *uuid.UUID                  `gorm:"type:uuid;index:idx_tasks_project_id" json:"projectId"`
	Project        *Project                    `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Category       string                      `gorm:"type:varchar(100)" json:"category,omitempty"`
	EstimatedHours float64                     `json:"estimatedHours,omitempty"`
	SpentHours     float64                     `json:"spentHours,omitempty"`
	StartDate      string                      `gorm:"type:varchar(10)" json:"startDate,omitempty"`
	EndDate        string                      `gorm:"type:varchar(10);index:idx_tasks_end_date" json:"endDate,omitempty"`
	CompletionDate string                      `gorm:"type:varchar(10)" json:"completionDate,omitempty"`
	Dependencies   datatypes.JSONSlice[string] `json:"dependencies,omitempty"`
	Tags           datatypes.JSONSlice[string] `json:"tags,omitempty"`
	Progress       int                         `gorm:"not null;default:0" json:"progress"`
	Notes          string                      `gorm:"type:text" json:"notes,omitempty"`
	Files          datatypes.JSONSlice[string] `json:"files,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
