package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "Planning"
	ProjectStatusActive    ProjectStatus = "Active"
	ProjectStatusCompleted ProjectStatus = "Completed"
)

// Project represents a project entity. Team membership is kept as a list of
// resource ids; the manager relation can be preloaded for list responses.
type Project struct {
	BaseModel
	Name      string                      `gorm:"type:varchar(255);not null" json:"name"`
	Code      string                      `gorm:"type:varchar(50);not null;uniqueIndex:uq_projects_code" json:"code"`
	Status    ProjectStatus               `gorm:"type:varchar(50);not null;default:'Planning';index:idx_projects_status" json:"status"`
	Priority  Priority                    `gorm:"type:varchar(50);not null;default:'Medium'" json:"priority"`
	StartDate string                      `gorm:"type:varchar(10)" json:"startDate"`
	EndDate   string                      `gorm:"type:varchar(10)" json:"endDate"`
	Progress  int                         `gorm:"not null;default:0" json:"progress"`
	ManagerID *uuid.UUID                  `gorm:"type:uuid;index:idx_projects_manager_id" json:"managerId"`
	Manager   *Resource                   `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Team      datatypes.JSONSlice[string] `json:"team"`
	Budget    float64                     `gorm:"not null;default:0" json:"budget"`
	Color     string                      `gorm:"type:varchar(20)" json:"color"`
	Files     datatypes.JSONSlice[string] `json:"files,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
