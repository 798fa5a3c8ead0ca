package dto

import (
	"github.com/google/uuid"

	"ejderhub-api/internal/domain"
)

// CreateProjectRequest is the payload for creating a project
type CreateProjectRequest struct {
	Name      string               `json:"name" binding:"required"`
	Code      string               `json:"code"`
	Status    domain.ProjectStatus `json:"status"`
	Priority  domain.Priority      `json:"priority"`
	StartDate string               `json:"startDate"`
	EndDate   string               `json:"endDate"`
	Progress  *int                 `json:"progress"`
	ManagerID *uuid.UUID           `json:"managerId"`
	Team      []string             `json:"team"`
	Budget    float64              `json:"budget"`
	Color     string               `json:"color"`
	Files     []string             `json:"files"`
}

// UpdateProjectRequest is the payload for a partial project update. Nil
// fields are left untouched.
type UpdateProjectRequest struct {
	Name      *string               `json:"name"`
	Code      *string               `json:"code"`
	Status    *domain.ProjectStatus `json:"status"`
	Priority  *domain.Priority      `json:"priority"`
	StartDate *string               `json:"startDate"`
	EndDate   *string               `json:"endDate"`
	Progress  *int                  `json:"progress"`
	ManagerID *uuid.UUID            `json:"managerId"`
	Team      *[]string             `json:"team"`
	Budget    *float64              `json:"budget"`
	Color     *string               `json:"color"`
	Files     *[]string             `json:"files"`
}
