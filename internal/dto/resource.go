package dto

import "github.com/google/uuid"

// CreateResourceRequest is the payload for creating a resource. Initials are
// derived from the name when omitted.
type CreateResourceRequest struct {
	Name         string     `json:"name" binding:"required"`
	Initials     string     `json:"initials"`
	Position     string     `json:"position"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	StartDate    string     `json:"startDate"`
	Skills       []string   `json:"skills"`
	WeeklyHours  *float64   `json:"weeklyHours"`
	CurrentLoad  *float64   `json:"currentLoad"`
	ManagerID    *uuid.UUID `json:"managerId"`
	Bio          string     `json:"bio"`
}

// UpdateResourceRequest is the payload for a partial resource update
type UpdateResourceRequest struct {
	Name         *string    `json:"name"`
	Initials     *string    `json:"initials"`
	Position     *string    `json:"position"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	StartDate    *string    `json:"startDate"`
	Skills       *[]string  `json:"skills"`
	WeeklyHours  *float64   `json:"weeklyHours"`
	CurrentLoad  *float64   `json:"currentLoad"`
	ManagerID    *uuid.UUID `json:"managerId"`
	Bio          *string    `json:"bio"`
	EarnedBadges *[]string  `json:"earnedBadges"`
}

// CreateDepartmentRequest is the payload for creating a department
type CreateDepartmentRequest struct {
	Name      string     `json:"name" binding:"required"`
	ParentID  *uuid.UUID `json:"parentId"`
	ManagerID *uuid.UUID `json:"managerId"`
}

// UpdateDepartmentRequest is the payload for a partial department update
type UpdateDepartmentRequest struct {
	Name      *string    `json:"name"`
	ParentID  *uuid.UUID `json:"parentId"`
	ManagerID *uuid.UUID `json:"managerId"`
}
