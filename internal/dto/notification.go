package dto

import (
	"github.com/google/uuid"

	"ejderhub-api/internal/domain"
)

// CreateNotificationRequest is the payload for pushing a notification
type CreateNotificationRequest struct {
	Message  string                  `json:"message" binding:"required"`
	AuthorID *uuid.UUID              `json:"authorId"`
	Type     domain.NotificationType `json:"type"`
	EventID  *uuid.UUID              `json:"eventId"`
}

// UpdateNotificationRequest toggles a notification's read flag
type UpdateNotificationRequest struct {
	Read *bool `json:"read"`
}

// CreateAnnouncementRequest is the payload for posting an announcement.
// DepartmentID defaults to "all" for company-wide posts.
type CreateAnnouncementRequest struct {
	Title        string `json:"title" binding:"required"`
	Content      string `json:"content" binding:"required"`
	DepartmentID string `json:"departmentId"`
}

// UpdateAnnouncementRequest is the payload for a partial announcement update
type UpdateAnnouncementRequest struct {
	Title        *string `json:"title"`
	Content      *string `json:"content"`
	DepartmentID *string `json:"departmentId"`
}

// CreateFeedbackRequest is the payload for submitting feedback. AuthorID is
// omitted for anonymous reports.
type CreateFeedbackRequest struct {
	AuthorID             *uuid.UUID              `json:"authorId"`
	Category             domain.FeedbackCategory `json:"category" binding:"required"`
	Rating               int                     `json:"rating"`
	Subject              string                  `json:"subject" binding:"required"`
	Description          string                  `json:"description"`
	Files                []domain.FeedbackFile   `json:"files"`
	ContextURL           string                  `json:"contextUrl"`
	UserAgent            string                  `json:"userAgent"`
	AssigneeDepartmentID *uuid.UUID              `json:"assigneeDepartmentId"`
	AssigneeProjectID    *uuid.UUID              `json:"assigneeProjectId"`
	AssigneeResourceID   *uuid.UUID              `json:"assigneeResourceId"`
}

// UpdateFeedbackRequest updates a feedback entry's triage state
type UpdateFeedbackRequest struct {
	Status               *domain.FeedbackStatus `json:"status"`
	AssigneeDepartmentID *uuid.UUID             `json:"assigneeDepartmentId"`
	AssigneeProjectID    *uuid.UUID             `json:"assigneeProjectId"`
	AssigneeResourceID   *uuid.UUID             `json:"assigneeResourceId"`
}

// CreatePerformanceEvaluationRequest is the payload for filing a performance
// evaluation
type CreatePerformanceEvaluationRequest struct {
	ResourceID  uuid.UUID     `json:"resourceId" binding:"required"`
	EvaluatorID *uuid.UUID    `json:"evaluatorId"`
	Date        string        `json:"date"`
	Rating      int           `json:"rating" binding:"required"`
	Comment     string        `json:"comment"`
	Goals       []domain.Goal `json:"goals"`
}

// UpdatePerformanceEvaluationRequest is the payload for a partial
// performance evaluation update
type UpdatePerformanceEvaluationRequest struct {
	Date    *string        `json:"date"`
	Rating  *int           `json:"rating"`
	Comment *string        `json:"comment"`
	Goals   *[]domain.Goal `json:"goals"`
}

// UnreadCountResponse is the payload returned by the unread counter endpoint
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
