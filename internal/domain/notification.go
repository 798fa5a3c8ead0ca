package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationType categorizes notification messages
type NotificationType string

const (
	NotificationInfo            NotificationType = "Info"
	NotificationTaskCompleted   NotificationType = "TaskCompleted"
	NotificationOverload        NotificationType = "Overload"
	NotificationProjectRisk     NotificationType = "ProjectRisk"
	NotificationTaskAssigned    NotificationType = "TaskAssigned"
	NotificationNewProject      NotificationType = "NewProject"
	NotificationMeetingInvite   NotificationType = "MeetingInvite"
	NotificationPurchaseRequest NotificationType = "NewPurchaseRequest"
	NotificationNewInvoice      NotificationType = "NewInvoice"
	NotificationMention         NotificationType = "Mention"
)

// Notification is a per-user message shown in the notification tray
type Notification struct {
	BaseModel
	Message   string           `gorm:"type:text;not null" json:"message"`
	Timestamp time.Time        `gorm:"not null;index:idx_notifications_timestamp" json:"timestamp"`
	Read      bool             `gorm:"not null;default:false;index:idx_notifications_read" json:"read"`
	AuthorID  uuid.UUID        `gorm:"type:uuid;not null;index:idx_notifications_author_id" json:"authorId"`
	Author    *Resource        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Type      NotificationType `gorm:"type:varchar(50);not null" json:"type"`
	EventID   *uuid.UUID       `gorm:"type:uuid" json:"eventId,omitempty"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// Announcement is a broadcast message, optionally scoped to one department.
// DepartmentID holds "all" for company-wide announcements.
type Announcement struct {
	BaseModel
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null" json:"authorId"`
	Author       *Resource `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Timestamp    time.Time `gorm:"not null" json:"timestamp"`
	DepartmentID string    `gorm:"type:varchar(50);default:'all'" json:"departmentId,omitempty"`
}

// TableName specifies the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}

// FeedbackCategory classifies user feedback
type FeedbackCategory string

const (
	FeedbackBugReport      FeedbackCategory = "BugReport"
	FeedbackFeatureRequest FeedbackCategory = "FeatureRequest"
	FeedbackGeneral        FeedbackCategory = "General"
)

// FeedbackStatus tracks the triage state of a feedback entry
type FeedbackStatus string

const (
	FeedbackSubmitted  FeedbackStatus = "Submitted"
	FeedbackInProgress FeedbackStatus = "InProgress"
	FeedbackResolved   FeedbackStatus = "Resolved"
	FeedbackClosed     FeedbackStatus = "Closed"
)

// FeedbackFile is metadata about a file attached to a feedback entry
type FeedbackFile struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// Feedback is a user-submitted report. AuthorID is nullable because feedback
// can be filed anonymously from the login screen.
type Feedback struct {
	BaseModel
	AuthorID             *uuid.UUID                         `gorm:"type:uuid" json:"authorId"`
	Author               *Resource                          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category             FeedbackCategory                   `gorm:"type:varchar(50);not null" json:"category"`
	Rating               int                                `gorm:"not null" json:"rating"`
	Subject              string                             `gorm:"type:varchar(255);not null" json:"subject"`
	Description          string                             `gorm:"type:text" json:"description"`
	Files                datatypes.JSONType[[]FeedbackFile] `json:"files,omitempty"`
	ContextURL           string                             `gorm:"type:varchar(500)" json:"contextUrl,omitempty"`
	UserAgent            string                             `gorm:"type:varchar(500)" json:"userAgent,omitempty"`
	AssigneeDepartmentID *uuid.UUID                         `gorm:"type:uuid" json:"assigneeDepartmentId,omitempty"`
	AssigneeProjectID    *uuid.UUID                         `gorm:"type:uuid" json:"assigneeProjectId,omitempty"`
	AssigneeResourceID   *uuid.UUID                         `gorm:"type:uuid" json:"assigneeResourceId,omitempty"`
	Timestamp            time.Time                          `gorm:"not null" json:"timestamp"`
	Status               FeedbackStatus                     `gorm:"type:varchar(50);not null;default:'Submitted'" json:"status"`
}

// TableName specifies the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}

// Goal is a tracked objective inside a performance evaluation
type Goal struct {
	Goal      string `json:"goal"`
	Completed bool   `json:"completed"`
}

// PerformanceEvaluation is a periodic review of a resource
type PerformanceEvaluation struct {
	BaseModel
	ResourceID  uuid.UUID                  `gorm:"type:uuid;not null;index:idx_perf_evals_resource_id" json:"resourceId"`
	Resource    *Resource                  `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
	EvaluatorID uuid.UUID                  `gorm:"type:uuid;not null" json:"evaluatorId"`
	Date        string                     `gorm:"type:varchar(10);not null" json:"date"`
	Rating      int                        `gorm:"not null" json:"rating"`
	Comment     string                     `gorm:"type:text" json:"comment"`
	Goals       datatypes.JSONType[[]Goal] `json:"goals,omitempty"`
}

// TableName specifies the table name for PerformanceEvaluation
func (PerformanceEvaluation) TableName() string {
	return "performance_evaluations"
}
