package hubsdk

import "time"

// Status and vote constants mirrored from the API
const (
	ProjectPlanning  = "Planning"
	ProjectActive    = "Active"
	ProjectCompleted = "Completed"

	TaskToDo       = "ToDo"
	TaskInProgress = "InProgress"
	TaskDone       = "Done"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	EventTypeAppointment = "Appointment"
	EventTypeTask        = "Task"
	EventTypeMeeting     = "Meeting"
	EventTypeEvent       = "Event"
	EventTypeNote        = "Note"

	RsvpAccepted = "Accepted"
	RsvpDeclined = "Declined"
	RsvpPending  = "Pending"

	IdeaNew        = "New"
	IdeaEvaluating = "Evaluating"
	IdeaApproved   = "Approved"
	IdeaArchived   = "Archived"

	VoteSupports = "Supports"
	VoteNeutral  = "Neutral"
	VoteOpposed  = "Opposed"

	BadgeIdeaStarter = "idea_starter"
)

// Project is the API project model. Foreign keys arrive as bare ids; the
// populated sub-objects are present only when the server inlined them.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Progress  int       `json:"progress"`
	ManagerID *string   `json:"managerId"`
	Manager   *Resource `json:"manager,omitempty"`
	Team      []string  `json:"team"`
	Budget    float64   `json:"budget"`
	Color     string    `json:"color"`
	Files     []string  `json:"files,omitempty"`
}

// Task is the API task model
type Task struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	AssigneeID     *string   `json:"assigneeId"`
	Assignee       *Resource `json:"assignee,omitempty"`
	ReporterID     *string   `json:"reporterId,omitempty"`
	ProjectID      *string   `json:"projectId"`
	Project        *Project  `json:"project,omitempty"`
	Category       string    `json:"category,omitempty"`
	EstimatedHours float64   `json:"estimatedHours,omitempty"`
	SpentHours     float64   `json:"spentHours,omitempty"`
	StartDate      string    `json:"startDate,omitempty"`
	EndDate        string    `json:"endDate,omitempty"`
	CompletionDate string    `json:"completionDate,omitempty"`
	Dependencies   []string  `json:"dependencies,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	Progress       int       `json:"progress"`
	Notes          string    `json:"notes,omitempty"`
	Files          []string  `json:"files,omitempty"`
}

// Event is a calendar entry. Task-typed entries are server-side projections
// of the tasks table and carry the mirrored task fields.
type Event struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Date         string            `json:"date"`
	Type         string            `json:"type"`
	Description  string            `json:"description,omitempty"`
	Content      string            `json:"content,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	StartTime    string            `json:"startTime,omitempty"`
	EndTime      string            `json:"endTime,omitempty"`
	Location     string            `json:"location,omitempty"`
	Participants []string          `json:"participants,omitempty"`
	Rsvp         map[string]string `json:"rsvp,omitempty"`
	Priority     string            `json:"priority,omitempty"`
	Reminder     string            `json:"reminder,omitempty"`
	ProjectID    *string           `json:"projectId,omitempty"`
	IdeaID       *string           `json:"ideaId,omitempty"`
	Files        []string          `json:"files,omitempty"`

	// Mirrored task fields, set on Task-typed entries only
	AssigneeID     *string  `json:"assigneeId,omitempty"`
	Status         string   `json:"status,omitempty"`
	ReporterID     *string  `json:"reporterId,omitempty"`
	Category       string   `json:"category,omitempty"`
	EstimatedHours float64  `json:"estimatedHours,omitempty"`
	SpentHours     float64  `json:"spentHours,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	CompletionDate string   `json:"completionDate,omitempty"`
	Dependencies   []string `json:"dependencies,omitempty"`
	Progress       int      `json:"progress,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// TimelinePhase is a named phase in an idea's rough plan
type TimelinePhase struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// BudgetItem is a line item in an idea's budget plan
type BudgetItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Idea is the API idea model
type Idea struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Status             string          `json:"status"`
	AuthorID           string          `json:"authorId"`
	Author             *Resource       `json:"author,omitempty"`
	Category           string          `json:"category,omitempty"`
	Description        string          `json:"description,omitempty"`
	Summary            string          `json:"summary,omitempty"`
	Problem            string          `json:"problem,omitempty"`
	ProblemType        string          `json:"problemType,omitempty"`
	Solution           string          `json:"solution,omitempty"`
	Benefits           string          `json:"benefits,omitempty"`
	TargetAudience     string          `json:"targetAudience,omitempty"`
	RelatedDepartments []string        `json:"relatedDepartments,omitempty"`
	ProjectLeaderID    *string         `json:"projectLeaderId,omitempty"`
	PotentialTeam      []string        `json:"potentialTeam,omitempty"`
	EstimatedDuration  string          `json:"estimatedDuration,omitempty"`
	TimelinePhases     []TimelinePhase `json:"timelinePhases,omitempty"`
	CriticalMilestones string          `json:"criticalMilestones,omitempty"`
	TotalBudget        float64         `json:"totalBudget,omitempty"`
	BudgetItems        []BudgetItem    `json:"budgetItems,omitempty"`
	ExpectedROI        float64         `json:"expectedROI,omitempty"`
	FundingSources     string          `json:"fundingSources,omitempty"`
	Risks              string          `json:"risks,omitempty"`
	RiskLevel          string          `json:"riskLevel,omitempty"`
	Mitigations        string          `json:"mitigations,omitempty"`
	SuccessCriteria    string          `json:"successCriteria,omitempty"`
	Files              []string        `json:"files,omitempty"`
	Tags               []string        `json:"tags,omitempty"`
	Priority           string          `json:"priority,omitempty"`
	CreationDate       string          `json:"creationDate,omitempty"`
}

// Resource is the API resource (person) model
type Resource struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Initials     string      `json:"initials"`
	Position     string      `json:"position"`
	DepartmentID *string     `json:"departmentId"`
	Department   *Department `json:"department,omitempty"`
	Email        string      `json:"email,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	StartDate    string      `json:"startDate,omitempty"`
	Skills       []string    `json:"skills"`
	WeeklyHours  float64     `json:"weeklyHours"`
	CurrentLoad  float64     `json:"currentLoad"`
	ManagerID    *string     `json:"managerId,omitempty"`
	Bio          string      `json:"bio,omitempty"`
	EarnedBadges []string    `json:"earnedBadges,omitempty"`
}

// Department is the API department model
type Department struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ParentID  *string `json:"parentId,omitempty"`
	ManagerID *string `json:"managerId,omitempty"`
}

// Comment is attached to exactly one of a project or an idea
type Comment struct {
	ID        string            `json:"id"`
	AuthorID  string            `json:"authorId"`
	Author    *Resource         `json:"author,omitempty"`
	Text      string            `json:"text"`
	Timestamp time.Time         `json:"timestamp"`
	Votes     map[string]string `json:"votes,omitempty"`
	ProjectID *string           `json:"projectId,omitempty"`
	IdeaID    *string           `json:"ideaId,omitempty"`
}

// Evaluation is a voted review of a project or an idea
type Evaluation struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Author    *Resource `json:"author,omitempty"`
	Text      string    `json:"text"`
	Vote      string    `json:"vote"`
	Timestamp time.Time `json:"timestamp"`
	ProjectID *string   `json:"projectId,omitempty"`
	IdeaID    *string   `json:"ideaId,omitempty"`
}

// PurchaseRequest is a spend request raised against a project
type PurchaseRequest struct {
	ID          string   `json:"id"`
	ProjectID   string   `json:"projectId"`
	RequesterID string   `json:"requesterId"`
	Item        string   `json:"item"`
	Quantity    int      `json:"quantity"`
	UnitPrice   float64  `json:"unitPrice"`
	Status      string   `json:"status"`
	RequestDate string   `json:"requestDate"`
	Link        string   `json:"link,omitempty"`
	Files       []string `json:"files,omitempty"`
}

// Invoice is a billing document attached to a project
type Invoice struct {
	ID            string  `json:"id"`
	ProjectID     string  `json:"projectId"`
	InvoiceNumber string  `json:"invoiceNumber"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	IssueDate     string  `json:"issueDate"`
	DueDate       string  `json:"dueDate"`
}

// Notification is a message shown in the notification tray
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	AuthorID  string    `json:"authorId"`
	Type      string    `json:"type"`
	EventID   *string   `json:"eventId,omitempty"`
}

// Announcement is a broadcast message, optionally scoped to one department
type Announcement struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	AuthorID     string    `json:"authorId"`
	Timestamp    time.Time `json:"timestamp"`
	DepartmentID string    `json:"departmentId,omitempty"`
}

// FeedbackFile is metadata about a file attached to a feedback entry
type FeedbackFile struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// Feedback is a user-submitted report; AuthorID is nil for anonymous entries
type Feedback struct {
	ID                   string         `json:"id"`
	AuthorID             *string        `json:"authorId"`
	Category             string         `json:"category"`
	Rating               int            `json:"rating"`
	Subject              string         `json:"subject"`
	Description          string         `json:"description"`
	Files                []FeedbackFile `json:"files,omitempty"`
	ContextURL           string         `json:"contextUrl,omitempty"`
	UserAgent            string         `json:"userAgent,omitempty"`
	AssigneeDepartmentID *string        `json:"assigneeDepartmentId,omitempty"`
	AssigneeProjectID    *string        `json:"assigneeProjectId,omitempty"`
	AssigneeResourceID   *string        `json:"assigneeResourceId,omitempty"`
	Timestamp            time.Time      `json:"timestamp"`
	Status               string         `json:"status"`
}

// Goal is a tracked objective inside a performance evaluation
type Goal struct {
	Goal      string `json:"goal"`
	Completed bool   `json:"completed"`
}

// PerformanceEvaluation is a periodic review of a resource
type PerformanceEvaluation struct {
	ID          string    `json:"id"`
	ResourceID  string    `json:"resourceId"`
	Resource    *Resource `json:"resource,omitempty"`
	EvaluatorID string    `json:"evaluatorId"`
	Date        string    `json:"date"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Goals       []Goal    `json:"goals,omitempty"`
}
