package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IdeaStatus represents the evaluation state of an idea
type IdeaStatus string

const (
	IdeaStatusNew        IdeaStatus = "New"
	IdeaStatusEvaluating IdeaStatus = "Evaluating"
	IdeaStatusApproved   IdeaStatus = "Approved"
	IdeaStatusArchived   IdeaStatus = "Archived"
)

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

// Idea represents an innovation proposal. Approved ideas can be converted
// into projects; the conversion never deletes the idea.
type Idea struct {
	BaseModel
	Name            string                              `gorm:"type:varchar(255);not null" json:"name"`
	Status          IdeaStatus                          `gorm:"type:varchar(50);not null;default:'New';index:idx_ideas_status" json:"status"`
	AuthorID        uuid.UUID                           `gorm:"type:uuid;not null;index:idx_ideas_author_id" json:"authorId"`
	Author          *Resource                           `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category        string                              `gorm:"type:varchar(100)" json:"category,omitempty"`
	Description     string                              `gorm:"type:text" json:"description,omitempty"`
	Summary         string                              `gorm:"type:text" json:"summary,omitempty"`
	Problem         string                              `gorm:"type:text" json:"problem,omitempty"`
	ProblemType     string                              `gorm:"type:varchar(50)" json:"problemType,omitempty"`
	Solution        string                              `gorm:"type:text" json:"solution,omitempty"`
	Benefits        string                              `gorm:"type:text" json:"benefits,omitempty"`
	TargetAudience  string                              `gorm:"type:varchar(255)" json:"targetAudience,omitempty"`
	RelatedDepts    datatypes.JSONSlice[string]         `json:"relatedDepartments,omitempty"`
	ProjectLeaderID *uuid.UUID                          `gorm:"type:uuid" json:"projectLeaderId,omitempty"`
	ProjectLeader   *Resource                           `gorm:"foreignKey:ProjectLeaderID" json:"projectLeader,omitempty"`
	PotentialTeam   datatypes.JSONSlice[string]         `json:"potentialTeam,omitempty"`
	EstimatedDur    string                              `gorm:"type:varchar(100)" json:"estimatedDuration,omitempty"`
	TimelinePhases  datatypes.JSONType[[]TimelinePhase] `json:"timelinePhases,omitempty"`
	Milestones      string                              `gorm:"type:text" json:"criticalMilestones,omitempty"`
	TotalBudget     float64                             `json:"totalBudget,omitempty"`
	BudgetItems     datatypes.JSONType[[]BudgetItem]    `json:"budgetItems,omitempty"`
	ExpectedROI     float64                             `json:"expectedROI,omitempty"`
	FundingSources  string                              `gorm:"type:text" json:"fundingSources,omitempty"`
	Risks           string                              `gorm:"type:text" json:"risks,omitempty"`
	RiskLevel       string                              `gorm:"type:varchar(50)" json:"riskLevel,omitempty"`
	Mitigations     string                              `gorm:"type:text" json:"mitigations,omitempty"`
	SuccessCriteria string                              `gorm:"type:text" json:"successCriteria,omitempty"`
	Files           datatypes.JSONSlice[string]         `json:"files,omitempty"`
	Tags            datatypes.JSONSlice[string]         `json:"tags,omitempty"`
	Priority        Priority                            `gorm:"type:varchar(50)" json:"priority,omitempty"`
	CreationDate    string                              `gorm:"type:varchar(10)" json:"creationDate,omitempty"`
}

// TableName specifies the table name for Idea
func (Idea) TableName() string {
	return "ideas"
}
