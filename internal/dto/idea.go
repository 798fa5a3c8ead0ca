package dto

import (
	"github.com/google/uuid"

	"ejderhub-api/internal/domain"
)

// CreateIdeaRequest is the payload for submitting an idea. The author is the
// authenticated user unless AuthorID is set explicitly.
type CreateIdeaRequest struct {
	Name            string                 `json:"name" binding:"required"`
	Status          domain.IdeaStatus      `json:"status"`
	AuthorID        *uuid.UUID             `json:"authorId"`
	Category        string                 `json:"category"`
	Description     string                 `json:"description"`
	Summary         string                 `json:"summary"`
	Problem         string                 `json:"problem"`
	ProblemType     string                 `json:"problemType"`
	Solution        string                 `json:"solution"`
	Benefits        string                 `json:"benefits"`
	TargetAudience  string                 `json:"targetAudience"`
	RelatedDepts    []string               `json:"relatedDepartments"`
	ProjectLeaderID *uuid.UUID             `json:"projectLeaderId"`
	PotentialTeam   []string               `json:"potentialTeam"`
	EstimatedDur    string                 `json:"estimatedDuration"`
	TimelinePhases  []domain.TimelinePhase `json:"timelinePhases"`
	Milestones      string                 `json:"criticalMilestones"`
	TotalBudget     float64                `json:"totalBudget"`
	BudgetItems     []domain.BudgetItem    `json:"budgetItems"`
	ExpectedROI     float64                `json:"expectedROI"`
	FundingSources  string                 `json:"fundingSources"`
	Risks           string                 `json:"risks"`
	RiskLevel       string                 `json:"riskLevel"`
	Mitigations     string                 `json:"mitigations"`
	SuccessCriteria string                 `json:"successCriteria"`
	Files           []string               `json:"files"`
	Tags            []string               `json:"tags"`
	Priority        domain.Priority        `json:"priority"`
	CreationDate    string                 `json:"creationDate"`
}

// UpdateIdeaRequest is the payload for a partial idea update
type UpdateIdeaRequest struct {
	Name            *string                 `json:"name"`
	Status          *domain.IdeaStatus      `json:"status"`
	Category        *string                 `json:"category"`
	Description     *string                 `json:"description"`
	Summary         *string                 `json:"summary"`
	Problem         *string                 `json:"problem"`
	ProblemType     *string                 `json:"problemType"`
	Solution        *string                 `json:"solution"`
	Benefits        *string                 `json:"benefits"`
	TargetAudience  *string                 `json:"targetAudience"`
	RelatedDepts    *[]string               `json:"relatedDepartments"`
	ProjectLeaderID *uuid.UUID              `json:"projectLeaderId"`
	PotentialTeam   *[]string               `json:"potentialTeam"`
	EstimatedDur    *string                 `json:"estimatedDuration"`
	TimelinePhases  *[]domain.TimelinePhase `json:"timelinePhases"`
	Milestones      *string                 `json:"criticalMilestones"`
	TotalBudget     *float64                `json:"totalBudget"`
	BudgetItems     *[]domain.BudgetItem    `json:"budgetItems"`
	ExpectedROI     *float64                `json:"expectedROI"`
	FundingSources  *string                 `json:"fundingSources"`
	Risks           *string                 `json:"risks"`
	RiskLevel       *string                 `json:"riskLevel"`
	Mitigations     *string                 `json:"mitigations"`
	SuccessCriteria *string                 `json:"successCriteria"`
	Files           *[]string               `json:"files"`
	Tags            *[]string               `json:"tags"`
	Priority        *domain.Priority        `json:"priority"`
}
