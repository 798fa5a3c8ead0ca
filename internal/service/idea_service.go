package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/metrics"
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/response"
)

// ConvertedProjectColor is assigned to every project born from an idea
const ConvertedProjectColor = "#6366F1"

// ConvertedProjectWindowDays is the default schedule length for a project
// born from an idea
const ConvertedProjectWindowDays = 90

// IdeaService defines the interface for idea business logic
type IdeaService interface {
	CreateIdea(ctx context.Context, userID uuid.UUID, req *dto.CreateIdeaRequest) (*domain.Idea, error)
	GetIdea(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error)
	ListIdeas(ctx context.Context) ([]*domain.Idea, error)
	UpdateIdea(ctx context.Context, ideaID uuid.UUID, req *dto.UpdateIdeaRequest) (*domain.Idea, error)
	DeleteIdea(ctx context.Context, ideaID uuid.UUID) error
	ConvertIdeaToProject(ctx context.Context, userID uuid.UUID, ideaID uuid.UUID) (*domain.Project, error)
}

type ideaServiceImpl struct {
	ideaRepo       repository.IdeaRepository
	resourceRepo   repository.ResourceRepository
	eventRepo      repository.EventRepository
	projectService ProjectService
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewIdeaService creates a new instance of IdeaService
func NewIdeaService(
	ideaRepo repository.IdeaRepository,
	resourceRepo repository.ResourceRepository,
	eventRepo repository.EventRepository,
	projectService ProjectService,
	m *metrics.Metrics,
	logger *zap.Logger,
) IdeaService {
	return &ideaServiceImpl{
		ideaRepo:       ideaRepo,
		resourceRepo:   resourceRepo,
		eventRepo:      eventRepo,
		projectService: projectService,
		metrics:        m,
		logger:         logger,
	}
}

// CreateIdea stores a new idea and awards the idea-starter badge to
// first-time authors
func (s *ideaServiceImpl) CreateIdea(ctx context.Context, userID uuid.UUID, req *dto.CreateIdeaRequest) (*domain.Idea, error) {
	authorID := userID
	if req.AuthorID != nil {
		authorID = *req.AuthorID
	}

	status := req.Status
	if status == "" {
		status = domain.IdeaStatusNew
	}
	creationDate := req.CreationDate
	if creationDate == "" {
		creationDate = today()
	}

	idea := &domain.Idea{
		Name:            req.Name,
		Status:          status,
		AuthorID:        authorID,
		Category:        req.Category,
		Description:     req.Description,
		Summary:         req.Summary,
		Problem:         req.Problem,
		ProblemType:     req.ProblemType,
		Solution:        req.Solution,
		Benefits:        req.Benefits,
		TargetAudience:  req.TargetAudience,
		RelatedDepts:    datatypes.JSONSlice[string](req.RelatedDepts),
		ProjectLeaderID: req.ProjectLeaderID,
		PotentialTeam:   datatypes.JSONSlice[string](req.PotentialTeam),
		EstimatedDur:    req.EstimatedDur,
		Milestones:      req.Milestones,
		TotalBudget:     req.TotalBudget,
		ExpectedROI:     req.ExpectedROI,
		FundingSources:  req.FundingSources,
		Risks:           req.Risks,
		RiskLevel:       req.RiskLevel,
		Mitigations:     req.Mitigations,
		SuccessCriteria: req.SuccessCriteria,
		Files:           datatypes.JSONSlice[string](req.Files),
		Tags:            datatypes.JSONSlice[string](req.Tags),
		Priority:        req.Priority,
		CreationDate:    creationDate,
	}
	if req.TimelinePhases != nil {
		idea.TimelinePhases = datatypes.NewJSONType(req.TimelinePhases)
	}
	if req.BudgetItems != nil {
		idea.BudgetItems = datatypes.NewJSONType(req.BudgetItems)
	}

	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create idea", err.Error())
	}

	s.metrics.IncrementIdeaCreated()
	s.logger.Info("idea created",
		zap.String("idea_id", idea.ID.String()),
		zap.String("author_id", authorID.String()),
	)

	s.awardIdeaStarterBadge(ctx, authorID)

	return idea, nil
}

// awardIdeaStarterBadge appends the idea-starter badge to the author's
// earned badges. The award is idempotent; a failed award never fails the
// idea submission.
func (s *ideaServiceImpl) awardIdeaStarterBadge(ctx context.Context, authorID uuid.UUID) {
	author, err := s.resourceRepo.FindByID(ctx, authorID)
	if err != nil {
		s.logger.Warn("badge award skipped, author not found",
			zap.String("author_id", authorID.String()),
			zap.Error(err),
		)
		return
	}
	if author.HasBadge(domain.BadgeIdeaStarter) {
		return
	}

	author.EarnedBadges = append(author.EarnedBadges, domain.BadgeIdeaStarter)
	if err := s.resourceRepo.Update(ctx, author); err != nil {
		s.logger.Error("badge award failed",
			zap.String("author_id", authorID.String()),
			zap.Error(err),
		)
		return
	}

	s.metrics.IncrementBadgeAwarded()
	s.logger.Info("badge awarded",
		zap.String("author_id", authorID.String()),
		zap.String("badge", domain.BadgeIdeaStarter),
	)
}

// GetIdea returns a single idea by id
func (s *ideaServiceImpl) GetIdea(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Idea not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load idea", err.Error())
	}
	return idea, nil
}

// ListIdeas returns all ideas, newest first
func (s *ideaServiceImpl) ListIdeas(ctx context.Context) ([]*domain.Idea, error) {
	ideas, err := s.ideaRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list ideas", err.Error())
	}
	return ideas, nil
}

// UpdateIdea applies a partial update to an idea
func (s *ideaServiceImpl) UpdateIdea(ctx context.Context, ideaID uuid.UUID, req *dto.UpdateIdeaRequest) (*domain.Idea, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Idea not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load idea", err.Error())
	}

	applyIdeaUpdate(idea, req)

	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update idea", err.Error())
	}
	return idea, nil
}

// DeleteIdea removes an idea and detaches any calendar entries that pointed
// at it. The entries themselves survive.
func (s *ideaServiceImpl) DeleteIdea(ctx context.Context, ideaID uuid.UUID) error {
	if _, err := s.ideaRepo.FindByID(ctx, ideaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Idea not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load idea", err.Error())
	}

	if err := s.eventRepo.ClearIdeaRefs(ctx, ideaID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to detach idea events", err.Error())
	}
	if err := s.ideaRepo.Delete(ctx, ideaID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete idea", err.Error())
	}

	s.logger.Info("idea deleted", zap.String("idea_id", ideaID.String()))
	return nil
}

// ConvertIdeaToProject creates a project seeded from an approved-for-launch
// idea. The idea survives the conversion with status Approved.
func (s *ideaServiceImpl) ConvertIdeaToProject(ctx context.Context, userID uuid.UUID, ideaID uuid.UUID) (*domain.Project, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Idea not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load idea", err.Error())
	}

	managerID := idea.ProjectLeaderID
	if managerID == nil {
		managerID = &userID
	}
	team := []string(idea.PotentialTeam)
	if len(team) == 0 {
		team = []string{userID.String()}
	}
	priority := idea.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	start := today()
	end := plusDays(start, ConvertedProjectWindowDays)

	project, err := s.projectService.CreateProject(ctx, userID, &dto.CreateProjectRequest{
		Name:      idea.Name,
		Status:    domain.ProjectStatusPlanning,
		Priority:  priority,
		StartDate: start,
		EndDate:   end,
		ManagerID: managerID,
		Team:      team,
		Budget:    idea.TotalBudget,
		Color:     ConvertedProjectColor,
	})
	if err != nil {
		return nil, err
	}

	idea.Status = domain.IdeaStatusApproved
	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to mark idea approved", err.Error())
	}

	s.metrics.IncrementIdeaConverted()
	s.logger.Info("idea converted to project",
		zap.String("idea_id", ideaID.String()),
		zap.String("project_id", project.ID.String()),
	)

	return project, nil
}

func applyIdeaUpdate(idea *domain.Idea, req *dto.UpdateIdeaRequest) {
	if req.Name != nil {
		idea.Name = *req.Name
	}
	if req.Status != nil {
		idea.Status = *req.Status
	}
	if req.Category != nil {
		idea.Category = *req.Category
	}
	if req.Description != nil {
		idea.Description = *req.Description
	}
	if req.Summary != nil {
		idea.Summary = *req.Summary
	}
	if req.Problem != nil {
		idea.Problem = *req.Problem
	}
	if req.ProblemType != nil {
		idea.ProblemType = *req.ProblemType
	}
	if req.Solution != nil {
		idea.Solution = *req.Solution
	}
	if req.Benefits != nil {
		idea.Benefits = *req.Benefits
	}
	if req.TargetAudience != nil {
		idea.TargetAudience = *req.TargetAudience
	}
	if req.RelatedDepts != nil {
		idea.RelatedDepts = datatypes.JSONSlice[string](*req.RelatedDepts)
	}
	if req.ProjectLeaderID != nil {
		idea.ProjectLeaderID = req.ProjectLeaderID
	}
	if req.PotentialTeam != nil {
		idea.PotentialTeam = datatypes.JSONSlice[string](*req.PotentialTeam)
	}
	if req.EstimatedDur != nil {
		idea.EstimatedDur = *req.EstimatedDur
	}
	if req.TimelinePhases != nil {
		idea.TimelinePhases = datatypes.NewJSONType(*req.TimelinePhases)
	}
	if req.Milestones != nil {
		idea.Milestones = *req.Milestones
	}
	if req.TotalBudget != nil {
		idea.TotalBudget = *req.TotalBudget
	}
	if req.BudgetItems != nil {
		idea.BudgetItems = datatypes.NewJSONType(*req.BudgetItems)
	}
	if req.ExpectedROI != nil {
		idea.ExpectedROI = *req.ExpectedROI
	}
	if req.FundingSources != nil {
		idea.FundingSources = *req.FundingSources
	}
	if req.Risks != nil {
		idea.Risks = *req.Risks
	}
	if req.RiskLevel != nil {
		idea.RiskLevel = *req.RiskLevel
	}
	if req.Mitigations != nil {
		idea.Mitigations = *req.Mitigations
	}
	if req.SuccessCriteria != nil {
		idea.SuccessCriteria = *req.SuccessCriteria
	}
	if req.Files != nil {
		idea.Files = datatypes.JSONSlice[string](*req.Files)
	}
	if req.Tags != nil {
		idea.Tags = datatypes.JSONSlice[string](*req.Tags)
	}
	if req.Priority != nil {
		idea.Priority = *req.Priority
	}
}
