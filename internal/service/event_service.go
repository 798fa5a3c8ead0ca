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
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/response"
)

// EventService defines the interface for calendar business logic. Task-typed
// entries are never stored in the events table: creates and updates of those
// are routed to the task service under the same id, and list responses
// project them back from the tasks table. The calendar and the task board
// therefore cannot drift apart.
type EventService interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*domain.Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, req *dto.UpdateEventRequest) (*domain.Event, error)
	UpdateRsvp(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, status domain.RsvpStatus) (*domain.Event, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}

type eventServiceImpl struct {
	eventRepo   repository.EventRepository
	taskRepo    repository.TaskRepository
	taskService TaskService
	logger      *zap.Logger
}

// NewEventService creates a new instance of EventService
func NewEventService(
	eventRepo repository.EventRepository,
	taskRepo repository.TaskRepository,
	taskService TaskService,
	logger *zap.Logger,
) EventService {
	return &eventServiceImpl{
		eventRepo:   eventRepo,
		taskRepo:    taskRepo,
		taskService: taskService,
		logger:      logger,
	}
}

// CreateEvent creates a calendar entry. Task-typed requests become tasks; the
// returned entry is the projection of the stored task.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*domain.Event, error) {
	if req.Type == domain.EventTypeTask {
		task, err := s.taskService.CreateTask(ctx, userID, taskRequestFromEvent(req))
		if err != nil {
			return nil, err
		}
		return domain.TaskCalendarEntry(task), nil
	}

	if req.Date == "" {
		return nil, response.NewValidationError("Date is required for calendar entries", "")
	}
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	event := &domain.Event{
		Title:        req.Title,
		Date:         req.Date,
		Type:         req.Type,
		Description:  req.Description,
		Content:      req.Content,
		Tags:         datatypes.JSONSlice[string](req.Tags),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Location:     req.Location,
		Participants: datatypes.JSONSlice[string](req.Participants),
		Priority:     req.Priority,
		Reminder:     req.Reminder,
		ProjectID:    req.ProjectID,
		IdeaID:       req.IdeaID,
		Files:        datatypes.JSONSlice[string](req.Files),
	}

	// Meetings start with every invitee pending
	if req.Type == domain.EventTypeMeeting && len(req.Participants) > 0 {
		rsvp := make(map[string]domain.RsvpStatus, len(req.Participants))
		for _, p := range req.Participants {
			rsvp[p] = domain.RsvpPending
		}
		event.Rsvp = datatypes.NewJSONType(rsvp)
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create event", err.Error())
	}

	s.logger.Info("event created",
		zap.String("event_id", event.ID.String()),
		zap.String("type", string(event.Type)),
	)

	return event, nil
}

// GetEvent returns a calendar entry by id, projecting from the tasks table
// when the id belongs to a task
func (s *eventServiceImpl) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load event", err.Error())
	}

	task, err := s.taskRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Event not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load event", err.Error())
	}
	return domain.TaskCalendarEntry(task), nil
}

// ListEvents returns stored entries plus one projected entry per task
func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list events", err.Error())
	}

	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tasks for calendar", err.Error())
	}

	merged := make([]*domain.Event, 0, len(events)+len(tasks))
	merged = append(merged, events...)
	for _, t := range tasks {
		merged = append(merged, domain.TaskCalendarEntry(t))
	}
	return merged, nil
}

// UpdateEvent applies a partial update to a calendar entry, routing updates
// of task-typed entries through the task service
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, eventID uuid.UUID, req *dto.UpdateEventRequest) (*domain.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load event", err.Error())
		}
		// Not in the events table: a task-typed entry shares its task's id
		task, err := s.taskService.UpdateTask(ctx, eventID, taskUpdateFromEvent(req))
		if err != nil {
			var appErr *response.AppError
			if errors.As(err, &appErr) && appErr.Code == response.ErrCodeNotFound {
				return nil, response.NewNotFoundError("Event not found", "")
			}
			return nil, err
		}
		return domain.TaskCalendarEntry(task), nil
	}

	applyEventUpdate(event, req)
	if err := validateDateRange(event.StartDate, event.EndDate); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update event", err.Error())
	}
	return event, nil
}

// UpdateRsvp records the acting user's reply to a meeting invitation
func (s *eventServiceImpl) UpdateRsvp(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, status domain.RsvpStatus) (*domain.Event, error) {
	switch status {
	case domain.RsvpAccepted, domain.RsvpDeclined, domain.RsvpPending:
	default:
		return nil, response.NewValidationError("Invalid RSVP status", string(status))
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Event not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load event", err.Error())
	}
	if event.Type != domain.EventTypeMeeting {
		return nil, response.NewValidationError("RSVP is only valid for meetings", string(event.Type))
	}

	rsvp := event.Rsvp.Data()
	if rsvp == nil {
		rsvp = make(map[string]domain.RsvpStatus)
	}
	rsvp[userID.String()] = status
	event.Rsvp = datatypes.NewJSONType(rsvp)

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update RSVP", err.Error())
	}

	s.logger.Info("rsvp updated",
		zap.String("event_id", eventID.String()),
		zap.String("user_id", userID.String()),
		zap.String("status", string(status)),
	)

	return event, nil
}

// DeleteEvent removes a calendar entry. Deleting a task-typed entry deletes
// the task itself.
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := s.eventRepo.FindByID(ctx, eventID)
	if err == nil {
		if err := s.eventRepo.Delete(ctx, eventID); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to delete event", err.Error())
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewAppError(response.ErrCodeInternal, "Failed to load event", err.Error())
	}

	if err := s.taskService.DeleteTask(ctx, eventID); err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) && appErr.Code == response.ErrCodeNotFound {
			return response.NewNotFoundError("Event not found", "")
		}
		return err
	}
	return nil
}

func taskRequestFromEvent(req *dto.CreateEventRequest) *dto.CreateTaskRequest {
	startDate := req.StartDate
	if startDate == "" {
		startDate = req.Date
	}
	return &dto.CreateTaskRequest{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		AssigneeID:     req.AssigneeID,
		ReporterID:     req.ReporterID,
		ProjectID:      req.ProjectID,
		Category:       req.Category,
		EstimatedHours: req.EstimatedHours,
		SpentHours:     req.SpentHours,
		StartDate:      startDate,
		EndDate:        req.EndDate,
		Dependencies:   req.Dependencies,
		Tags:           req.Tags,
		Progress:       req.Progress,
		Notes:          req.Notes,
		Files:          req.Files,
	}
}

func taskUpdateFromEvent(req *dto.UpdateEventRequest) *dto.UpdateTaskRequest {
	startDate := req.StartDate
	if startDate == nil && req.Date != nil {
		startDate = req.Date
	}
	return &dto.UpdateTaskRequest{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		AssigneeID:     req.AssigneeID,
		ReporterID:     req.ReporterID,
		ProjectID:      req.ProjectID,
		Category:       req.Category,
		EstimatedHours: req.EstimatedHours,
		SpentHours:     req.SpentHours,
		StartDate:      startDate,
		EndDate:        req.EndDate,
		CompletionDate: req.CompletionDate,
		Dependencies:   req.Dependencies,
		Tags:           req.Tags,
		Progress:       req.Progress,
		Notes:          req.Notes,
		Files:          req.Files,
	}
}

func applyEventUpdate(event *domain.Event, req *dto.UpdateEventRequest) {
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Content != nil {
		event.Content = *req.Content
	}
	if req.Tags != nil {
		event.Tags = datatypes.JSONSlice[string](*req.Tags)
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Participants != nil {
		event.Participants = datatypes.JSONSlice[string](*req.Participants)
	}
	if req.Priority != nil {
		event.Priority = *req.Priority
	}
	if req.Reminder != nil {
		event.Reminder = *req.Reminder
	}
	if req.ProjectID != nil {
		event.ProjectID = req.ProjectID
	}
	if req.IdeaID != nil {
		event.IdeaID = req.IdeaID
	}
	if req.Files != nil {
		event.Files = datatypes.JSONSlice[string](*req.Files)
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}
}
