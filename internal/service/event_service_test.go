package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
)

func newEventServiceForTest(eventRepo *MockEventRepository, taskRepo *MockTaskRepository) EventService {
	taskService := NewTaskService(taskRepo, &MockProjectRepository{}, newTestMetrics(), zap.NewNop())
	return NewEventService(eventRepo, taskRepo, taskService, zap.NewNop())
}

func TestEventService_CreateEvent_TaskRouting(t *testing.T) {
	// A task-typed calendar request must land in the tasks table, never in
	// the events table, and the response must be the projection of the
	// stored task under the task's own id.
	userID := uuid.New()
	taskID := uuid.New()

	eventRepo := &MockEventRepository{
		CreateFunc: func(ctx context.Context, event *domain.Event) error {
			t.Error("task-typed entry was written to the events table")
			return nil
		},
	}
	taskRepo := &MockTaskRepository{
		CreateFunc: func(ctx context.Context, task *domain.Task) error {
			task.ID = taskID
			return nil
		},
	}
	service := newEventServiceForTest(eventRepo, taskRepo)

	got, err := service.CreateEvent(context.Background(), userID, &dto.CreateEventRequest{
		Title:    "Ship release notes",
		Type:     domain.EventTypeTask,
		Date:     "2026-09-05",
		Priority: domain.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("CreateEvent() unexpected error = %v", err)
	}
	if got.ID != taskID {
		t.Errorf("entry id = %v, want the task's id %v", got.ID, taskID)
	}
	if got.Type != domain.EventTypeTask {
		t.Errorf("Type = %v, want %v", got.Type, domain.EventTypeTask)
	}
	if got.Status != domain.TaskStatusToDo {
		t.Errorf("Status = %v, want default %v", got.Status, domain.TaskStatusToDo)
	}
	// The bare date doubles as the task's start date
	if got.StartDate != "2026-09-05" || got.Date != "2026-09-05" {
		t.Errorf("dates = (%q, %q), want both 2026-09-05", got.Date, got.StartDate)
	}
}

func TestEventService_CreateEvent_Meeting(t *testing.T) {
	userID := uuid.New()
	alice := uuid.New().String()
	bob := uuid.New().String()

	var stored *domain.Event
	eventRepo := &MockEventRepository{
		CreateFunc: func(ctx context.Context, event *domain.Event) error {
			event.ID = uuid.New()
			stored = event
			return nil
		},
	}
	service := newEventServiceForTest(eventRepo, &MockTaskRepository{})

	got, err := service.CreateEvent(context.Background(), userID, &dto.CreateEventRequest{
		Title:        "Sprint review",
		Type:         domain.EventTypeMeeting,
		Date:         "2026-09-07",
		Participants: []string{alice, bob},
	})
	if err != nil {
		t.Fatalf("CreateEvent() unexpected error = %v", err)
	}
	if stored == nil {
		t.Fatal("meeting was not stored in the events table")
	}

	rsvp := got.Rsvp.Data()
	if len(rsvp) != 2 {
		t.Fatalf("rsvp entries = %d, want 2", len(rsvp))
	}
	for _, p := range []string{alice, bob} {
		if rsvp[p] != domain.RsvpPending {
			t.Errorf("rsvp[%s] = %v, want %v", p, rsvp[p], domain.RsvpPending)
		}
	}
}

func TestEventService_CreateEvent_DateRequired(t *testing.T) {
	service := newEventServiceForTest(&MockEventRepository{}, &MockTaskRepository{})

	_, err := service.CreateEvent(context.Background(), uuid.New(), &dto.CreateEventRequest{
		Title: "Dateless note",
		Type:  domain.EventTypeNote,
	})
	if err == nil {
		t.Fatal("CreateEvent() error = nil, want validation error")
	}
	if appErr, ok := err.(*response.AppError); !ok || appErr.Code != response.ErrCodeValidation {
		t.Errorf("CreateEvent() error = %v, want code %v", err, response.ErrCodeValidation)
	}
}

func TestEventService_GetEvent_TaskFallback(t *testing.T) {
	taskID := uuid.New()

	eventRepo := &MockEventRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	taskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return &domain.Task{
				BaseModel: domain.BaseModel{ID: taskID},
				Title:     "Projected task",
				Status:    domain.TaskStatusInProgress,
				StartDate: "2026-09-01",
			}, nil
		},
	}
	service := newEventServiceForTest(eventRepo, taskRepo)

	got, err := service.GetEvent(context.Background(), taskID)
	if err != nil {
		t.Fatalf("GetEvent() unexpected error = %v", err)
	}
	if got.ID != taskID || got.Type != domain.EventTypeTask {
		t.Errorf("GetEvent() = (%v, %v), want task projection under %v", got.ID, got.Type, taskID)
	}
}

func TestEventService_ListEvents_MergesTaskProjections(t *testing.T) {
	meetingID := uuid.New()
	taskID := uuid.New()

	eventRepo := &MockEventRepository{
		FindAllFunc: func(ctx context.Context) ([]*domain.Event, error) {
			return []*domain.Event{
				{BaseModel: domain.BaseModel{ID: meetingID}, Title: "Standup", Type: domain.EventTypeMeeting, Date: "2026-09-02"},
			}, nil
		},
	}
	taskRepo := &MockTaskRepository{
		FindAllFunc: func(ctx context.Context) ([]*domain.Task, error) {
			return []*domain.Task{
				{BaseModel: domain.BaseModel{ID: taskID}, Title: "Fix flaky test", StartDate: "2026-09-03"},
			}, nil
		},
	}
	service := newEventServiceForTest(eventRepo, taskRepo)

	got, err := service.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents() unexpected error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListEvents() returned %d entries, want 2", len(got))
	}
	if got[0].ID != meetingID {
		t.Errorf("first entry = %v, want stored meeting %v", got[0].ID, meetingID)
	}
	if got[1].ID != taskID || got[1].Type != domain.EventTypeTask {
		t.Errorf("second entry = (%v, %v), want projected task", got[1].ID, got[1].Type)
	}
}

func TestEventService_UpdateRsvp(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name        string
		status      domain.RsvpStatus
		mockEvent   func(*MockEventRepository)
		wantErr     bool
		wantErrCode string
	}{
		{
			name:   "success: accept a meeting invitation",
			status: domain.RsvpAccepted,
			mockEvent: func(m *MockEventRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
					return &domain.Event{
						BaseModel: domain.BaseModel{ID: eventID},
						Title:     "Planning",
						Type:      domain.EventTypeMeeting,
					}, nil
				}
			},
		},
		{
			name:        "failure: unknown rsvp status",
			status:      domain.RsvpStatus("Maybe"),
			mockEvent:   func(m *MockEventRepository) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:   "failure: rsvp on a non-meeting entry",
			status: domain.RsvpAccepted,
			mockEvent: func(m *MockEventRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
					return &domain.Event{
						BaseModel: domain.BaseModel{ID: eventID},
						Title:     "Dentist",
						Type:      domain.EventTypeAppointment,
					}, nil
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:   "failure: event not found",
			status: domain.RsvpDeclined,
			mockEvent: func(m *MockEventRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			eventRepo := &MockEventRepository{}
			tt.mockEvent(eventRepo)
			service := newEventServiceForTest(eventRepo, &MockTaskRepository{})

			// When
			got, err := service.UpdateRsvp(context.Background(), eventID, userID, tt.status)

			// Then
			if tt.wantErr {
				if err == nil {
					t.Error("UpdateRsvp() error = nil, want error")
					return
				}
				if appErr, ok := err.(*response.AppError); ok {
					if appErr.Code != tt.wantErrCode {
						t.Errorf("UpdateRsvp() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				}
				return
			}
			if err != nil {
				t.Errorf("UpdateRsvp() unexpected error = %v", err)
				return
			}
			if got.Rsvp.Data()[userID.String()] != tt.status {
				t.Errorf("rsvp[%s] = %v, want %v", userID, got.Rsvp.Data()[userID.String()], tt.status)
			}
		})
	}
}

func TestEventService_DeleteEvent_TaskFallback(t *testing.T) {
	taskID := uuid.New()

	eventRepo := &MockEventRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	taskDeleted := false
	taskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return &domain.Task{BaseModel: domain.BaseModel{ID: taskID}}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			taskDeleted = true
			return nil
		},
	}
	service := newEventServiceForTest(eventRepo, taskRepo)

	if err := service.DeleteEvent(context.Background(), taskID); err != nil {
		t.Fatalf("DeleteEvent() unexpected error = %v", err)
	}
	if !taskDeleted {
		t.Error("deleting a task-typed entry did not delete the task")
	}
}

func TestEventService_DeleteEvent_NotFoundAnywhere(t *testing.T) {
	eventRepo := &MockEventRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	taskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := newEventServiceForTest(eventRepo, taskRepo)

	err := service.DeleteEvent(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("DeleteEvent() error = nil, want not found")
	}
	if appErr, ok := err.(*response.AppError); !ok || appErr.Code != response.ErrCodeNotFound {
		t.Errorf("DeleteEvent() error = %v, want code %v", err, response.ErrCodeNotFound)
	}
}
