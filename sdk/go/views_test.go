package hubsdk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilization(t *testing.T) {
	tests := []struct {
		name     string
		resource Resource
		want     float64
	}{
		{"half loaded", Resource{WeeklyHours: 40, CurrentLoad: 20}, 0.5},
		{"overbooked", Resource{WeeklyHours: 40, CurrentLoad: 50}, 1.25},
		{"no declared capacity", Resource{WeeklyHours: 0, CurrentLoad: 10}, 0},
		{"negative capacity", Resource{WeeklyHours: -5, CurrentLoad: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Utilization(tt.resource), 1e-9)
		})
	}
}

func TestProjectHealth(t *testing.T) {
	// 2026-09-15 sits 14 days into the 20-day window below, elapsed 0.70
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	projectID := "p1"
	otherID := "p2"

	scheduled := func(progress int) Project {
		return Project{
			ID:        projectID,
			Status:    ProjectActive,
			StartDate: "2026-09-01",
			EndDate:   "2026-09-21",
			Progress:  progress,
		}
	}

	tests := []struct {
		name    string
		project Project
		tasks   []Task
		want    string
	}{
		{
			name:    "completed projects are always green",
			project: Project{ID: projectID, Status: ProjectCompleted, Progress: 10, StartDate: "2026-01-01", EndDate: "2026-02-01"},
			want:    HealthGreen,
		},
		{
			name:    "on track",
			project: scheduled(65),
			want:    HealthGreen,
		},
		{
			name:    "progress lags elapsed by more than a tenth",
			project: scheduled(55),
			want:    HealthYellow,
		},
		{
			name:    "progress lags elapsed by more than a quarter",
			project: scheduled(40),
			want:    HealthRed,
		},
		{
			name:    "overdue high priority task forces red",
			project: scheduled(90),
			tasks: []Task{
				{ID: "t1", ProjectID: &projectID, Priority: PriorityHigh, Status: TaskInProgress, EndDate: "2026-09-10"},
			},
			want: HealthRed,
		},
		{
			name:    "overdue medium task forces yellow",
			project: scheduled(90),
			tasks: []Task{
				{ID: "t1", ProjectID: &projectID, Priority: PriorityMedium, Status: TaskInProgress, EndDate: "2026-09-10"},
			},
			want: HealthYellow,
		},
		{
			name:    "done tasks are never overdue",
			project: scheduled(90),
			tasks: []Task{
				{ID: "t1", ProjectID: &projectID, Priority: PriorityHigh, Status: TaskDone, EndDate: "2026-09-10"},
			},
			want: HealthGreen,
		},
		{
			name:    "a task on its due day is not yet overdue",
			project: scheduled(90),
			tasks: []Task{
				{ID: "t1", ProjectID: &projectID, Priority: PriorityHigh, Status: TaskInProgress, EndDate: "2026-09-15"},
			},
			want: HealthGreen,
		},
		{
			name:    "a task due yesterday is already overdue",
			project: scheduled(90),
			tasks: []Task{
				{ID: "t1", ProjectID: &projectID, Priority: PriorityHigh, Status: TaskInProgress, EndDate: "2026-09-14"},
			},
			want: HealthRed,
		},
		{
			name:    "other projects' tasks are ignored",
			project: scheduled(90),
			tasks: []Task{
				{ID: "t1", ProjectID: &otherID, Priority: PriorityHigh, Status: TaskInProgress, EndDate: "2026-09-01"},
			},
			want: HealthGreen,
		},
		{
			name:    "unusable schedule falls back to task signals only",
			project: Project{ID: projectID, Status: ProjectActive, Progress: 0},
			want:    HealthGreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectHealth(tt.project, tt.tasks, now))
		})
	}
}

func TestCalendarEntries(t *testing.T) {
	projectID := "p1"
	tasks := []Task{
		{ID: "t1", Title: "Scheduled", StartDate: "2026-09-01", EndDate: "2026-09-05", Status: TaskInProgress, ProjectID: &projectID, Progress: 30},
		{ID: "t2", Title: "End date only", EndDate: "2026-09-08", Status: TaskToDo},
	}

	entries := CalendarEntries(tasks)
	require.Len(t, entries, 2)

	assert.Equal(t, "t1", entries[0].ID)
	assert.Equal(t, EventTypeTask, entries[0].Type)
	assert.Equal(t, "2026-09-01", entries[0].Date)
	assert.Equal(t, 30, entries[0].Progress)
	assert.Equal(t, &projectID, entries[0].ProjectID)

	// Without a start date the entry lands on the task's end date
	assert.Equal(t, "2026-09-08", entries[1].Date)
	assert.Equal(t, TaskToDo, entries[1].Status)
}
