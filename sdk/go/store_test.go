package hubsdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
)

var listEndpoints = []string{
	"projects", "tasks", "events", "ideas", "resources", "departments",
	"comments", "evaluations", "purchase-requests", "invoices",
	"notifications", "announcements", "feedback", "performance-evaluations",
}

// newStoreServer serves an empty array for every collection the store loads;
// overrides win for the patterns they name.
func newStoreServer(t *testing.T, overrides map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, h := range overrides {
		mux.HandleFunc(pattern, h)
	}
	for _, c := range listEndpoints {
		pattern := "GET /" + c
		if _, ok := overrides[pattern]; ok {
			continue
		}
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []struct{}{})
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func loadedStore(t *testing.T, overrides map[string]http.HandlerFunc) *DomainStore {
	t.Helper()
	srv := newStoreServer(t, overrides)
	store := NewDomainStore(New(srv.URL))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	return store
}

func TestDomainStore_Load(t *testing.T) {
	store := loadedStore(t, map[string]http.HandlerFunc{
		"GET /projects": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Project{{ID: "p1", Name: "Platform"}})
		},
		"GET /tasks": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Task{{ID: "t1", Title: "Ship it"}})
		},
		"GET /notifications": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Notification{{ID: "n1", Message: "hello"}, {ID: "n2", Message: "world"}})
		},
	})

	if got := store.Projects(); len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("Projects() = %v, want [p1]", got)
	}
	if got := store.Tasks(); len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("Tasks() = %v, want [t1]", got)
	}
	if got := store.Notifications(); len(got) != 2 {
		t.Errorf("Notifications() = %v, want 2 entries", got)
	}
	if got := store.Departments(); len(got) != 0 {
		t.Errorf("Departments() = %v, want empty", got)
	}
}

func TestDomainStore_Load_FirstErrorSurfaces(t *testing.T) {
	srv := newStoreServer(t, map[string]http.HandlerFunc{
		"GET /ideas": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, errorBody{
				Error:  "Failed to list ideas",
				Detail: "Failed to list ideas",
				Code:   "INTERNAL_ERROR",
			})
		},
	})
	store := NewDomainStore(New(srv.URL))

	err := store.Load(context.Background())
	if err == nil {
		t.Fatal("Load() error = nil, want the ideas failure")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Load() error = %T, want *APIError", err)
	}
	if apiErr.Message != "Failed to list ideas" || apiErr.Code != "INTERNAL_ERROR" {
		t.Errorf("Load() error = %+v, want the server's message and code", apiErr)
	}
}

func TestDomainStore_AddTask_ProjectsOntoCalendar(t *testing.T) {
	store := loadedStore(t, map[string]http.HandlerFunc{
		"POST /tasks": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, Task{
				ID:        "t9",
				Title:     "Refactor importer",
				Status:    TaskToDo,
				Priority:  PriorityHigh,
				StartDate: "2026-09-10",
				EndDate:   "2026-09-20",
			})
		},
	})

	task, err := store.AddTask(context.Background(), map[string]string{"title": "Refactor importer"})
	if err != nil {
		t.Fatalf("AddTask() unexpected error = %v", err)
	}
	if task.ID != "t9" {
		t.Fatalf("AddTask() id = %v, want t9", task.ID)
	}

	events := store.Events()
	if len(events) != 1 {
		t.Fatalf("Events() has %d entries, want the task projection", len(events))
	}
	e := events[0]
	if e.ID != task.ID || e.Type != EventTypeTask {
		t.Errorf("projection = (%v, %v), want (t9, %v)", e.ID, e.Type, EventTypeTask)
	}
	if e.Date != "2026-09-10" || e.EndDate != "2026-09-20" {
		t.Errorf("projection dates = (%v, %v), want the task's schedule", e.Date, e.EndDate)
	}
}

func TestDomainStore_UpdateTaskStatus_RefreshesProjection(t *testing.T) {
	store := loadedStore(t, map[string]http.HandlerFunc{
		"GET /tasks": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Task{{ID: "t1", Title: "Tracked", Status: TaskToDo, StartDate: "2026-09-01"}})
		},
		"GET /events": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Event{{ID: "t1", Title: "Tracked", Type: EventTypeTask, Date: "2026-09-01", Status: TaskToDo}})
		},
		"PATCH /tasks/{id}/status": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, Task{ID: "t1", Title: "Tracked", Status: TaskDone, StartDate: "2026-09-01"})
		},
	})

	if _, err := store.UpdateTaskStatus(context.Background(), "t1", TaskDone); err != nil {
		t.Fatalf("UpdateTaskStatus() unexpected error = %v", err)
	}

	tasks := store.Tasks()
	events := store.Events()
	if len(tasks) != 1 || len(events) != 1 {
		t.Fatalf("mirror sizes = (%d, %d), want (1, 1)", len(tasks), len(events))
	}
	if tasks[0].Status != TaskDone {
		t.Errorf("task status = %v, want %v", tasks[0].Status, TaskDone)
	}
	if events[0].Status != TaskDone {
		t.Errorf("projection status = %v, want %v", events[0].Status, TaskDone)
	}
}

func TestDomainStore_AddEvent_TaskTypedMirrorsTask(t *testing.T) {
	store := loadedStore(t, map[string]http.HandlerFunc{
		"POST /events": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, Event{
				ID:        "t5",
				Title:     "Calendar-born task",
				Type:      EventTypeTask,
				Date:      "2026-10-01",
				StartDate: "2026-10-01",
				Status:    TaskToDo,
			})
		},
	})

	event, err := store.AddEvent(context.Background(), map[string]string{"title": "Calendar-born task", "type": EventTypeTask})
	if err != nil {
		t.Fatalf("AddEvent() unexpected error = %v", err)
	}

	tasks := store.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("Tasks() has %d entries, want the mirrored task", len(tasks))
	}
	if tasks[0].ID != event.ID || tasks[0].StartDate != "2026-10-01" {
		t.Errorf("mirrored task = %+v, want id %v starting 2026-10-01", tasks[0], event.ID)
	}
}

func TestDomainStore_DeleteTask_RemovesProjection(t *testing.T) {
	store := loadedStore(t, map[string]http.HandlerFunc{
		"GET /tasks": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Task{{ID: "t1", Title: "Doomed", StartDate: "2026-09-01"}})
		},
		"GET /events": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Event{
				{ID: "t1", Title: "Doomed", Type: EventTypeTask, Date: "2026-09-01"},
				{ID: "m1", Title: "Standup", Type: EventTypeMeeting, Date: "2026-09-02"},
			})
		},
		"DELETE /tasks/{id}": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	if err := store.DeleteTask(context.Background(), "t1"); err != nil {
		t.Fatalf("DeleteTask() unexpected error = %v", err)
	}
	if got := store.Tasks(); len(got) != 0 {
		t.Errorf("Tasks() = %v, want empty", got)
	}
	events := store.Events()
	if len(events) != 1 || events[0].ID != "m1" {
		t.Errorf("Events() = %v, want only the meeting to survive", events)
	}
}

func TestDomainStore_UpdateRsvp(t *testing.T) {
	meeting := Event{ID: "m1", Title: "Review", Type: EventTypeMeeting, Date: "2026-09-03", Rsvp: map[string]string{"u2": RsvpPending}}

	t.Run("success applies the server copy", func(t *testing.T) {
		store := loadedStore(t, map[string]http.HandlerFunc{
			"GET /events": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, []Event{meeting})
			},
			"PATCH /events/{id}/rsvp": func(w http.ResponseWriter, r *http.Request) {
				updated := meeting
				updated.Rsvp = map[string]string{"u2": RsvpPending, "u1": RsvpAccepted}
				writeJSON(w, http.StatusOK, updated)
			},
		})

		got, err := store.UpdateRsvp(context.Background(), "m1", "u1", RsvpAccepted)
		if err != nil {
			t.Fatalf("UpdateRsvp() unexpected error = %v", err)
		}
		if got.Rsvp["u1"] != RsvpAccepted {
			t.Errorf("rsvp[u1] = %v, want %v", got.Rsvp["u1"], RsvpAccepted)
		}
		if store.Events()[0].Rsvp["u1"] != RsvpAccepted {
			t.Error("mirror did not adopt the server copy")
		}
	})

	t.Run("rejection rolls the mirror back", func(t *testing.T) {
		store := loadedStore(t, map[string]http.HandlerFunc{
			"GET /events": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, []Event{meeting})
			},
			"PATCH /events/{id}/rsvp": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid RSVP status", Code: "VALIDATION_ERROR"})
			},
		})

		if _, err := store.UpdateRsvp(context.Background(), "m1", "u1", "Maybe"); err == nil {
			t.Fatal("UpdateRsvp() error = nil, want rejection")
		}
		rsvp := store.Events()[0].Rsvp
		if _, present := rsvp["u1"]; present {
			t.Errorf("rsvp = %v, want the optimistic entry rolled back", rsvp)
		}
		if rsvp["u2"] != RsvpPending {
			t.Errorf("rsvp[u2] = %v, want untouched %v", rsvp["u2"], RsvpPending)
		}
	})
}

func TestDomainStore_VoteOnComment(t *testing.T) {
	stored := Comment{ID: "c1", Text: "Vote on me", Votes: map[string]string{"u1": VoteSupports}}

	t.Run("repeated vote is removed optimistically", func(t *testing.T) {
		store := loadedStore(t, map[string]http.HandlerFunc{
			"GET /comments": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, []Comment{stored})
			},
			"PATCH /comments/{id}/vote": func(w http.ResponseWriter, r *http.Request) {
				updated := stored
				updated.Votes = map[string]string{}
				writeJSON(w, http.StatusOK, updated)
			},
		})

		got, err := store.VoteOnComment(context.Background(), "c1", "u1", VoteSupports)
		if err != nil {
			t.Fatalf("VoteOnComment() unexpected error = %v", err)
		}
		if len(got.Votes) != 0 {
			t.Errorf("votes = %v, want the toggle to clear them", got.Votes)
		}
	})

	t.Run("rejection rolls the mirror back", func(t *testing.T) {
		store := loadedStore(t, map[string]http.HandlerFunc{
			"GET /comments": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, []Comment{stored})
			},
			"PATCH /comments/{id}/vote": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid vote", Code: "VALIDATION_ERROR"})
			},
		})

		if _, err := store.VoteOnComment(context.Background(), "c1", "u3", "Meh"); err == nil {
			t.Fatal("VoteOnComment() error = nil, want rejection")
		}
		votes := store.Comments()[0].Votes
		if len(votes) != 1 || votes["u1"] != VoteSupports {
			t.Errorf("votes = %v, want the prior single vote restored", votes)
		}
	})
}

func TestDomainStore_DeleteDepartment_LocalGuard(t *testing.T) {
	deptID := "d1"

	t.Run("occupied department never reaches the network", func(t *testing.T) {
		store := loadedStore(t, map[string]http.HandlerFunc{
			"GET /departments": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, []Department{{ID: deptID, Name: "Engineering"}})
			},
			"GET /resources": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, []Resource{{ID: "r1", Name: "Deniz", DepartmentID: &deptID}})
			},
			"DELETE /departments/{id}": func(w http.ResponseWriter, r *http.Request) {
				t.Error("delete request was sent despite assigned resources")
				w.WriteHeader(http.StatusNoContent)
			},
		})

		err := store.DeleteDepartment(context.Background(), deptID)
		if !errors.Is(err, ErrDepartmentInUse) {
			t.Fatalf("DeleteDepartment() error = %v, want ErrDepartmentInUse", err)
		}
		if len(store.Departments()) != 1 {
			t.Error("department vanished from the mirror")
		}
	})

	t.Run("empty department is deleted", func(t *testing.T) {
		store := loadedStore(t, map[string]http.HandlerFunc{
			"GET /departments": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, []Department{{ID: deptID, Name: "Archive"}})
			},
			"DELETE /departments/{id}": func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
		})

		if err := store.DeleteDepartment(context.Background(), deptID); err != nil {
			t.Fatalf("DeleteDepartment() unexpected error = %v", err)
		}
		if len(store.Departments()) != 0 {
			t.Error("department survived deletion in the mirror")
		}
	})
}

func TestDomainStore_DeleteIdea_DetachesCalendarEntries(t *testing.T) {
	ideaRef := "i1"
	store := loadedStore(t, map[string]http.HandlerFunc{
		"GET /ideas": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Idea{{ID: ideaRef, Name: "Old idea"}})
		},
		"GET /events": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Event{
				{ID: "e1", Title: "Kickoff", Type: EventTypeMeeting, Date: "2026-09-01", IdeaID: &ideaRef},
				{ID: "e2", Title: "Offsite", Type: EventTypeEvent, Date: "2026-09-02"},
			})
		},
		"DELETE /ideas/{id}": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	if err := store.DeleteIdea(context.Background(), ideaRef); err != nil {
		t.Fatalf("DeleteIdea() unexpected error = %v", err)
	}
	if len(store.Ideas()) != 0 {
		t.Error("idea survived deletion in the mirror")
	}
	events := store.Events()
	if len(events) != 2 {
		t.Fatalf("Events() has %d entries, want both kept", len(events))
	}
	for _, e := range events {
		if e.IdeaID != nil {
			t.Errorf("event %s still references the deleted idea", e.ID)
		}
	}
}

func TestDomainStore_AddIdea_PrependsAndAwardsBadge(t *testing.T) {
	nextID := 0
	store := loadedStore(t, map[string]http.HandlerFunc{
		"GET /ideas": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Idea{{ID: "i0", Name: "Seed idea", AuthorID: "r9"}})
		},
		"GET /resources": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Resource{{ID: "r1", Name: "Deniz"}})
		},
		"POST /ideas": func(w http.ResponseWriter, r *http.Request) {
			nextID++
			writeJSON(w, http.StatusCreated, Idea{ID: fmt.Sprintf("i%d", nextID), Name: "Fresh", AuthorID: "r1"})
		},
	})

	if _, err := store.AddIdea(context.Background(), map[string]string{"name": "Fresh"}); err != nil {
		t.Fatalf("AddIdea() unexpected error = %v", err)
	}

	ideas := store.Ideas()
	if len(ideas) != 2 || ideas[0].ID != "i1" {
		t.Errorf("Ideas() = %v, want the new idea first", ideas)
	}

	badges := store.Resources()[0].EarnedBadges
	if !slices.Contains(badges, BadgeIdeaStarter) {
		t.Errorf("badges = %v, want %s awarded", badges, BadgeIdeaStarter)
	}

	// A second idea from the same author must not duplicate the badge
	if _, err := store.AddIdea(context.Background(), map[string]string{"name": "Fresher"}); err != nil {
		t.Fatalf("AddIdea() unexpected error = %v", err)
	}
	badges = store.Resources()[0].EarnedBadges
	if count := countOf(badges, BadgeIdeaStarter); count != 1 {
		t.Errorf("badge appears %d times, want exactly once", count)
	}
}

func TestDomainStore_ConvertIdeaToProject(t *testing.T) {
	store := loadedStore(t, map[string]http.HandlerFunc{
		"GET /ideas": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Idea{{ID: "i1", Name: "Wiki", Status: IdeaEvaluating}})
		},
		"POST /ideas/{id}/convert": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, Project{ID: "p1", Name: "Wiki", Status: ProjectPlanning, Color: "#6366F1"})
		},
	})

	project, err := store.ConvertIdeaToProject(context.Background(), "i1")
	if err != nil {
		t.Fatalf("ConvertIdeaToProject() unexpected error = %v", err)
	}
	if project.Status != ProjectPlanning {
		t.Errorf("project status = %v, want %v", project.Status, ProjectPlanning)
	}
	if got := store.Projects(); len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("Projects() = %v, want [p1]", got)
	}

	ideas := store.Ideas()
	if len(ideas) != 1 {
		t.Fatal("idea vanished after conversion")
	}
	if ideas[0].Status != IdeaApproved {
		t.Errorf("idea status = %v, want %v", ideas[0].Status, IdeaApproved)
	}
}

func TestDomainStore_FailedMutationLeavesMirrorUntouched(t *testing.T) {
	store := loadedStore(t, map[string]http.HandlerFunc{
		"POST /projects": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, errorBody{Error: "Project code already in use", Code: "CONFLICT"})
		},
	})

	_, err := store.AddProject(context.Background(), map[string]string{"name": "Copycat"})
	if err == nil {
		t.Fatal("AddProject() error = nil, want conflict")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusConflict {
		t.Errorf("AddProject() error = %v, want 409 APIError", err)
	}
	if got := store.Projects(); len(got) != 0 {
		t.Errorf("Projects() = %v, want empty after the failed create", got)
	}
}

func TestDomainStore_AddEvaluation_Prepends(t *testing.T) {
	projectRef := "p1"
	store := loadedStore(t, map[string]http.HandlerFunc{
		"GET /evaluations": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Evaluation{{ID: "ev1", Text: "older", ProjectID: &projectRef}})
		},
		"POST /evaluations": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, Evaluation{ID: "ev2", Text: "newest", Vote: VoteSupports, ProjectID: &projectRef})
		},
	})

	if _, err := store.AddEvaluation(context.Background(), map[string]string{"text": "newest"}); err != nil {
		t.Fatalf("AddEvaluation() unexpected error = %v", err)
	}
	got := store.Evaluations()
	if len(got) != 2 || got[0].ID != "ev2" {
		t.Errorf("Evaluations() = %v, want newest first", got)
	}
}

func TestDomainStore_NotificationsPrependAndMarkAllRead(t *testing.T) {
	store := loadedStore(t, map[string]http.HandlerFunc{
		"GET /notifications": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []Notification{{ID: "n1", Message: "older"}})
		},
		"POST /notifications": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, Notification{ID: "n2", Message: "newest"})
		},
		"POST /notifications/read-all": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]int{"updated": 2})
		},
	})

	if _, err := store.AddNotification(context.Background(), map[string]string{"message": "newest"}); err != nil {
		t.Fatalf("AddNotification() unexpected error = %v", err)
	}
	got := store.Notifications()
	if len(got) != 2 || got[0].ID != "n2" {
		t.Errorf("Notifications() = %v, want newest first", got)
	}

	if err := store.MarkAllNotificationsRead(context.Background()); err != nil {
		t.Fatalf("MarkAllNotificationsRead() unexpected error = %v", err)
	}
	for _, n := range store.Notifications() {
		if !n.Read {
			t.Errorf("notification %s still unread", n.ID)
		}
	}
}

func countOf(list []string, v string) int {
	n := 0
	for _, s := range list {
		if s == v {
			n++
		}
	}
	return n
}
