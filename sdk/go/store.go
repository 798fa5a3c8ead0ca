package hubsdk

import (
	"context"
	"errors"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrDepartmentInUse is returned by DeleteDepartment when a resource still
// references the department. The guard runs locally; no network call is made.
var ErrDepartmentInUse = errors.New("department still has resources assigned")

// DomainStore is an in-memory mirror of the server-side collections. Every
// mutation sends the network request first and applies the server-returned
// record to the mirror, so a failed call leaves the mirror untouched. The two
// exceptions are UpdateRsvp and VoteOnComment, which apply optimistically and
// roll back on failure.
//
// Tasks are the single source of truth for Task-typed calendar entries: the
// events collection carries a projection of every task, kept field-equal on
// each mutation path that touches either side.
type DomainStore struct {
	client *Client

	mu                     sync.RWMutex
	projects               []Project
	tasks                  []Task
	events                 []Event
	ideas                  []Idea
	resources              []Resource
	departments            []Department
	comments               []Comment
	evaluations            []Evaluation
	purchaseRequests       []PurchaseRequest
	invoices               []Invoice
	notifications          []Notification
	announcements          []Announcement
	feedback               []Feedback
	performanceEvaluations []PerformanceEvaluation
}

// NewDomainStore creates an empty store backed by the given client.
func NewDomainStore(client *Client) *DomainStore {
	return &DomainStore{client: client}
}

// Load fetches every collection in parallel. The first error is returned;
// collections that loaded before the failure keep their data (no rollback).
func (s *DomainStore) Load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		projects, err := s.client.ListProjects(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.projects = projects
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		tasks, err := s.client.ListTasks(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.tasks = tasks
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		events, err := s.client.ListEvents(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.events = events
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		ideas, err := s.client.ListIdeas(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.ideas = ideas
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		resources, err := s.client.ListResources(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.resources = resources
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		departments, err := s.client.ListDepartments(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.departments = departments
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		comments, err := s.client.ListComments(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.comments = comments
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		evaluations, err := s.client.ListEvaluations(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.evaluations = evaluations
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		requests, err := s.client.ListPurchaseRequests(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.purchaseRequests = requests
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		invoices, err := s.client.ListInvoices(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.invoices = invoices
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		notifications, err := s.client.ListNotifications(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.notifications = notifications
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		announcements, err := s.client.ListAnnouncements(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.announcements = announcements
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		feedback, err := s.client.ListFeedback(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.feedback = feedback
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		evaluations, err := s.client.ListPerformanceEvaluations(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.performanceEvaluations = evaluations
		s.mu.Unlock()
		return nil
	})

	return g.Wait()
}

// Snapshot accessors. Each returns a copy of the collection slice; the
// records themselves are values, so callers can't mutate the mirror.

func (s *DomainStore) Projects() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projects)
}

func (s *DomainStore) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

func (s *DomainStore) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

func (s *DomainStore) Ideas() []Idea {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ideas)
}

func (s *DomainStore) Resources() []Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.resources)
}

func (s *DomainStore) Departments() []Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.departments)
}

func (s *DomainStore) Comments() []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.comments)
}

func (s *DomainStore) Evaluations() []Evaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.evaluations)
}

func (s *DomainStore) PurchaseRequests() []PurchaseRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.purchaseRequests)
}

func (s *DomainStore) Invoices() []Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.invoices)
}

func (s *DomainStore) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notifications)
}

func (s *DomainStore) Announcements() []Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.announcements)
}

func (s *DomainStore) Feedback() []Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.feedback)
}

func (s *DomainStore) PerformanceEvaluations() []PerformanceEvaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.performanceEvaluations)
}

// replaceByID swaps the record with the given id in place; a miss is a no-op.
func replaceByID[T any](list []T, id string, item T, idOf func(T) string) []T {
	for i := range list {
		if idOf(list[i]) == id {
			list[i] = item
			break
		}
	}
	return list
}

func removeByID[T any](list []T, id string, idOf func(T) string) []T {
	for i := range list {
		if idOf(list[i]) == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

func findByID[T any](list []T, id string, idOf func(T) string) (T, bool) {
	for i := range list {
		if idOf(list[i]) == id {
			return list[i], true
		}
	}
	var zero T
	return zero, false
}

func projectID(p Project) string                      { return p.ID }
func taskID(t Task) string                            { return t.ID }
func eventID(e Event) string                          { return e.ID }
func ideaID(i Idea) string                            { return i.ID }
func resourceID(r Resource) string                    { return r.ID }
func departmentID(d Department) string                { return d.ID }
func commentID(c Comment) string                      { return c.ID }
func evaluationID(e Evaluation) string                { return e.ID }
func purchaseRequestID(p PurchaseRequest) string      { return p.ID }
func invoiceID(i Invoice) string                      { return i.ID }
func notificationID(n Notification) string            { return n.ID }
func announcementID(a Announcement) string            { return a.ID }
func feedbackID(f Feedback) string                    { return f.ID }
func perfEvaluationID(p PerformanceEvaluation) string { return p.ID }

// eventFromTask builds the calendar projection of a task, sharing its id.
func eventFromTask(t Task) Event {
	date := t.StartDate
	if date == "" {
		date = t.EndDate
	}
	return Event{
		ID:             t.ID,
		Title:          t.Title,
		Date:           date,
		Type:           EventTypeTask,
		Description:    t.Description,
		Tags:           t.Tags,
		Priority:       t.Priority,
		ProjectID:      t.ProjectID,
		Files:          t.Files,
		AssigneeID:     t.AssigneeID,
		Status:         t.Status,
		ReporterID:     t.ReporterID,
		Category:       t.Category,
		EstimatedHours: t.EstimatedHours,
		SpentHours:     t.SpentHours,
		StartDate:      t.StartDate,
		EndDate:        t.EndDate,
		CompletionDate: t.CompletionDate,
		Dependencies:   t.Dependencies,
		Progress:       t.Progress,
		Notes:          t.Notes,
	}
}

// taskFromEvent rebuilds the task record mirrored by a Task-typed entry.
func taskFromEvent(e Event) Task {
	startDate := e.StartDate
	if startDate == "" {
		startDate = e.Date
	}
	return Task{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Status:         e.Status,
		Priority:       e.Priority,
		AssigneeID:     e.AssigneeID,
		ReporterID:     e.ReporterID,
		ProjectID:      e.ProjectID,
		Category:       e.Category,
		EstimatedHours: e.EstimatedHours,
		SpentHours:     e.SpentHours,
		StartDate:      startDate,
		EndDate:        e.EndDate,
		CompletionDate: e.CompletionDate,
		Dependencies:   e.Dependencies,
		Tags:           e.Tags,
		Progress:       e.Progress,
		Notes:          e.Notes,
		Files:          e.Files,
	}
}

// upsertTaskProjection replaces the task's calendar entry, or appends one if
// the mirror has none yet.
func (s *DomainStore) upsertTaskProjection(t Task) {
	projection := eventFromTask(t)
	if _, ok := findByID(s.events, t.ID, eventID); ok {
		s.events = replaceByID(s.events, t.ID, projection, eventID)
		return
	}
	s.events = append(s.events, projection)
}

// Projects

func (s *DomainStore) AddProject(ctx context.Context, payload any) (Project, error) {
	project, err := s.client.CreateProject(ctx, payload)
	if err != nil {
		return Project{}, err
	}
	s.mu.Lock()
	s.projects = append(s.projects, project)
	s.mu.Unlock()
	return project, nil
}

func (s *DomainStore) UpdateProject(ctx context.Context, id string, patch any) (Project, error) {
	project, err := s.client.UpdateProject(ctx, id, patch)
	if err != nil {
		return Project{}, err
	}
	s.mu.Lock()
	s.projects = replaceByID(s.projects, id, project, projectID)
	s.mu.Unlock()
	return project, nil
}

func (s *DomainStore) DeleteProject(ctx context.Context, id string) error {
	if err := s.client.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.projects = removeByID(s.projects, id, projectID)
	s.mu.Unlock()
	return nil
}

// Tasks

func (s *DomainStore) AddTask(ctx context.Context, payload any) (Task, error) {
	task, err := s.client.CreateTask(ctx, payload)
	if err != nil {
		return Task{}, err
	}
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.upsertTaskProjection(task)
	s.mu.Unlock()
	return task, nil
}

func (s *DomainStore) UpdateTask(ctx context.Context, id string, patch any) (Task, error) {
	task, err := s.client.UpdateTask(ctx, id, patch)
	if err != nil {
		return Task{}, err
	}
	s.applyTask(task)
	return task, nil
}

// UpdateTaskStatus moves a task to another kanban column. The calendar
// projection with the same id is refreshed in the same critical section.
func (s *DomainStore) UpdateTaskStatus(ctx context.Context, id, status string) (Task, error) {
	task, err := s.client.UpdateTaskStatus(ctx, id, status)
	if err != nil {
		return Task{}, err
	}
	s.applyTask(task)
	return task, nil
}

// UpdateTaskProgress sets a task's completion percentage.
func (s *DomainStore) UpdateTaskProgress(ctx context.Context, id string, progress int) (Task, error) {
	task, err := s.client.UpdateTaskProgress(ctx, id, progress)
	if err != nil {
		return Task{}, err
	}
	s.applyTask(task)
	return task, nil
}

func (s *DomainStore) applyTask(task Task) {
	s.mu.Lock()
	s.tasks = replaceByID(s.tasks, task.ID, task, taskID)
	s.upsertTaskProjection(task)
	s.mu.Unlock()
}

func (s *DomainStore) DeleteTask(ctx context.Context, id string) error {
	if err := s.client.DeleteTask(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.tasks = removeByID(s.tasks, id, taskID)
	s.events = removeByID(s.events, id, eventID)
	s.mu.Unlock()
	return nil
}

// Events

// AddEvent creates a calendar entry. Task-typed entries come back as
// projections of a server-created task, so the mirror gains a task record
// with the same id in the same critical section.
func (s *DomainStore) AddEvent(ctx context.Context, payload any) (Event, error) {
	event, err := s.client.CreateEvent(ctx, payload)
	if err != nil {
		return Event{}, err
	}
	s.mu.Lock()
	s.events = append(s.events, event)
	if event.Type == EventTypeTask {
		s.tasks = append(s.tasks, taskFromEvent(event))
	}
	s.mu.Unlock()
	return event, nil
}

func (s *DomainStore) UpdateEvent(ctx context.Context, id string, patch any) (Event, error) {
	event, err := s.client.UpdateEvent(ctx, id, patch)
	if err != nil {
		return Event{}, err
	}
	s.mu.Lock()
	s.events = replaceByID(s.events, id, event, eventID)
	if event.Type == EventTypeTask {
		s.tasks = replaceByID(s.tasks, id, taskFromEvent(event), taskID)
	}
	s.mu.Unlock()
	return event, nil
}

// UpdateRsvp records the user's reply to a meeting invitation. The change is
// applied optimistically and rolled back if the server rejects it.
func (s *DomainStore) UpdateRsvp(ctx context.Context, id, userID, status string) (Event, error) {
	s.mu.Lock()
	prior, ok := findByID(s.events, id, eventID)
	if ok {
		optimistic := prior
		optimistic.Rsvp = cloneStringMap(prior.Rsvp)
		optimistic.Rsvp[userID] = status
		s.events = replaceByID(s.events, id, optimistic, eventID)
	}
	s.mu.Unlock()

	event, err := s.client.UpdateRsvp(ctx, id, status)
	if err != nil {
		if ok {
			s.mu.Lock()
			s.events = replaceByID(s.events, id, prior, eventID)
			s.mu.Unlock()
		}
		return Event{}, err
	}

	s.mu.Lock()
	s.events = replaceByID(s.events, id, event, eventID)
	s.mu.Unlock()
	return event, nil
}

func (s *DomainStore) DeleteEvent(ctx context.Context, id string) error {
	if err := s.client.DeleteEvent(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	if prior, ok := findByID(s.events, id, eventID); ok && prior.Type == EventTypeTask {
		s.tasks = removeByID(s.tasks, id, taskID)
	}
	s.events = removeByID(s.events, id, eventID)
	s.mu.Unlock()
	return nil
}

// Ideas

// AddIdea prepends the new idea and mirrors the server's badge side effect:
// a first-time author gains the idea starter badge, exactly once.
func (s *DomainStore) AddIdea(ctx context.Context, payload any) (Idea, error) {
	idea, err := s.client.CreateIdea(ctx, payload)
	if err != nil {
		return Idea{}, err
	}
	s.mu.Lock()
	s.ideas = append([]Idea{idea}, s.ideas...)
	if author, ok := findByID(s.resources, idea.AuthorID, resourceID); ok {
		if !slices.Contains(author.EarnedBadges, BadgeIdeaStarter) {
			author.EarnedBadges = append(slices.Clone(author.EarnedBadges), BadgeIdeaStarter)
			s.resources = replaceByID(s.resources, author.ID, author, resourceID)
		}
	}
	s.mu.Unlock()
	return idea, nil
}

func (s *DomainStore) UpdateIdea(ctx context.Context, id string, patch any) (Idea, error) {
	idea, err := s.client.UpdateIdea(ctx, id, patch)
	if err != nil {
		return Idea{}, err
	}
	s.mu.Lock()
	s.ideas = replaceByID(s.ideas, id, idea, ideaID)
	s.mu.Unlock()
	return idea, nil
}

// ConvertIdeaToProject creates a project from an idea and marks the idea
// Approved. The idea itself survives the conversion.
func (s *DomainStore) ConvertIdeaToProject(ctx context.Context, id string) (Project, error) {
	project, err := s.client.ConvertIdea(ctx, id)
	if err != nil {
		return Project{}, err
	}
	s.mu.Lock()
	s.projects = append(s.projects, project)
	if idea, ok := findByID(s.ideas, id, ideaID); ok {
		idea.Status = IdeaApproved
		s.ideas = replaceByID(s.ideas, id, idea, ideaID)
	}
	s.mu.Unlock()
	return project, nil
}

// DeleteIdea removes the idea and clears ideaId on every calendar entry that
// referenced it; the entries themselves are kept, mirroring the server.
func (s *DomainStore) DeleteIdea(ctx context.Context, id string) error {
	if err := s.client.DeleteIdea(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.ideas = removeByID(s.ideas, id, ideaID)
	for i := range s.events {
		if s.events[i].IdeaID != nil && *s.events[i].IdeaID == id {
			s.events[i].IdeaID = nil
		}
	}
	s.mu.Unlock()
	return nil
}

// Resources

func (s *DomainStore) AddResource(ctx context.Context, payload any) (Resource, error) {
	resource, err := s.client.CreateResource(ctx, payload)
	if err != nil {
		return Resource{}, err
	}
	s.mu.Lock()
	s.resources = append(s.resources, resource)
	s.mu.Unlock()
	return resource, nil
}

func (s *DomainStore) UpdateResource(ctx context.Context, id string, patch any) (Resource, error) {
	resource, err := s.client.UpdateResource(ctx, id, patch)
	if err != nil {
		return Resource{}, err
	}
	s.mu.Lock()
	s.resources = replaceByID(s.resources, id, resource, resourceID)
	s.mu.Unlock()
	return resource, nil
}

func (s *DomainStore) DeleteResource(ctx context.Context, id string) error {
	if err := s.client.DeleteResource(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.resources = removeByID(s.resources, id, resourceID)
	s.mu.Unlock()
	return nil
}

// Departments

func (s *DomainStore) AddDepartment(ctx context.Context, payload any) (Department, error) {
	department, err := s.client.CreateDepartment(ctx, payload)
	if err != nil {
		return Department{}, err
	}
	s.mu.Lock()
	s.departments = append(s.departments, department)
	s.mu.Unlock()
	return department, nil
}

func (s *DomainStore) UpdateDepartment(ctx context.Context, id string, patch any) (Department, error) {
	department, err := s.client.UpdateDepartment(ctx, id, patch)
	if err != nil {
		return Department{}, err
	}
	s.mu.Lock()
	s.departments = replaceByID(s.departments, id, department, departmentID)
	s.mu.Unlock()
	return department, nil
}

// DeleteDepartment refuses locally, without a network round trip, while any
// resource still references the department.
func (s *DomainStore) DeleteDepartment(ctx context.Context, id string) error {
	s.mu.RLock()
	for i := range s.resources {
		if s.resources[i].DepartmentID != nil && *s.resources[i].DepartmentID == id {
			s.mu.RUnlock()
			return ErrDepartmentInUse
		}
	}
	s.mu.RUnlock()

	if err := s.client.DeleteDepartment(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.departments = removeByID(s.departments, id, departmentID)
	s.mu.Unlock()
	return nil
}

// Comments

func (s *DomainStore) AddComment(ctx context.Context, payload any) (Comment, error) {
	comment, err := s.client.CreateComment(ctx, payload)
	if err != nil {
		return Comment{}, err
	}
	s.mu.Lock()
	s.comments = append([]Comment{comment}, s.comments...)
	s.mu.Unlock()
	return comment, nil
}

func (s *DomainStore) UpdateComment(ctx context.Context, id string, patch any) (Comment, error) {
	comment, err := s.client.UpdateComment(ctx, id, patch)
	if err != nil {
		return Comment{}, err
	}
	s.mu.Lock()
	s.comments = replaceByID(s.comments, id, comment, commentID)
	s.mu.Unlock()
	return comment, nil
}

// VoteOnComment toggles the user's vote optimistically: repeating the same
// vote removes it. The local change is rolled back if the server rejects it.
func (s *DomainStore) VoteOnComment(ctx context.Context, id, userID, vote string) (Comment, error) {
	s.mu.Lock()
	prior, ok := findByID(s.comments, id, commentID)
	if ok {
		optimistic := prior
		optimistic.Votes = cloneStringMap(prior.Votes)
		if optimistic.Votes[userID] == vote {
			delete(optimistic.Votes, userID)
		} else {
			optimistic.Votes[userID] = vote
		}
		s.comments = replaceByID(s.comments, id, optimistic, commentID)
	}
	s.mu.Unlock()

	comment, err := s.client.VoteOnComment(ctx, id, vote)
	if err != nil {
		if ok {
			s.mu.Lock()
			s.comments = replaceByID(s.comments, id, prior, commentID)
			s.mu.Unlock()
		}
		return Comment{}, err
	}

	s.mu.Lock()
	s.comments = replaceByID(s.comments, id, comment, commentID)
	s.mu.Unlock()
	return comment, nil
}

func (s *DomainStore) DeleteComment(ctx context.Context, id string) error {
	if err := s.client.DeleteComment(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.comments = removeByID(s.comments, id, commentID)
	s.mu.Unlock()
	return nil
}

// Evaluations

func (s *DomainStore) AddEvaluation(ctx context.Context, payload any) (Evaluation, error) {
	evaluation, err := s.client.CreateEvaluation(ctx, payload)
	if err != nil {
		return Evaluation{}, err
	}
	s.mu.Lock()
	s.evaluations = append([]Evaluation{evaluation}, s.evaluations...)
	s.mu.Unlock()
	return evaluation, nil
}

func (s *DomainStore) UpdateEvaluation(ctx context.Context, id string, patch any) (Evaluation, error) {
	evaluation, err := s.client.UpdateEvaluation(ctx, id, patch)
	if err != nil {
		return Evaluation{}, err
	}
	s.mu.Lock()
	s.evaluations = replaceByID(s.evaluations, id, evaluation, evaluationID)
	s.mu.Unlock()
	return evaluation, nil
}

func (s *DomainStore) DeleteEvaluation(ctx context.Context, id string) error {
	if err := s.client.DeleteEvaluation(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.evaluations = removeByID(s.evaluations, id, evaluationID)
	s.mu.Unlock()
	return nil
}

// Purchase requests

func (s *DomainStore) AddPurchaseRequest(ctx context.Context, payload any) (PurchaseRequest, error) {
	request, err := s.client.CreatePurchaseRequest(ctx, payload)
	if err != nil {
		return PurchaseRequest{}, err
	}
	s.mu.Lock()
	s.purchaseRequests = append([]PurchaseRequest{request}, s.purchaseRequests...)
	s.mu.Unlock()
	return request, nil
}

func (s *DomainStore) UpdatePurchaseRequest(ctx context.Context, id string, patch any) (PurchaseRequest, error) {
	request, err := s.client.UpdatePurchaseRequest(ctx, id, patch)
	if err != nil {
		return PurchaseRequest{}, err
	}
	s.mu.Lock()
	s.purchaseRequests = replaceByID(s.purchaseRequests, id, request, purchaseRequestID)
	s.mu.Unlock()
	return request, nil
}

func (s *DomainStore) DeletePurchaseRequest(ctx context.Context, id string) error {
	if err := s.client.DeletePurchaseRequest(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.purchaseRequests = removeByID(s.purchaseRequests, id, purchaseRequestID)
	s.mu.Unlock()
	return nil
}

// Invoices

func (s *DomainStore) AddInvoice(ctx context.Context, payload any) (Invoice, error) {
	invoice, err := s.client.CreateInvoice(ctx, payload)
	if err != nil {
		return Invoice{}, err
	}
	s.mu.Lock()
	s.invoices = append([]Invoice{invoice}, s.invoices...)
	s.mu.Unlock()
	return invoice, nil
}

func (s *DomainStore) UpdateInvoice(ctx context.Context, id string, patch any) (Invoice, error) {
	invoice, err := s.client.UpdateInvoice(ctx, id, patch)
	if err != nil {
		return Invoice{}, err
	}
	s.mu.Lock()
	s.invoices = replaceByID(s.invoices, id, invoice, invoiceID)
	s.mu.Unlock()
	return invoice, nil
}

func (s *DomainStore) DeleteInvoice(ctx context.Context, id string) error {
	if err := s.client.DeleteInvoice(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.invoices = removeByID(s.invoices, id, invoiceID)
	s.mu.Unlock()
	return nil
}

// Notifications

func (s *DomainStore) AddNotification(ctx context.Context, payload any) (Notification, error) {
	notification, err := s.client.CreateNotification(ctx, payload)
	if err != nil {
		return Notification{}, err
	}
	s.mu.Lock()
	s.notifications = append([]Notification{notification}, s.notifications...)
	s.mu.Unlock()
	return notification, nil
}

func (s *DomainStore) MarkNotificationRead(ctx context.Context, id string, read bool) (Notification, error) {
	notification, err := s.client.MarkNotificationRead(ctx, id, read)
	if err != nil {
		return Notification{}, err
	}
	s.mu.Lock()
	s.notifications = replaceByID(s.notifications, id, notification, notificationID)
	s.mu.Unlock()
	return notification, nil
}

func (s *DomainStore) MarkAllNotificationsRead(ctx context.Context) error {
	if err := s.client.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	s.mu.Unlock()
	return nil
}

func (s *DomainStore) DeleteNotification(ctx context.Context, id string) error {
	if err := s.client.DeleteNotification(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.notifications = removeByID(s.notifications, id, notificationID)
	s.mu.Unlock()
	return nil
}

// Announcements

func (s *DomainStore) AddAnnouncement(ctx context.Context, payload any) (Announcement, error) {
	announcement, err := s.client.CreateAnnouncement(ctx, payload)
	if err != nil {
		return Announcement{}, err
	}
	s.mu.Lock()
	s.announcements = append([]Announcement{announcement}, s.announcements...)
	s.mu.Unlock()
	return announcement, nil
}

func (s *DomainStore) UpdateAnnouncement(ctx context.Context, id string, patch any) (Announcement, error) {
	announcement, err := s.client.UpdateAnnouncement(ctx, id, patch)
	if err != nil {
		return Announcement{}, err
	}
	s.mu.Lock()
	s.announcements = replaceByID(s.announcements, id, announcement, announcementID)
	s.mu.Unlock()
	return announcement, nil
}

func (s *DomainStore) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := s.client.DeleteAnnouncement(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.announcements = removeByID(s.announcements, id, announcementID)
	s.mu.Unlock()
	return nil
}

// Feedback

func (s *DomainStore) AddFeedback(ctx context.Context, payload any) (Feedback, error) {
	entry, err := s.client.CreateFeedback(ctx, payload)
	if err != nil {
		return Feedback{}, err
	}
	s.mu.Lock()
	s.feedback = append([]Feedback{entry}, s.feedback...)
	s.mu.Unlock()
	return entry, nil
}

func (s *DomainStore) UpdateFeedback(ctx context.Context, id string, patch any) (Feedback, error) {
	entry, err := s.client.UpdateFeedback(ctx, id, patch)
	if err != nil {
		return Feedback{}, err
	}
	s.mu.Lock()
	s.feedback = replaceByID(s.feedback, id, entry, feedbackID)
	s.mu.Unlock()
	return entry, nil
}

func (s *DomainStore) DeleteFeedback(ctx context.Context, id string) error {
	if err := s.client.DeleteFeedback(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.feedback = removeByID(s.feedback, id, feedbackID)
	s.mu.Unlock()
	return nil
}

// Performance evaluations

func (s *DomainStore) AddPerformanceEvaluation(ctx context.Context, payload any) (PerformanceEvaluation, error) {
	evaluation, err := s.client.CreatePerformanceEvaluation(ctx, payload)
	if err != nil {
		return PerformanceEvaluation{}, err
	}
	s.mu.Lock()
	s.performanceEvaluations = append(s.performanceEvaluations, evaluation)
	s.mu.Unlock()
	return evaluation, nil
}

func (s *DomainStore) UpdatePerformanceEvaluation(ctx context.Context, id string, patch any) (PerformanceEvaluation, error) {
	evaluation, err := s.client.UpdatePerformanceEvaluation(ctx, id, patch)
	if err != nil {
		return PerformanceEvaluation{}, err
	}
	s.mu.Lock()
	s.performanceEvaluations = replaceByID(s.performanceEvaluations, id, evaluation, perfEvaluationID)
	s.mu.Unlock()
	return evaluation, nil
}

func (s *DomainStore) DeletePerformanceEvaluation(ctx context.Context, id string) error {
	if err := s.client.DeletePerformanceEvaluation(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.performanceEvaluations = removeByID(s.performanceEvaluations, id, perfEvaluationID)
	s.mu.Unlock()
	return nil
}

func cloneStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
