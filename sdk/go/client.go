package hubsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal ejder3200Hub HTTP API client. BaseURL includes the API
// prefix, e.g. http://localhost:8080/api.
type Client struct {
	BaseURL     string
	BearerToken string
	HTTPClient  *http.Client
	Timeout     time.Duration
}

// New creates a client with sane defaults.
func New(baseURL string) *Client {
	timeout := 10 * time.Second
	return &Client{
		BaseURL:    baseURL,
		Timeout:    timeout,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// APIError wraps non-2xx responses. Message is the server's error string when
// the body carried one, otherwise the raw body.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
}

// errorBody matches the server's non-2xx payload; Detail mirrors Error for
// backends following the Django convention.
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	// No lazy field writes here; do is called from concurrent goroutines
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	u := strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.BearerToken)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(b)}
		var eb errorBody
		if json.Unmarshal(b, &eb) == nil {
			switch {
			case eb.Error != "":
				apiErr.Message = eb.Error
			case eb.Detail != "":
				apiErr.Message = eb.Detail
			}
			apiErr.Code = eb.Code
		}
		return apiErr
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// deleteEntity accepts either an empty 204 or a 200 {success:true} body.
func (c *Client) deleteEntity(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func getList[T any](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	var out []T
	err := c.do(ctx, http.MethodGet, endpoint, nil, &out)
	return out, err
}

func postOne[T any](ctx context.Context, c *Client, endpoint string, body any) (T, error) {
	var out T
	err := c.do(ctx, http.MethodPost, endpoint, body, &out)
	return out, err
}

func putOne[T any](ctx context.Context, c *Client, endpoint string, body any) (T, error) {
	var out T
	err := c.do(ctx, http.MethodPut, endpoint, body, &out)
	return out, err
}

func patchOne[T any](ctx context.Context, c *Client, endpoint string, body any) (T, error) {
	var out T
	err := c.do(ctx, http.MethodPatch, endpoint, body, &out)
	return out, err
}

func idPath(kind, id string) string {
	return kind + "/" + url.PathEscape(id)
}

// Projects

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	return getList[Project](ctx, c, "projects")
}

func (c *Client) CreateProject(ctx context.Context, payload any) (Project, error) {
	return postOne[Project](ctx, c, "projects", payload)
}

func (c *Client) UpdateProject(ctx context.Context, id string, patch any) (Project, error) {
	return putOne[Project](ctx, c, idPath("projects", id), patch)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("projects", id))
}

// Tasks

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	return getList[Task](ctx, c, "tasks")
}

func (c *Client) CreateTask(ctx context.Context, payload any) (Task, error) {
	return postOne[Task](ctx, c, "tasks", payload)
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch any) (Task, error) {
	return putOne[Task](ctx, c, idPath("tasks", id), patch)
}

// UpdateTaskStatus moves a task to another kanban column.
func (c *Client) UpdateTaskStatus(ctx context.Context, id, status string) (Task, error) {
	return patchOne[Task](ctx, c, idPath("tasks", id)+"/status", map[string]string{"status": status})
}

// UpdateTaskProgress sets a task's completion percentage.
func (c *Client) UpdateTaskProgress(ctx context.Context, id string, progress int) (Task, error) {
	return patchOne[Task](ctx, c, idPath("tasks", id)+"/progress", map[string]int{"progress": progress})
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("tasks", id))
}

// Events

func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	return getList[Event](ctx, c, "events")
}

func (c *Client) CreateEvent(ctx context.Context, payload any) (Event, error) {
	return postOne[Event](ctx, c, "events", payload)
}

func (c *Client) UpdateEvent(ctx context.Context, id string, patch any) (Event, error) {
	return putOne[Event](ctx, c, idPath("events", id), patch)
}

// UpdateRsvp records the acting user's reply to a meeting invitation.
func (c *Client) UpdateRsvp(ctx context.Context, id, status string) (Event, error) {
	return patchOne[Event](ctx, c, idPath("events", id)+"/rsvp", map[string]string{"status": status})
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("events", id))
}

// Ideas

func (c *Client) ListIdeas(ctx context.Context) ([]Idea, error) {
	return getList[Idea](ctx, c, "ideas")
}

func (c *Client) CreateIdea(ctx context.Context, payload any) (Idea, error) {
	return postOne[Idea](ctx, c, "ideas", payload)
}

func (c *Client) UpdateIdea(ctx context.Context, id string, patch any) (Idea, error) {
	return putOne[Idea](ctx, c, idPath("ideas", id), patch)
}

// ConvertIdea turns an idea into a project and returns the new project.
func (c *Client) ConvertIdea(ctx context.Context, id string) (Project, error) {
	return postOne[Project](ctx, c, idPath("ideas", id)+"/convert", nil)
}

func (c *Client) DeleteIdea(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("ideas", id))
}

// Resources

func (c *Client) ListResources(ctx context.Context) ([]Resource, error) {
	return getList[Resource](ctx, c, "resources")
}

func (c *Client) CreateResource(ctx context.Context, payload any) (Resource, error) {
	return postOne[Resource](ctx, c, "resources", payload)
}

func (c *Client) UpdateResource(ctx context.Context, id string, patch any) (Resource, error) {
	return putOne[Resource](ctx, c, idPath("resources", id), patch)
}

func (c *Client) DeleteResource(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("resources", id))
}

// Departments

func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	return getList[Department](ctx, c, "departments")
}

func (c *Client) CreateDepartment(ctx context.Context, payload any) (Department, error) {
	return postOne[Department](ctx, c, "departments", payload)
}

func (c *Client) UpdateDepartment(ctx context.Context, id string, patch any) (Department, error) {
	return putOne[Department](ctx, c, idPath("departments", id), patch)
}

func (c *Client) DeleteDepartment(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("departments", id))
}

// Comments

func (c *Client) ListComments(ctx context.Context) ([]Comment, error) {
	return getList[Comment](ctx, c, "comments")
}

func (c *Client) CreateComment(ctx context.Context, payload any) (Comment, error) {
	return postOne[Comment](ctx, c, "comments", payload)
}

func (c *Client) UpdateComment(ctx context.Context, id string, patch any) (Comment, error) {
	return putOne[Comment](ctx, c, idPath("comments", id), patch)
}

// VoteOnComment records a vote; repeating the same vote removes it.
func (c *Client) VoteOnComment(ctx context.Context, id, vote string) (Comment, error) {
	return patchOne[Comment](ctx, c, idPath("comments", id)+"/vote", map[string]string{"vote": vote})
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("comments", id))
}

// Evaluations

func (c *Client) ListEvaluations(ctx context.Context) ([]Evaluation, error) {
	return getList[Evaluation](ctx, c, "evaluations")
}

func (c *Client) CreateEvaluation(ctx context.Context, payload any) (Evaluation, error) {
	return postOne[Evaluation](ctx, c, "evaluations", payload)
}

func (c *Client) UpdateEvaluation(ctx context.Context, id string, patch any) (Evaluation, error) {
	return putOne[Evaluation](ctx, c, idPath("evaluations", id), patch)
}

func (c *Client) DeleteEvaluation(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("evaluations", id))
}

// Purchase requests

func (c *Client) ListPurchaseRequests(ctx context.Context) ([]PurchaseRequest, error) {
	return getList[PurchaseRequest](ctx, c, "purchase-requests")
}

func (c *Client) CreatePurchaseRequest(ctx context.Context, payload any) (PurchaseRequest, error) {
	return postOne[PurchaseRequest](ctx, c, "purchase-requests", payload)
}

func (c *Client) UpdatePurchaseRequest(ctx context.Context, id string, patch any) (PurchaseRequest, error) {
	return putOne[PurchaseRequest](ctx, c, idPath("purchase-requests", id), patch)
}

func (c *Client) DeletePurchaseRequest(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("purchase-requests", id))
}

// Invoices

func (c *Client) ListInvoices(ctx context.Context) ([]Invoice, error) {
	return getList[Invoice](ctx, c, "invoices")
}

func (c *Client) CreateInvoice(ctx context.Context, payload any) (Invoice, error) {
	return postOne[Invoice](ctx, c, "invoices", payload)
}

func (c *Client) UpdateInvoice(ctx context.Context, id string, patch any) (Invoice, error) {
	return putOne[Invoice](ctx, c, idPath("invoices", id), patch)
}

func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("invoices", id))
}

// Notifications

func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	return getList[Notification](ctx, c, "notifications")
}

func (c *Client) CreateNotification(ctx context.Context, payload any) (Notification, error) {
	return postOne[Notification](ctx, c, "notifications", payload)
}

// MarkNotificationRead toggles a notification's read flag.
func (c *Client) MarkNotificationRead(ctx context.Context, id string, read bool) (Notification, error) {
	return patchOne[Notification](ctx, c, idPath("notifications", id)+"/read", map[string]bool{"read": read})
}

// MarkAllNotificationsRead marks every notification read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "notifications/read-all", nil, nil)
}

// UnreadNotificationCount returns the number of unread notifications.
func (c *Client) UnreadNotificationCount(ctx context.Context) (int64, error) {
	var resp struct {
		Count int64 `json:"count"`
	}
	err := c.do(ctx, http.MethodGet, "notifications/unread-count", nil, &resp)
	return resp.Count, err
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("notifications", id))
}

// Announcements

func (c *Client) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	return getList[Announcement](ctx, c, "announcements")
}

func (c *Client) CreateAnnouncement(ctx context.Context, payload any) (Announcement, error) {
	return postOne[Announcement](ctx, c, "announcements", payload)
}

func (c *Client) UpdateAnnouncement(ctx context.Context, id string, patch any) (Announcement, error) {
	return putOne[Announcement](ctx, c, idPath("announcements", id), patch)
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("announcements", id))
}

// Feedback

func (c *Client) ListFeedback(ctx context.Context) ([]Feedback, error) {
	return getList[Feedback](ctx, c, "feedback")
}

func (c *Client) CreateFeedback(ctx context.Context, payload any) (Feedback, error) {
	return postOne[Feedback](ctx, c, "feedback", payload)
}

func (c *Client) UpdateFeedback(ctx context.Context, id string, patch any) (Feedback, error) {
	return putOne[Feedback](ctx, c, idPath("feedback", id), patch)
}

func (c *Client) DeleteFeedback(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("feedback", id))
}

// Performance evaluations

func (c *Client) ListPerformanceEvaluations(ctx context.Context) ([]PerformanceEvaluation, error) {
	return getList[PerformanceEvaluation](ctx, c, "performance-evaluations")
}

func (c *Client) CreatePerformanceEvaluation(ctx context.Context, payload any) (PerformanceEvaluation, error) {
	return postOne[PerformanceEvaluation](ctx, c, "performance-evaluations", payload)
}

func (c *Client) UpdatePerformanceEvaluation(ctx context.Context, id string, patch any) (PerformanceEvaluation, error) {
	return putOne[PerformanceEvaluation](ctx, c, idPath("performance-evaluations", id), patch)
}

func (c *Client) DeletePerformanceEvaluation(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, idPath("performance-evaluations", id))
}
