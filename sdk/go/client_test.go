package hubsdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ErrorParsing(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantCode    string
	}{
		{
			name:        "error field wins",
			status:      http.StatusNotFound,
			body:        `{"error":"Project not found","detail":"Project not found","code":"NOT_FOUND"}`,
			wantMessage: "Project not found",
			wantCode:    "NOT_FOUND",
		},
		{
			name:        "detail is the fallback",
			status:      http.StatusBadRequest,
			body:        `{"detail":"end date precedes start date"}`,
			wantMessage: "end date precedes start date",
		},
		{
			name:        "non-JSON body is kept raw",
			status:      http.StatusBadGateway,
			body:        "upstream exploded",
			wantMessage: "upstream exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).ListProjects(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestClient_ConcurrentRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []Project{{ID: "p1"}})
	}))
	defer srv.Close()

	clients := map[string]*Client{
		"constructed": New(srv.URL),
		"zero value":  {BaseURL: srv.URL},
	}

	for name, client := range clients {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			errs := make(chan error, 16)
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := client.ListProjects(context.Background())
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_RequestHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		writeJSON(w, http.StatusOK, []Project{})
	}))
	defer srv.Close()

	client := New(srv.URL)
	client.BearerToken = "token-123"

	_, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_BaseURLJoining(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(w, http.StatusOK, []Task{})
	}))
	defer srv.Close()

	// A trailing slash on the base URL must not double up
	client := New(srv.URL + "/api/")
	_, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/tasks", gotPath)
}

func TestClient_IDsAreEscaped(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteProject(context.Background(), "weird/id")
	require.NoError(t, err)
	assert.Equal(t, "/projects/weird%2Fid", gotPath)
}

func TestClient_DeleteAcceptsNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteTask(context.Background(), "t1")
	assert.NoError(t, err)
}

func TestClient_UnreadNotificationCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/unread-count", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]int64{"count": 9})
	}))
	defer srv.Close()

	count, err := New(srv.URL).UnreadNotificationCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), count)
}
