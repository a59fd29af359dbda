package hosting

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-token", WithBaseURL(server.URL))
}

func TestClient_RequestHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		fmt.Fprint(w, `[]`)
	})

	_, err := c.ListApps(context.Background(), "")
	require.NoError(t, err)
}

func TestClient_EmptyTokenFailsWithoutRequest(t *testing.T) {
	requests := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})
	c.token = ""

	_, err := c.ListApps(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, requests, "no request should be issued without a token")
}

func TestClient_UnauthorizedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.ListApps(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClient_ResponseError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "scaling failed: no capacity"}`)
	})

	err := c.ScaleApp(context.Background(), "app-1", ScaleParams{VMType: "c1m1"})
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusInternalServerError, respErr.StatusCode)
	assert.Equal(t, "scaling failed: no capacity", respErr.Message)
	assert.Contains(t, respErr.Error(), "HTTP 500")
}

func TestClient_ListApps(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apps", r.URL.Path)
		assert.Equal(t, "proj-1", r.URL.Query().Get("project"))
		fmt.Fprint(w, `[
			{"id": "app-1", "name": "demo", "project_id": "proj-1", "status": "running"},
			{"id": "app-2", "name": "blog", "project_id": "proj-1", "status": "stopped"}
		]`)
	})

	apps, err := c.ListApps(context.Background(), "proj-1")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "demo", apps[0].Name)
	assert.Equal(t, "stopped", apps[1].Status)
}

func TestClient_SearchApp(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/apps/search", r.URL.Path)
			assert.Equal(t, "demo", r.URL.Query().Get("name"))
			fmt.Fprint(w, `{"id": "app-1", "name": "demo"}`)
		})

		app, err := c.SearchApp(context.Background(), "demo", "")
		require.NoError(t, err)
		require.NotNil(t, app)
		assert.Equal(t, "app-1", app.ID)
	})

	t.Run("not found is nil, not an error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		app, err := c.SearchApp(context.Background(), "ghost", "")
		require.NoError(t, err)
		assert.Nil(t, app)
	})
}

func TestClient_StartStopDelete(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		fmt.Fprint(w, `{"message": "ok"}`)
	})
	ctx := context.Background()

	msg, err := c.StartApp(ctx, "app-1")
	require.NoError(t, err)
	assert.Equal(t, "ok", msg)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/apps/app-1/start", gotPath)

	_, err = c.StopApp(ctx, "app-1")
	require.NoError(t, err)
	assert.Equal(t, "/apps/app-1/stop", gotPath)

	_, err = c.DeleteApp(ctx, "app-1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/apps/app-1", gotPath)
}

func TestClient_GetAppLogs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apps/app-1/logs", r.URL.Path)
		assert.Equal(t, "3600", r.URL.Query().Get("offset"))
		fmt.Fprint(w, `[{"timestamp": "2026-08-26T10:00:00Z", "message": "started"}]`)
	})

	lines, err := c.GetAppLogs(context.Background(), "app-1", LogQuery{})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "started", lines[0].Message)
}

func TestLogQuery_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		query     LogQuery
		want      LogQuery
		wantError bool
	}{
		{
			name:  "zero query defaults to one hour",
			query: LogQuery{},
			want:  LogQuery{Offset: 3600},
		},
		{
			name:  "explicit offset kept",
			query: LogQuery{Offset: 600},
			want:  LogQuery{Offset: 600},
		},
		{
			name:  "start and end together",
			query: LogQuery{Start: 100, End: 200},
			want:  LogQuery{Start: 100, End: 200},
		},
		{
			name:      "offset with start is rejected",
			query:     LogQuery{Offset: 600, Start: 100},
			wantError: true,
		},
		{
			name:      "start without end is rejected",
			query:     LogQuery{Start: 100},
			wantError: true,
		},
		{
			name:      "end without start is rejected",
			query:     LogQuery{End: 200},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.Normalize()
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_WatchDeploymentStatus(t *testing.T) {
	var polls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deployments/dep-1/status", r.URL.Path)
		if polls.Add(1) < 3 {
			fmt.Fprint(w, `{"status": "in_progress"}`)
			return
		}
		fmt.Fprint(w, `{"status": "completed"}`)
	})

	status, err := c.WatchDeploymentStatus(context.Background(), "dep-1", time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, status)
	assert.Equal(t, int32(3), polls.Load())
}

func TestClient_WatchDeploymentStatus_Cancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "in_progress"}`)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Interval far beyond the deadline: the first poll succeeds, then the
	// watch blocks until the context expires.
	status, err := c.WatchDeploymentStatus(ctx, "dep-1", time.Hour)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "expected context.DeadlineExceeded, got %v", err)
	assert.Equal(t, "in_progress", status)
}

func TestClient_GetDeploymentBuildLogs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deployments/dep-1/build-logs", r.URL.Path)
		fmt.Fprint(w, `{"logs": ["step 1", "step 2"]}`)
	})

	logs, err := c.GetDeploymentBuildLogs(context.Background(), "dep-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"step 1", "step 2"}, logs)
}
