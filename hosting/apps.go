package hosting

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// App is a hosted application.
type App struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	ProjectID string         `json:"project_id"`
	Status    string         `json:"status"`
	URL       string         `json:"url,omitempty"`
	VMType    string         `json:"vmtype,omitempty"`
	Regions   map[string]int `json:"regions,omitempty"`
}

// Deployment is one entry in an app's deployment history.
type Deployment struct {
	ID         string    `json:"id"`
	AppID      string    `json:"app_id"`
	Status     string    `json:"status"`
	VMType     string    `json:"vmtype,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
}

// LogLine is a single application log entry. The API returns lines newest
// first.
type LogLine struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// LogQuery bounds a log request. Offset is seconds back from now and is
// mutually exclusive with the Start/End epoch pair; Start and End must be
// given together. A zero query defaults to the last hour.
type LogQuery struct {
	Offset int
	Start  int64
	End    int64
}

const defaultLogOffset = 3600

// Normalize applies the default window and checks the exclusivity rules.
func (q LogQuery) Normalize() (LogQuery, error) {
	if q.Offset == 0 && q.Start == 0 && q.End == 0 {
		q.Offset = defaultLogOffset
		return q, nil
	}
	if q.Offset != 0 && (q.Start != 0 || q.End != 0) {
		return q, errors.New("log query: offset and start/end are mutually exclusive")
	}
	if q.Offset == 0 && (q.Start == 0) != (q.End == 0) {
		return q, errors.New("log query: must provide both start and end")
	}
	return q, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

// ListApps returns the hosted apps visible to the caller, optionally
// filtered by project.
func (c *Client) ListApps(ctx context.Context, projectID string) ([]App, error) {
	query := url.Values{}
	if projectID != "" {
		query.Set("project", projectID)
	}
	var apps []App
	if err := c.do(ctx, http.MethodGet, "/apps", query, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// SearchApp looks an app up by name. A missing app is (nil, nil), not an
// error, so callers can fall back to other identification.
func (c *Client) SearchApp(ctx context.Context, name, projectID string) (*App, error) {
	query := url.Values{"name": {name}}
	if projectID != "" {
		query.Set("project", projectID)
	}
	var app App
	err := c.do(ctx, http.MethodGet, "/apps/search", query, nil, &app)
	var respErr *ResponseError
	if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetAppHistory returns the deployment history for an app, newest first.
func (c *Client) GetAppHistory(ctx context.Context, appID string) ([]Deployment, error) {
	var history []Deployment
	if err := c.do(ctx, http.MethodGet, "/apps/"+appID+"/history", nil, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// GetAppLogs returns application logs for the window described by q.
func (c *Client) GetAppLogs(ctx context.Context, appID string, q LogQuery) ([]LogLine, error) {
	q, err := q.Normalize()
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if q.Offset != 0 {
		query.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Start != 0 {
		query.Set("start", strconv.FormatInt(q.Start, 10))
		query.Set("end", strconv.FormatInt(q.End, 10))
	}

	var lines []LogLine
	if err := c.do(ctx, http.MethodGet, "/apps/"+appID+"/logs", query, nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// StartApp starts a stopped application and returns the service's message.
func (c *Client) StartApp(ctx context.Context, appID string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/apps/"+appID+"/start", nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// StopApp stops a running application and returns the service's message.
func (c *Client) StopApp(ctx context.Context, appID string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/apps/"+appID+"/stop", nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// DeleteApp deletes an application and returns the service's message.
func (c *Client) DeleteApp(ctx context.Context, appID string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, "/apps/"+appID, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// GetDeploymentStatus returns the current status of a deployment.
func (c *Client) GetDeploymentStatus(ctx context.Context, deploymentID string) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/deployments/"+deploymentID+"/status", nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// GetDeploymentBuildLogs returns the build log lines for a deployment.
func (c *Client) GetDeploymentBuildLogs(ctx context.Context, deploymentID string) ([]string, error) {
	var resp struct {
		Logs []string `json:"logs"`
	}
	if err := c.do(ctx, http.MethodGet, "/deployments/"+deploymentID+"/build-logs", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}
