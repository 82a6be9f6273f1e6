// Package todoist implements service.Service over the Todoist REST API.
package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"todosync/internal/config"
	"todosync/internal/service"
)

const (
	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 512

	requestIDHeader = "X-Request-Id"
)

// Client implements service.Service against a Todoist-compatible REST API.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// New creates a client authenticated with the configured API token.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	token, err := cfg.Credential()
	if err != nil {
		return nil, err
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return NewWithHTTPClient(cfg.BaseURL, oauth2.NewClient(ctx, src), cfg.Timeout), nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
// The HTTP client is responsible for authentication.
func NewWithHTTPClient(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		timeout: timeout,
	}
}

// ListTasks returns all active tasks in API order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, "list", http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task and returns the stored record.
func (c *Client) CreateTask(ctx context.Context, content string) (service.Task, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	var task service.Task
	if err := c.do(ctx, "create", http.MethodPost, "/tasks", body, &task); err != nil {
		return service.Task{}, err
	}
	if task.ID == 0 {
		return service.Task{}, service.Remote("create", 0, errors.New("response has no task id"))
	}
	return task, nil
}

// DeleteTask deletes a task by ID.
func (c *Client) DeleteTask(ctx context.Context, id service.TaskID) error {
	return c.do(ctx, "delete", http.MethodDelete, "/tasks/"+id.String(), nil, nil)
}

// do sends one request and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return service.Remote(op, 0, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return service.Remote(op, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(requestIDHeader, uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return service.Remote(op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return service.Remote(op, resp.StatusCode, fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(msg))))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return service.Remote(op, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
