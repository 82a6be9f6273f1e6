// Package googletasks implements the service.Service interface using Google Tasks API.
package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"todosync/internal/config"
	"todosync/internal/logging"
	"todosync/internal/service"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// PageSize is the number of tasks per page.
	PageSize = 100

	// Scope is the OAuth scope for Google Tasks.
	Scope = "https://www.googleapis.com/auth/tasks"
)

// Client implements service.Service on the user's default Google Tasks list.
type Client struct {
	svc     *tasks.Service
	ids     *idMap
	timeout time.Duration
	logger  *log.Logger
}

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oauthConfig, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read token.json: %v", config.ErrNotLoggedIn, err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("%w: invalid token.json: %v", config.ErrNotLoggedIn, err)
	}

	// Token source refreshes automatically.
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))

	c, err := NewWithHTTPClient(ctx, httpClient, cfg.IDMapPath())
	if err != nil {
		return nil, err
	}
	c.timeout = cfg.Timeout
	c.logger = logging.New(os.Stderr, cfg.Debug, cfg.Quiet)
	return c, nil
}

// OAuthConfig reads the OAuth client credentials from the config directory.
func OAuthConfig(cfg *config.Config) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read oauth_client.json: %v", config.ErrNoOAuthClient, err)
	}
	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid oauth_client.json: %v", config.ErrNoOAuthClient, err)
	}
	return oauthConfig, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
// idMapPath may be empty to keep id handles in memory only.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, idMapPath string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	ids, err := loadIDMap(idMapPath)
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc, ids: ids, timeout: config.DefaultTimeout, logger: logging.Discard()}, nil
}

// SetLogger replaces the logger used for id map warnings.
func (c *Client) SetLogger(logger *log.Logger) {
	c.logger = logger
}

// ListTasks returns the open tasks of the default list in API order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	floor := c.ids.mark()
	seen := make(map[string]bool)
	var result []service.Task
	err := c.svc.Tasks.List(DefaultListID).
		MaxResults(PageSize).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				seen[t.Id] = true
				result = append(result, service.Task{
					ID:      c.ids.handle(t.Id),
					Content: t.Title,
				})
			}
			return nil
		})
	if err != nil {
		return nil, wrapError("list", err)
	}
	if n := c.ids.prune(seen, floor); n > 0 {
		c.logger.WithField("handles", n).Debug("pruned handles of tasks gone from the list")
	}
	c.persistIDs("list")
	return result, nil
}

// CreateTask creates a new task in the default list.
func (c *Client) CreateTask(ctx context.Context, content string) (service.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	created, err := c.svc.Tasks.Insert(DefaultListID, &tasks.Task{Title: content}).Context(ctx).Do()
	if err != nil {
		return service.Task{}, wrapError("create", err)
	}
	task := service.Task{ID: c.ids.handle(created.Id), Content: created.Title}
	c.persistIDs("create")
	return task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id service.TaskID) error {
	remote, ok := c.ids.remote(id)
	if !ok {
		return service.Remote("delete", http.StatusNotFound, fmt.Errorf("unknown task %d", id))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.svc.Tasks.Delete(DefaultListID, remote).Context(ctx).Do(); err != nil {
		return wrapError("delete", err)
	}
	c.ids.forget(id)
	c.persistIDs("delete")
	return nil
}

// persistIDs saves the id map after a successful remote call. A failed save
// keeps the handles in memory and is retried on the next call.
func (c *Client) persistIDs(op string) {
	if err := c.ids.save(); err != nil {
		c.logger.WithError(err).WithField("op", op).Warn("failed to save id map")
	}
}

// wrapError turns API errors into service.RemoteError, keeping the HTTP status.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return service.Remote(op, gerr.Code, err)
	}
	return service.Remote(op, 0, err)
}
