// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Service is the Remote Task Store.
// Every remote call the client makes goes through this interface;
// commands and the session never import a backend SDK directly.
type Service interface {
	// ListTasks returns the authoritative task list in store order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task with the given content and returns the
	// stored task, including its assigned ID.
	CreateTask(ctx context.Context, content string) (Task, error)

	// DeleteTask deletes a task by ID.
	DeleteTask(ctx context.Context, id TaskID) error
}

// RemoteError is the single error kind for failed remote calls:
// network failures and non-success statuses alike.
type RemoteError struct {
	Op     string // "list", "create", "delete"
	Status int    // HTTP status, 0 if the request never got a response
	Err    error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Remote wraps err as a RemoteError for op, mapping well-known failures
// to user-facing messages.
func Remote(op string, status int, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		err = fmt.Errorf("request timed out: %w", err)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		err = fmt.Errorf("token rejected (status %d): %w", status, err)
	case status == http.StatusNotFound:
		err = fmt.Errorf("not found: %w", err)
	}
	return &RemoteError{Op: op, Status: status, Err: err}
}
