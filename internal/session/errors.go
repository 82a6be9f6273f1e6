package session

import "errors"

var (
	// ErrEmptyInput is returned by Add when the input field is empty.
	ErrEmptyInput = errors.New("input is empty")

	// ErrEditing is returned by Add while a task is being edited.
	ErrEditing = errors.New("a task is being edited")

	// ErrNotEditing is returned by CommitEdit when no edit is in progress.
	ErrNotEditing = errors.New("no task is being edited")

	// ErrTaskNotFound is returned when an ID is not in the session.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInFlight is returned when another action on the same task is still running.
	ErrInFlight = errors.New("another request for this task is in flight")

	// ErrDeclined is returned by Delete when the user declines the confirmation.
	ErrDeclined = errors.New("declined")
)
