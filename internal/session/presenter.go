package session

import (
	"context"

	"todosync/internal/service"
)

// NoticeKind classifies a user notification.
type NoticeKind int

const (
	NoticeAdded NoticeKind = iota
	NoticeDeleted
)

// Notice is a message for the user about a completed action.
type Notice struct {
	Kind    NoticeKind
	Task    service.Task
	Message string
}

// Presenter is the presentation boundary. The session asks it for
// confirmations and hands it notifications; it never blocks on a display
// surface directly.
type Presenter interface {
	// Confirm asks the user a yes/no question.
	Confirm(ctx context.Context, prompt string) (bool, error)

	// Notify delivers a notification.
	Notify(ctx context.Context, n Notice)
}
