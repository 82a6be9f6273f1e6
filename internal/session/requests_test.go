package session_test

import (
	"errors"
	"testing"

	"todosync/internal/session"
)

func TestTracker_Lifecycle(t *testing.T) {
	tr := session.NewTracker()

	if got := tr.State(5); got != session.Idle {
		t.Errorf("expected idle, got %v", got)
	}
	if err := tr.Begin(5); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := tr.Begin(5); !errors.Is(err, session.ErrInFlight) {
		t.Errorf("expected ErrInFlight, got %v", err)
	}
	if err := tr.Begin(6); err != nil {
		t.Errorf("other ids must not be blocked: %v", err)
	}

	tr.Finish(5, errors.New("boom"))
	if got := tr.State(5); got != session.Failed {
		t.Errorf("expected failed, got %v", got)
	}
	if err := tr.Begin(5); err != nil {
		t.Errorf("a finished request must allow a new one: %v", err)
	}
	tr.Finish(5, nil)
	if got := tr.State(5); got.String() != "succeeded" {
		t.Errorf("expected succeeded, got %v", got)
	}
}
