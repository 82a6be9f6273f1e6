package session

import (
	"sync"

	"todosync/internal/service"
)

// NewTaskKey is the tracker key for add requests, whose task has no ID yet.
const NewTaskKey service.TaskID = 0

// RequestState is the lifecycle of the latest mutating action on a task.
type RequestState int

const (
	Idle RequestState = iota
	InFlight
	Succeeded
	Failed
)

func (s RequestState) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Tracker records request state per task ID and rejects a second action on a
// task while one is in flight.
type Tracker struct {
	mu     sync.Mutex
	states map[service.TaskID]RequestState
}

// NewTracker returns an empty tracker; every key starts Idle.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[service.TaskID]RequestState)}
}

// Begin marks id in flight. It returns ErrInFlight if it already is.
func (t *Tracker) Begin(id service.TaskID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.states[id] == InFlight {
		return ErrInFlight
	}
	t.states[id] = InFlight
	return nil
}

// Finish records the outcome of the request started with Begin.
func (t *Tracker) Finish(id service.TaskID, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.states[id] = Failed
		return
	}
	t.states[id] = Succeeded
}

// State returns the current state for id.
func (t *Tracker) State(id service.TaskID) RequestState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[id]
}
