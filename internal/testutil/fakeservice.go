// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"todosync/internal/service"
)

// ErrNotFound is returned when a task does not exist.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for testing.
// IDs are assigned sequentially starting at 1.
type FakeService struct {
	mu     sync.Mutex
	tasks  []service.Task
	nextID service.TaskID

	// Error injection for testing
	ListTasksErr  error
	CreateTaskErr error
	DeleteTaskErr error

	// DeleteGate, when set, makes DeleteTask signal on DeleteStarted and
	// then block until the gate is closed or ctx is done.
	DeleteGate    chan struct{}
	DeleteStarted chan service.TaskID

	// Call counters
	CreateCalls int
	DeleteCalls int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask seeds a task with an explicit ID. Later created tasks get IDs above it.
func (f *FakeService) AddTask(id service.TaskID, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{ID: id, Content: content})
	if id >= f.nextID {
		f.nextID = id + 1
	}
}

// Stored returns a copy of the remote list.
func (f *FakeService) Stored() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]service.Task(nil), f.tasks...)
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Stored(), nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, content string) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}

	task := service.Task{ID: f.nextID, Content: content}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id service.TaskID) error {
	f.mu.Lock()
	f.DeleteCalls++
	gate, started := f.DeleteGate, f.DeleteStarted
	f.mu.Unlock()

	if gate != nil {
		if started != nil {
			started <- id
		}
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
