// Package session holds Session State: the in-memory task list that drives
// what is displayed, plus the transient search, input and edit fields. It
// orchestrates every action against the Remote Task Store and the Local Cache.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"todosync/internal/cache"
	"todosync/internal/service"
)

// Cache is the Local Cache as seen by the session.
type Cache interface {
	// Load returns the cached list; false means there is no usable snapshot.
	Load(ctx context.Context) ([]service.Task, bool)
	Save(ctx context.Context, tasks []service.Task) error
}

// Session is safe for concurrent use. mu is never held across a remote call.
type Session struct {
	svc       service.Service
	cache     Cache
	presenter Presenter
	logger    *log.Logger
	requests  *Tracker

	mu      sync.Mutex
	tasks   []service.Task
	cached  []service.Task // last snapshot read from or written to the cache
	input   string
	search  string
	editing *service.TaskID
}

// New creates an empty session.
func New(svc service.Service, c Cache, presenter Presenter, logger *log.Logger) *Session {
	return &Session{
		svc:       svc,
		cache:     c,
		presenter: presenter,
		logger:    logger,
		requests:  NewTracker(),
	}
}

// Hydrate seeds the session from the cache, then replaces it with the remote
// list. On remote failure the cache-derived state (or empty) stays in place
// and the error is returned after being logged. Hydrate never writes the cache.
func (s *Session) Hydrate(ctx context.Context) error {
	if tasks, ok := s.cache.Load(ctx); ok {
		s.mu.Lock()
		s.tasks = cache.Dedupe(tasks)
		s.cached = cache.Dedupe(tasks)
		s.mu.Unlock()
		s.logger.WithField("tasks", len(tasks)).Debug("session seeded from cache")
	}

	remote, err := s.svc.ListTasks(ctx)
	if err != nil {
		s.logRemote(err, "list", 0)
		return err
	}

	s.mu.Lock()
	s.tasks = cache.Dedupe(remote)
	s.mu.Unlock()
	s.logger.WithField("tasks", len(remote)).Debug("session loaded from remote")
	return nil
}

// Tasks returns a copy of Session State in display order.
func (s *Session) Tasks() []service.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]service.Task(nil), s.tasks...)
}

// Task looks a task up by ID.
func (s *Session) Task(id service.TaskID) (service.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.tasks[i], true
	}
	return service.Task{}, false
}

// Input returns the shared input field.
func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// SetInput replaces the shared input field.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = text
}

// CanAdd reports whether Add would be accepted: the input is non-empty and no
// task is being edited.
func (s *Session) CanAdd() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input != "" && s.editing == nil
}

// Search returns the current search query.
func (s *Session) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// SetSearch sets the search query used by Visible.
func (s *Session) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = query
}

// Visible returns the tasks matching the current search query.
func (s *Session) Visible() []service.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Filter(s.tasks, s.search)
}

// Editing returns the ID of the task being edited, if any.
func (s *Session) Editing() (service.TaskID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing == nil {
		return 0, false
	}
	return *s.editing, true
}

// RequestState returns the lifecycle state of the latest action on id.
func (s *Session) RequestState(id service.TaskID) RequestState {
	return s.requests.State(id)
}

// Filter returns the tasks whose content contains query (case-sensitive).
// It never modifies tasks.
func Filter(tasks []service.Task, query string) []service.Task {
	out := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(t.Content, query) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Session) indexLocked(id service.TaskID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes the reconciled session list to the cache.
// Write failures are logged; the in-memory mutation stands.
func (s *Session) persistLocked(ctx context.Context, op string) {
	next, delta := cache.Reconcile(s.cached, s.tasks)
	if err := s.cache.Save(ctx, next); err != nil {
		s.logger.WithError(err).WithField("op", op).Error("cache write failed")
		return
	}
	s.cached = next
	s.logger.WithFields(log.Fields{
		"op":      op,
		"added":   delta.Added,
		"removed": delta.Removed,
		"updated": delta.Updated,
	}).Debug("cache updated")
}

func (s *Session) logRemote(err error, op string, id service.TaskID) {
	entry := s.logger.WithError(err).WithField("op", op)
	if id != NewTaskKey {
		entry = entry.WithField("task_id", int64(id))
	}
	var re *service.RemoteError
	if errors.As(err, &re) && re.Status != 0 {
		entry = entry.WithField("status", re.Status)
	}
	entry.Error("remote call failed")
}
