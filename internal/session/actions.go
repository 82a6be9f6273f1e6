package session

import (
	"context"
	"fmt"

	"todosync/internal/service"
)

// Add creates a task from the input field.
// On success the stored task is prepended, the input is cleared, the cache is
// rewritten and a notice is sent. On failure the error is logged and nothing
// changes.
func (s *Session) Add(ctx context.Context) (service.Task, error) {
	s.mu.Lock()
	content, editing := s.input, s.editing != nil
	s.mu.Unlock()

	switch {
	case editing:
		return service.Task{}, ErrEditing
	case content == "":
		return service.Task{}, ErrEmptyInput
	}

	if err := s.requests.Begin(NewTaskKey); err != nil {
		return service.Task{}, err
	}
	task, err := s.svc.CreateTask(ctx, content)
	s.requests.Finish(NewTaskKey, err)
	if err != nil {
		s.logRemote(err, "create", NewTaskKey)
		return service.Task{}, err
	}

	s.mu.Lock()
	if i := s.indexLocked(task.ID); i >= 0 {
		s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	}
	s.tasks = append([]service.Task{task}, s.tasks...)
	s.input = ""
	s.persistLocked(ctx, "add")
	s.mu.Unlock()

	s.presenter.Notify(ctx, Notice{
		Kind:    NoticeAdded,
		Task:    task,
		Message: fmt.Sprintf("task %d added", task.ID),
	})
	return task, nil
}

// Delete removes a task after the user confirms.
// A declined confirmation returns ErrDeclined without calling the remote
// store. After a successful remote delete the task leaves the session, the
// cache is rewritten and a notice is sent.
func (s *Session) Delete(ctx context.Context, id service.TaskID) error {
	if err := s.requests.Begin(id); err != nil {
		return err
	}

	prompt := fmt.Sprintf("Delete task %d?", id)
	if task, ok := s.Task(id); ok {
		prompt = fmt.Sprintf("Delete task %d %q?", id, task.Content)
	}
	ok, err := s.presenter.Confirm(ctx, prompt)
	if err != nil {
		s.requests.Finish(id, err)
		return err
	}
	if !ok {
		s.requests.Finish(id, ErrDeclined)
		return ErrDeclined
	}

	err = s.svc.DeleteTask(ctx, id)
	s.requests.Finish(id, err)
	if err != nil {
		s.logRemote(err, "delete", id)
		return err
	}

	s.mu.Lock()
	removed, _ := s.removeLocked(id)
	if s.editing != nil && *s.editing == id {
		s.editing = nil
	}
	s.persistLocked(ctx, "delete")
	s.mu.Unlock()

	s.presenter.Notify(ctx, Notice{
		Kind:    NoticeDeleted,
		Task:    removed,
		Message: fmt.Sprintf("task %d deleted", id),
	})
	return nil
}

// BeginEdit copies the task's content into the input field and marks it as
// being edited. Any other in-progress edit is discarded.
func (s *Session) BeginEdit(id service.TaskID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	s.editing = &id
	s.input = s.tasks[i].Content
	return nil
}

// CancelEdit clears the edit marker and the input field.
func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = nil
	s.input = ""
}

// CommitEdit replaces the edited task's content with the input field, clears
// the input and the marker, and rewrites the cache. Edits never reach the
// remote store.
func (s *Session) CommitEdit(ctx context.Context) (service.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing == nil {
		return service.Task{}, ErrNotEditing
	}
	id := *s.editing

	if err := s.requests.Begin(id); err != nil {
		return service.Task{}, err
	}
	i := s.indexLocked(id)
	if i < 0 {
		s.editing = nil
		s.requests.Finish(id, ErrTaskNotFound)
		return service.Task{}, ErrTaskNotFound
	}

	s.tasks[i].Content = s.input
	s.input = ""
	s.editing = nil
	s.persistLocked(ctx, "edit")
	s.requests.Finish(id, nil)
	return s.tasks[i], nil
}

// ToggleComplete flips the task's done flag. Nothing is sent to the remote
// store or written to the cache.
func (s *Session) ToggleComplete(id service.TaskID) (service.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return service.Task{}, ErrTaskNotFound
	}
	s.tasks[i].Done = !s.tasks[i].Done
	return s.tasks[i], nil
}

func (s *Session) removeLocked(id service.TaskID) (service.Task, bool) {
	i := s.indexLocked(id)
	if i < 0 {
		return service.Task{ID: id}, false
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return removed, true
}
