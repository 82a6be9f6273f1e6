package testutil

import (
	"context"
	"sync"

	"todosync/internal/cache"
	"todosync/internal/session"
)

// MemorySlot is an in-memory cache.Slot.
type MemorySlot struct {
	mu      sync.Mutex
	data    []byte
	present bool

	LoadErr error
	SaveErr error
	Saves   int
}

// NewMemorySlot returns an empty slot. Pass data to pre-populate it.
func NewMemorySlot(data ...string) *MemorySlot {
	s := &MemorySlot{}
	if len(data) > 0 {
		s.data = []byte(data[0])
		s.present = true
	}
	return s
}

// Load implements cache.Slot.
func (s *MemorySlot) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if !s.present {
		return nil, cache.ErrNoSnapshot
	}
	return append([]byte(nil), s.data...), nil
}

// Save implements cache.Slot.
func (s *MemorySlot) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.data = append([]byte(nil), data...)
	s.present = true
	s.Saves++
	return nil
}

// Contents returns the stored bytes, or "" if nothing was saved.
func (s *MemorySlot) Contents() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.data)
}

// Presenter is a scripted session.Presenter. Confirm pops answers in order
// and falls back to Default when the script runs out.
type Presenter struct {
	mu      sync.Mutex
	Answers []bool
	Default bool
	Err     error

	Prompts []string
	Notices []session.Notice
}

// Confirm implements session.Presenter.
func (p *Presenter) Confirm(ctx context.Context, prompt string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Prompts = append(p.Prompts, prompt)
	if p.Err != nil {
		return false, p.Err
	}
	if len(p.Answers) == 0 {
		return p.Default, nil
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

// Notify implements session.Presenter.
func (p *Presenter) Notify(ctx context.Context, n session.Notice) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Notices = append(p.Notices, n)
}
