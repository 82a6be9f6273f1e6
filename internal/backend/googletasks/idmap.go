package googletasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"todosync/internal/service"
)

// idMap allocates stable integer handles for opaque Google Tasks ids.
// Handles are never reused, so a stale cached id can't address a different task.
type idMap struct {
	path string

	mu       sync.Mutex
	next     service.TaskID
	byRemote map[string]service.TaskID
	byLocal  map[service.TaskID]string
	dirty    bool
}

type idMapFile struct {
	Next service.TaskID            `json:"next"`
	IDs  map[string]service.TaskID `json:"ids"`
}

// loadIDMap reads the map at path. A missing file yields an empty map.
// An empty path keeps the map in memory only.
func loadIDMap(path string) (*idMap, error) {
	m := &idMap{
		path:     path,
		next:     1,
		byRemote: make(map[string]service.TaskID),
		byLocal:  make(map[service.TaskID]string),
	}
	if path == "" {
		return m, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var f idMapFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	for remote, local := range f.IDs {
		m.byRemote[remote] = local
		m.byLocal[local] = remote
		if local >= m.next {
			m.next = local + 1
		}
	}
	if f.Next > m.next {
		m.next = f.Next
	}
	return m, nil
}

// handle returns the integer id for remote, allocating one if needed.
func (m *idMap) handle(remote string) service.TaskID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.byRemote[remote]; ok {
		return id
	}
	id := m.next
	m.next++
	m.byRemote[remote] = id
	m.byLocal[id] = remote
	m.dirty = true
	return id
}

// remote returns the Google id for a handle.
func (m *idMap) remote(id service.TaskID) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	remote, ok := m.byLocal[id]
	return remote, ok
}

// forget drops a handle after its task is deleted.
func (m *idMap) forget(id service.TaskID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if remote, ok := m.byLocal[id]; ok {
		delete(m.byLocal, id)
		delete(m.byRemote, remote)
		m.dirty = true
	}
}

// mark returns the next handle to be allocated. Handles at or above it were
// allocated after the call.
func (m *idMap) mark() service.TaskID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next
}

// prune drops handles below floor whose remote id is not in seen.
// It returns the number of handles dropped.
func (m *idMap) prune(seen map[string]bool, floor service.TaskID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for remote, id := range m.byRemote {
		if id >= floor || seen[remote] {
			continue
		}
		delete(m.byRemote, remote)
		delete(m.byLocal, id)
		n++
	}
	if n > 0 {
		m.dirty = true
	}
	return n
}

// save writes the map if it changed since the last save. File mode is 0600.
func (m *idMap) save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dirty || m.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(idMapFile{Next: m.next, IDs: m.byRemote}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0700); err != nil {
		return err
	}
	if err := os.WriteFile(m.path, data, 0600); err != nil {
		return err
	}
	m.dirty = false
	return nil
}
