package cache

import "todosync/internal/service"

// Delta summarises how a reconciled snapshot differs from the previous one.
type Delta struct {
	Added   int
	Removed int
	Updated int
}

// Changed reports whether the snapshot differs at all.
func (d Delta) Changed() bool {
	return d.Added+d.Removed+d.Updated > 0
}

// Reconcile computes the snapshot to persist after a mutation.
// next is the authoritative post-mutation list: the result has exactly its
// membership and order, deduplicated by ID, and shares no memory with it.
// current only feeds the Delta.
func Reconcile(current, next []service.Task) ([]service.Task, Delta) {
	out := Dedupe(next)

	prev := make(map[service.TaskID]service.Task, len(current))
	for _, t := range current {
		if _, ok := prev[t.ID]; !ok {
			prev[t.ID] = t
		}
	}

	var d Delta
	for _, t := range out {
		old, ok := prev[t.ID]
		switch {
		case !ok:
			d.Added++
		case old != t:
			d.Updated++
		}
		delete(prev, t.ID)
	}
	d.Removed = len(prev)
	return out, d
}

// Dedupe returns a copy of tasks keeping the first occurrence of each ID.
// The result is never nil.
func Dedupe(tasks []service.Task) []service.Task {
	out := make([]service.Task, 0, len(tasks))
	seen := make(map[service.TaskID]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
