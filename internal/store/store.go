// Package store holds the canonical application state and its
// reducer-style mutation operations. The store owns a single snapshot;
// persistence is invoked explicitly by callers after mutating, it is not
// a hidden side channel of every write.
package store

import (
	"github.com/halvard/tend/internal/habit"
)

// Store is the in-memory entity store. It is not safe for concurrent
// use; the application has a single actor.
type Store struct {
	snap habit.Snapshot
}

// New creates a store around an existing snapshot.
func New(snap habit.Snapshot) *Store {
	return &Store{snap: snap}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() habit.Snapshot {
	return s.snap.Clone()
}

// AddRoutine appends the routine. No dedup check is performed, so a
// caller supplying an already-used id creates a structural duplicate.
func (s *Store) AddRoutine(r habit.Routine) {
	s.snap.Routines = append(s.snap.Routines, r)
}

// UpdateRoutine replaces the routine with a matching id. A no-op when
// no routine matches.
func (s *Store) UpdateRoutine(r habit.Routine) {
	for i := range s.snap.Routines {
		if s.snap.Routines[i].ID == r.ID {
			s.snap.Routines[i] = r
		}
	}
}

// DeleteRoutine removes the routine with the given id. If it was the
// selected routine, the selection is cleared.
func (s *Store) DeleteRoutine(id string) {
	kept := s.snap.Routines[:0]
	for _, r := range s.snap.Routines {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.snap.Routines = kept

	if s.snap.SelectedRoutine != nil && s.snap.SelectedRoutine.ID == id {
		s.snap.SelectedRoutine = nil
	}
}

// SelectRoutine sets the single routine active for today, or clears the
// selection when given nil. The selected copy carries today's task
// states.
func (s *Store) SelectRoutine(r *habit.Routine) {
	if r == nil {
		s.snap.SelectedRoutine = nil
		return
	}
	sel := r.Clone()
	s.snap.SelectedRoutine = &sel
}

// RoutineName resolves a routine id to its current display name.
// Returns "" when the id is unknown.
func (s *Store) RoutineName(id string) string {
	for _, r := range s.snap.Routines {
		if r.ID == id {
			return r.Name
		}
	}
	return ""
}

// AddTask appends an ad-hoc task.
func (s *Store) AddTask(t habit.Task) {
	s.snap.Tasks = append(s.snap.Tasks, t)
}

// CompleteTask marks the task with the given id as completed. There is
// no toggle-off; completing a completed task leaves it completed. A
// no-op for unknown ids.
func (s *Store) CompleteTask(id string) {
	for i := range s.snap.Tasks {
		if s.snap.Tasks[i].ID == id {
			s.snap.Tasks[i].Completed = true
		}
	}
}

// DeleteTask removes the task with the given id. A no-op for unknown ids.
func (s *Store) DeleteTask(id string) {
	kept := s.snap.Tasks[:0]
	for _, t := range s.snap.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.snap.Tasks = kept
}

// UpdateNotes merges a partial notes update; nil fields are left as-is.
func (s *Store) UpdateNotes(permanent, temporary *string) {
	if permanent != nil {
		s.snap.TodayNotes.Permanent = *permanent
	}
	if temporary != nil {
		s.snap.TodayNotes.Temporary = *temporary
	}
}

// SetTheme sets the persisted theme selector.
func (s *Store) SetTheme(name string) {
	s.snap.Theme = name
}
