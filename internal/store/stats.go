package store

import (
	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/streak"
)

// StatsUpdate is a partial update to the stats aggregate. Nil fields are
// left untouched; a non-nil HabitHistory replaces the whole log.
type StatsUpdate struct {
	Streaks       *int
	CurrentStreak *int
	RoutineStreak *int
	NeutralDays   *int
	DayOff        *habit.DayOff
	HabitHistory  []habit.HistoryEntry
}

// UpdateStats merges the partial update into the stats aggregate.
// Whenever the update carries a new habit history, the combined routine
// streak is recomputed from the just-updated log and overwrites whatever
// RoutineStreak the update carried.
func (s *Store) UpdateStats(u StatsUpdate) {
	if u.Streaks != nil {
		s.snap.Stats.Streaks = *u.Streaks
	}
	if u.CurrentStreak != nil {
		s.snap.Stats.CurrentStreak = *u.CurrentStreak
	}
	if u.RoutineStreak != nil {
		s.snap.Stats.RoutineStreak = *u.RoutineStreak
	}
	if u.NeutralDays != nil {
		s.snap.Stats.NeutralDays = *u.NeutralDays
	}
	if u.DayOff != nil {
		s.snap.Stats.DayOff = *u.DayOff
	}
	if u.HabitHistory != nil {
		s.snap.Stats.HabitHistory = u.HabitHistory
		s.snap.Stats.RoutineStreak = streak.CombinedStreak(u.HabitHistory)
	}
}

// SetDayOffLimit sets the monthly day-off budget. The store is
// deliberately permissive here; input validation happens at the edges.
func (s *Store) SetDayOffLimit(limit int) {
	s.snap.Stats.DayOff.Limit = limit
}
