package habit

import (
	"testing"
)

func TestStatusCountsTowardStreak(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusCompleted, true},
		{StatusNeutral, true},
		{StatusPending, false},
		{StatusFailed, false},
		{Status("garbage"), false},
	}

	for _, tt := range tests {
		if got := tt.status.CountsTowardStreak(); got != tt.want {
			t.Errorf("CountsTowardStreak(%q) = %v, expected %v", tt.status, got, tt.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusCompleted, StatusNeutral, StatusFailed} {
		if !s.Valid() {
			t.Errorf("Valid(%q) = false, expected true", s)
		}
	}
	if Status("done").Valid() {
		t.Error("Valid(done) = true, expected false")
	}
	if Status("").Valid() {
		t.Error("Valid(\"\") = true, expected false")
	}
}

func TestHistoryEntryBelongsTo(t *testing.T) {
	r := Routine{ID: "r1", Name: "Morning"}

	tests := []struct {
		name  string
		entry HistoryEntry
		want  bool
	}{
		{"id match", HistoryEntry{RoutineID: "r1", RoutineName: "stale name"}, true},
		{"id mismatch", HistoryEntry{RoutineID: "r2", RoutineName: "Morning"}, false},
		{"legacy name match", HistoryEntry{RoutineName: "Morning"}, true},
		{"legacy name mismatch", HistoryEntry{RoutineName: "Evening"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.BelongsTo(r); got != tt.want {
				t.Errorf("BelongsTo = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestNewID_Unique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || b == "" {
		t.Fatal("NewID returned an empty id")
	}
	if a == b {
		t.Errorf("NewID returned the same id twice: %s", a)
	}
}

func TestDefaultSnapshot(t *testing.T) {
	snap := DefaultSnapshot(5)

	if snap.Theme != "simple" {
		t.Errorf("Theme = %q, expected simple", snap.Theme)
	}
	if snap.Stats.DayOff.Limit != 5 {
		t.Errorf("DayOff.Limit = %d, expected 5", snap.Stats.DayOff.Limit)
	}
	if snap.Stats.DayOff.LastUpdated.IsZero() {
		t.Error("DayOff.LastUpdated should be stamped")
	}
	if snap.Routines == nil || snap.Stats.HabitHistory == nil || snap.Tasks == nil {
		t.Error("collections should be empty, not nil")
	}
}

func TestDefaultSnapshot_NegativeLimitFallsBack(t *testing.T) {
	snap := DefaultSnapshot(-1)
	if snap.Stats.DayOff.Limit != DefaultDayOffLimit {
		t.Errorf("DayOff.Limit = %d, expected %d", snap.Stats.DayOff.Limit, DefaultDayOffLimit)
	}
}

func TestSnapshotClone_NoAliasing(t *testing.T) {
	r := Routine{ID: "r1", Name: "Morning", Tasks: []HabitTask{{ID: "t1", Habit: "Run"}}}
	sel := r.Clone()
	snap := Snapshot{
		Routines:        []Routine{r},
		SelectedRoutine: &sel,
		Stats: Stats{
			HabitHistory: []HistoryEntry{
				{Date: "2026-08-31", Habits: []HabitRecord{{Name: "Run", Status: StatusCompleted}}},
			},
		},
		Tasks: []Task{{ID: "a1", Title: "buy milk"}},
	}

	clone := snap.Clone()
	clone.Routines[0].Tasks[0].Habit = "mutated"
	clone.SelectedRoutine.Name = "mutated"
	clone.Stats.HabitHistory[0].Habits[0].Status = StatusFailed
	clone.Tasks[0].Title = "mutated"

	if snap.Routines[0].Tasks[0].Habit != "Run" {
		t.Error("routine tasks aliased between clone and original")
	}
	if snap.SelectedRoutine.Name != "Morning" {
		t.Error("selected routine aliased between clone and original")
	}
	if snap.Stats.HabitHistory[0].Habits[0].Status != StatusCompleted {
		t.Error("history records aliased between clone and original")
	}
	if snap.Tasks[0].Title != "buy milk" {
		t.Error("tasks aliased between clone and original")
	}
}
