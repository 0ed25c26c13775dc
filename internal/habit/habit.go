// Package habit defines the domain types for routines, habit tasks,
// ad-hoc tasks, the habit history log and day-off accounting.
package habit

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDayOffLimit is the monthly day-off budget used when nothing
// else is configured.
const DefaultDayOffLimit = 3

// Status is the outcome recorded for a habit. A habit task on the
// active routine is pending, completed or neutral; history records
// additionally use failed for habits that were not done that day.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusNeutral   Status = "neutral"
	StatusFailed    Status = "failed"
)

// CountsTowardStreak reports whether the status keeps a streak alive.
// Neutral days are intentional skips and do not break streaks.
func (s Status) CountsTowardStreak() bool {
	return s == StatusCompleted || s == StatusNeutral
}

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusNeutral, StatusFailed:
		return true
	}
	return false
}

// HabitTask is one scheduled item within a routine.
type HabitTask struct {
	ID    string    `json:"id"`
	Habit string    `json:"habit"`
	Time  ClockTime `json:"time"`
	Notes string    `json:"notes,omitempty"`
	State Status    `json:"status"`
}

// Routine is a named, reusable set of timed habit tasks.
type Routine struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Tasks     []HabitTask `json:"tasks"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// HabitRecord is the outcome of a single habit on one day. The streak
// counter is persisted for snapshot compatibility but nothing derives
// from it.
type HabitRecord struct {
	Name   string `json:"name"`
	Streak int    `json:"streak"`
	Status Status `json:"status"`
}

// HistoryEntry is the persisted daily record of per-habit outcomes for
// one routine on one calendar date. Date is a YYYY-MM-DD key. RoutineID
// keys the entry to its routine; RoutineName is kept so entries written
// before ids existed can still be reported.
type HistoryEntry struct {
	Date        string        `json:"date"`
	RoutineID   string        `json:"routineId,omitempty"`
	RoutineName string        `json:"routineName"`
	Habits      []HabitRecord `json:"habits"`
}

// BelongsTo reports whether the entry was recorded for the given routine.
func (e HistoryEntry) BelongsTo(r Routine) bool {
	if e.RoutineID != "" {
		return e.RoutineID == r.ID
	}
	return e.RoutineName == r.Name
}

// DayOff tracks the budgeted exemptions from routine completion.
type DayOff struct {
	Used        int       `json:"used"`
	Limit       int       `json:"limit"`
	LastUpdated time.Time `json:"lastUpdated"`
	UsedToday   bool      `json:"usedToday"`
}

// Stats aggregates streak counters, the day-off record and the full
// habit history log.
type Stats struct {
	Streaks       int            `json:"streaks"`
	CurrentStreak int            `json:"currentStreak"`
	RoutineStreak int            `json:"routineStreak"`
	NeutralDays   int            `json:"neutralDays"`
	DayOff        DayOff         `json:"dayOff"`
	HabitHistory  []HistoryEntry `json:"habitHistory"`
}

// Notes holds the permanent and temporary (24h) free-text notes shown
// on the today view.
type Notes struct {
	Permanent string `json:"permanent"`
	Temporary string `json:"temporary"`
}

// Snapshot is the complete persisted application state. SelectedRoutine
// is a copy of the routine chosen for today; its task states carry the
// day's progress while the definition in Routines stays pristine.
type Snapshot struct {
	Routines        []Routine `json:"routines"`
	SelectedRoutine *Routine  `json:"selectedRoutine"`
	TodayNotes      Notes     `json:"todayNotes"`
	Stats           Stats     `json:"stats"`
	Tasks           []Task    `json:"tasks"`
	Theme           string    `json:"theme"`
}

// NewID returns a fresh opaque identity for routines and tasks.
func NewID() string {
	return uuid.NewString()
}

// DefaultSnapshot returns the empty state used on first run and when a
// persisted snapshot cannot be read.
func DefaultSnapshot(dayOffLimit int) Snapshot {
	if dayOffLimit < 0 {
		dayOffLimit = DefaultDayOffLimit
	}
	return Snapshot{
		Routines: []Routine{},
		Stats: Stats{
			DayOff: DayOff{
				Limit:       dayOffLimit,
				LastUpdated: time.Now(),
			},
			HabitHistory: []HistoryEntry{},
		},
		Tasks: []Task{},
		Theme: "simple",
	}
}

// Clone returns a deep copy of the snapshot so callers can read derived
// state without aliasing the store's slices.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Routines = cloneRoutines(s.Routines)
	if s.SelectedRoutine != nil {
		sel := s.SelectedRoutine.Clone()
		out.SelectedRoutine = &sel
	}
	out.Stats.HabitHistory = cloneHistory(s.Stats.HabitHistory)
	out.Tasks = append([]Task(nil), s.Tasks...)
	return out
}

// Clone returns a deep copy of the routine.
func (r Routine) Clone() Routine {
	out := r
	out.Tasks = append([]HabitTask(nil), r.Tasks...)
	return out
}

func cloneRoutines(rs []Routine) []Routine {
	out := make([]Routine, len(rs))
	for i, r := range rs {
		out[i] = r.Clone()
	}
	return out
}

func cloneHistory(hs []HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, len(hs))
	for i, h := range hs {
		out[i] = h
		out[i].Habits = append([]HabitRecord(nil), h.Habits...)
	}
	return out
}
