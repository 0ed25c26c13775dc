// Package streak derives statistics from the habit history log and the
// day-off record: streak counts, per-habit tallies and calendar day
// classification. All functions are pure and total over their snapshot;
// malformed dates or unknown routines yield empty results, never errors.
package streak

import (
	"sort"

	"github.com/halvard/tend/internal/habit"
)

// RoutineReport is the derived streak state for one routine.
type RoutineReport struct {
	RoutineID   string
	RoutineName string
	// DaysFollowed is the leading run of most-recent entries where every
	// habit was completed or neutral, stopping at the first day that was not.
	DaysFollowed int
	// LastCompleted is the date key of the most recent entry in that run,
	// or "" when the run is empty.
	LastCompleted string
}

// HabitCount is a cumulative completed-or-neutral day count for one habit.
type HabitCount struct {
	Name         string
	DaysFollowed int
}

// TallyReport groups habit counts for one routine.
type TallyReport struct {
	RoutineID   string
	RoutineName string
	Habits      []HabitCount
}

// allComplete reports whether every habit in the entry kept the streak
// alive. An entry with no habit records counts as complete, matching
// the vacuous-truth behavior the history log has always had.
func allComplete(e habit.HistoryEntry) bool {
	for _, h := range e.Habits {
		if !h.Status.CountsTowardStreak() {
			return false
		}
	}
	return true
}

// sortedDesc returns a copy of the history sorted by date key descending.
// Date keys are YYYY-MM-DD, so lexicographic order is chronological order;
// malformed keys still sort deterministically.
func sortedDesc(history []habit.HistoryEntry) []habit.HistoryEntry {
	out := append([]habit.HistoryEntry(nil), history...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// CombinedStreak counts the leading run of all-complete days across the
// whole history log, regardless of which routine produced each entry.
// Switching the active routine mid-history therefore extends or breaks
// this streak; that is the established behavior and callers rely on it.
func CombinedStreak(history []habit.HistoryEntry) int {
	count := 0
	for _, e := range sortedDesc(history) {
		if !allComplete(e) {
			break
		}
		count++
	}
	return count
}

// RoutineReports computes the leading-run streak for each known routine,
// scoping the history to entries recorded for that routine.
func RoutineReports(routines []habit.Routine, history []habit.HistoryEntry) []RoutineReport {
	sorted := sortedDesc(history)

	reports := make([]RoutineReport, 0, len(routines))
	for _, r := range routines {
		report := RoutineReport{RoutineID: r.ID, RoutineName: r.Name}
		for _, e := range sorted {
			if !e.BelongsTo(r) {
				continue
			}
			if !allComplete(e) {
				break
			}
			report.DaysFollowed++
			if report.LastCompleted == "" {
				report.LastCompleted = e.Date
			}
		}
		reports = append(reports, report)
	}
	return reports
}

// HabitTally counts, for each habit declared on each routine, how many
// historical entries recorded it as completed or neutral. This is a
// cumulative count over the full log, not a streak.
func HabitTally(routines []habit.Routine, history []habit.HistoryEntry) []TallyReport {
	reports := make([]TallyReport, 0, len(routines))
	for _, r := range routines {
		report := TallyReport{RoutineID: r.ID, RoutineName: r.Name}
		counts := make(map[string]int, len(r.Tasks))
		for _, t := range r.Tasks {
			counts[t.Habit] = 0
		}

		for _, e := range history {
			if !e.BelongsTo(r) {
				continue
			}
			for _, h := range e.Habits {
				if _, declared := counts[h.Name]; declared && h.Status.CountsTowardStreak() {
					counts[h.Name]++
				}
			}
		}

		for _, t := range r.Tasks {
			report.Habits = append(report.Habits, HabitCount{
				Name:         t.Habit,
				DaysFollowed: counts[t.Habit],
			})
		}
		reports = append(reports, report)
	}
	return reports
}

// EntryForDay returns the single history entry recorded for the given
// date key, if any. Lookup is by date alone: one entry per calendar day.
func EntryForDay(history []habit.HistoryEntry, dateKey string) (habit.HistoryEntry, bool) {
	for _, e := range history {
		if e.Date == dateKey {
			return e, true
		}
	}
	return habit.HistoryEntry{}, false
}
