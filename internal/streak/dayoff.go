package streak

import (
	"time"

	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/timeutil"
)

// DayStatus classifies a calendar date for rendering.
type DayStatus string

const (
	// DayUnknown means no history entry exists for the date.
	DayUnknown    DayStatus = ""
	DayOffStatus  DayStatus = "day-off"
	DayComplete   DayStatus = "complete"
	DayPartial    DayStatus = "partial"
	DayIncomplete DayStatus = "incomplete"
)

// Available reports whether a day off can be taken: budget left and none
// taken today.
func Available(d habit.DayOff) bool {
	return d.Used < d.Limit && !d.UsedToday
}

// Take records a day off, stamping LastUpdated with now. When no day off
// is available (budget exhausted or one already taken today) the record
// is returned unchanged.
func Take(d habit.DayOff, now time.Time) habit.DayOff {
	if !Available(d) {
		return d
	}
	d.Used++
	d.UsedToday = true
	d.LastUpdated = now
	return d
}

// Undo reverses a taken day off: the used count is decremented (floored
// at zero) and the today flag cleared. LastUpdated is left untouched.
// A no-op when no day off was taken today.
func Undo(d habit.DayOff) habit.DayOff {
	if !d.UsedToday {
		return d
	}
	if d.Used > 0 {
		d.Used--
	}
	d.UsedToday = false
	return d
}

// IsDayOff reports whether the given date key is a recorded day off.
// Only the most recently marked day is knowable: the record keeps a
// single LastUpdated stamp, so older days off are indistinguishable
// from ordinary days.
func IsDayOff(d habit.DayOff, dateKey string) bool {
	if d.LastUpdated.IsZero() {
		return false
	}
	return timeutil.DateKey(d.LastUpdated) == dateKey && d.UsedToday
}

// StatusForDay classifies a calendar date. A date without a history
// entry is always DayUnknown, even when it is the recorded day off. The
// day-off check precedes and overrides the completion checks.
func StatusForDay(history []habit.HistoryEntry, d habit.DayOff, dateKey string) DayStatus {
	entry, ok := EntryForDay(history, dateKey)
	if !ok {
		return DayUnknown
	}

	if IsDayOff(d, dateKey) {
		return DayOffStatus
	}

	all := true
	some := false
	for _, h := range entry.Habits {
		if h.Status.CountsTowardStreak() {
			some = true
		} else {
			all = false
		}
	}

	switch {
	case all:
		return DayComplete
	case some:
		return DayPartial
	default:
		return DayIncomplete
	}
}
