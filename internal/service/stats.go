package service

import (
	"fmt"
	"time"

	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/store"
	"github.com/halvard/tend/internal/streak"
	"github.com/halvard/tend/internal/timeutil"
)

// StatsService exposes the derived statistics and day-off accounting.
type StatsService struct {
	sh *shared
}

// DayCell is one day of a calendar month with its derived status.
type DayCell struct {
	Day    int
	Key    string
	Status streak.DayStatus
}

// DayDetail is the drill-down view for one calendar date.
type DayDetail struct {
	Entry       habit.HistoryEntry
	RoutineName string
	IsDayOff    bool
	HasEntry    bool
}

// Combined returns the streak counted across the whole history log.
func (s *StatsService) Combined() int {
	return s.sh.store.Snapshot().Stats.RoutineStreak
}

// DayOff returns the current day-off record.
func (s *StatsService) DayOff() habit.DayOff {
	return s.sh.store.Snapshot().Stats.DayOff
}

// Reports returns the per-routine leading-run streaks.
func (s *StatsService) Reports() []streak.RoutineReport {
	snap := s.sh.store.Snapshot()
	return streak.RoutineReports(snap.Routines, snap.Stats.HabitHistory)
}

// Tally returns the cumulative per-habit completion counts.
func (s *StatsService) Tally() []streak.TallyReport {
	snap := s.sh.store.Snapshot()
	return streak.HabitTally(snap.Routines, snap.Stats.HabitHistory)
}

// Calendar returns one cell per day of the given month with its status.
func (s *StatsService) Calendar(year int, month time.Month) []DayCell {
	snap := s.sh.store.Snapshot()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)

	cells := make([]DayCell, 0, timeutil.DaysInMonth(first))
	for day := 1; day <= timeutil.DaysInMonth(first); day++ {
		key := timeutil.DateKey(first.AddDate(0, 0, day-1))
		cells = append(cells, DayCell{
			Day:    day,
			Key:    key,
			Status: streak.StatusForDay(snap.Stats.HabitHistory, snap.Stats.DayOff, key),
		})
	}
	return cells
}

// Detail looks up the history for one date. The routine name is
// resolved through the store so renamed routines report their current
// name; entries written before ids fall back to the recorded name.
func (s *StatsService) Detail(dateKey string) DayDetail {
	snap := s.sh.store.Snapshot()

	detail := DayDetail{
		IsDayOff: streak.IsDayOff(snap.Stats.DayOff, dateKey),
	}

	entry, ok := streak.EntryForDay(snap.Stats.HabitHistory, dateKey)
	if !ok {
		return detail
	}

	detail.Entry = entry
	detail.HasEntry = true
	detail.RoutineName = entry.RoutineName
	if name := s.sh.store.RoutineName(entry.RoutineID); name != "" {
		detail.RoutineName = name
	}
	return detail
}

// TakeDayOff consumes one day off if available. Returns the updated
// record and whether anything changed; at the limit or with one already
// taken today this is a no-op.
func (s *StatsService) TakeDayOff() (habit.DayOff, bool, error) {
	before := s.DayOff()
	after := streak.Take(before, s.sh.now())
	if after == before {
		return before, false, nil
	}

	s.sh.store.UpdateStats(store.StatsUpdate{DayOff: &after})
	return after, true, s.sh.save()
}

// UndoDayOff reverses today's day off. A no-op when none was taken today.
func (s *StatsService) UndoDayOff() (habit.DayOff, bool, error) {
	before := s.DayOff()
	after := streak.Undo(before)
	if after == before {
		return before, false, nil
	}

	s.sh.store.UpdateStats(store.StatsUpdate{DayOff: &after})
	return after, true, s.sh.save()
}

// SetDayOffLimit sets the monthly day-off budget.
func (s *StatsService) SetDayOffLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("day-off limit cannot be negative")
	}
	s.sh.store.SetDayOffLimit(limit)
	return s.sh.save()
}

// Reset clears the selection, zeroes every counter, empties the history
// log and restores the configured day-off budget.
func (s *StatsService) Reset() error {
	s.sh.store.SelectRoutine(nil)

	zero := 0
	dayOff := habit.DayOff{
		Limit:       s.sh.cfg.DayOffLimit,
		LastUpdated: s.sh.now(),
	}
	s.sh.store.UpdateStats(store.StatsUpdate{
		Streaks:       &zero,
		CurrentStreak: &zero,
		RoutineStreak: &zero,
		NeutralDays:   &zero,
		DayOff:        &dayOff,
		HabitHistory:  []habit.HistoryEntry{},
	})
	return s.sh.save()
}
