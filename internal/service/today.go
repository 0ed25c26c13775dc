package service

import (
	"fmt"
	"strings"

	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/store"
	"github.com/halvard/tend/internal/timeutil"
)

// TodayService drives the daily flow: selecting a routine, marking
// habits, notes and the end-of-day reset.
type TodayService struct {
	sh *shared
}

// Selected returns the routine selected for today, or nil.
func (s *TodayService) Selected() *habit.Routine {
	return s.sh.store.Snapshot().SelectedRoutine
}

// Notes returns today's notes.
func (s *TodayService) Notes() habit.Notes {
	return s.sh.store.Snapshot().TodayNotes
}

// SelectRoutine sets the routine active for today. Only one routine can
// be active; reset the day first to switch.
func (s *TodayService) SelectRoutine(nameOrID string) (habit.Routine, error) {
	if sel := s.Selected(); sel != nil {
		return habit.Routine{}, fmt.Errorf("routine %q is already selected for today (run 'tend reset day' to switch)", sel.Name)
	}

	r, ok := (&RoutineService{s.sh}).Find(nameOrID)
	if !ok {
		return habit.Routine{}, fmt.Errorf("no routine matching %q", nameOrID)
	}

	s.sh.store.SelectRoutine(&r)
	return r, s.sh.save()
}

// Mark records today's outcome for one habit on the selected routine.
// Status must be completed or neutral; use UndoMark to clear a mark.
// The history log has one entry per calendar date: marking updates
// today's entry in place, or appends one with every other habit failed.
func (s *TodayService) Mark(habitName string, status habit.Status) error {
	if status != habit.StatusCompleted && status != habit.StatusNeutral {
		return fmt.Errorf("invalid mark %q: must be completed or neutral", status)
	}
	return s.mark(habitName, status)
}

// UndoMark clears today's mark for one habit: the task returns to
// pending and the history record for the habit becomes failed.
func (s *TodayService) UndoMark(habitName string) error {
	return s.mark(habitName, habit.StatusPending)
}

func (s *TodayService) mark(habitName string, state habit.Status) error {
	snap := s.sh.store.Snapshot()
	sel := snap.SelectedRoutine
	if sel == nil {
		return fmt.Errorf("no routine selected for today (run 'tend select <routine>')")
	}

	taskIdx := -1
	for i, t := range sel.Tasks {
		if strings.EqualFold(t.Habit, habitName) {
			taskIdx = i
			break
		}
	}
	if taskIdx == -1 {
		return fmt.Errorf("no habit matching %q on routine %q", habitName, sel.Name)
	}

	sel.Tasks[taskIdx].State = state
	s.sh.store.SelectRoutine(sel)

	// Pending marks record as failed in the history, same as an unmarked
	// habit on a day that has an entry.
	recorded := state
	if recorded == habit.StatusPending {
		recorded = habit.StatusFailed
	}

	today := timeutil.DateKey(s.sh.now())
	history := snap.Stats.HabitHistory
	updated := false
	for i, e := range history {
		if e.Date != today {
			continue
		}
		for j, h := range e.Habits {
			if h.Name == sel.Tasks[taskIdx].Habit {
				history[i].Habits[j].Status = recorded
			}
		}
		updated = true
		break
	}

	if !updated && state != habit.StatusPending {
		records := make([]habit.HabitRecord, len(sel.Tasks))
		for i, t := range sel.Tasks {
			records[i] = habit.HabitRecord{Name: t.Habit, Status: habit.StatusFailed}
			if i == taskIdx {
				records[i].Status = recorded
			}
		}
		history = append(history, habit.HistoryEntry{
			Date:        today,
			RoutineID:   sel.ID,
			RoutineName: sel.Name,
			Habits:      records,
		})
	}

	s.sh.store.UpdateStats(store.StatsUpdate{HabitHistory: history})
	return s.sh.save()
}

// SetNotes merges a partial update of the permanent and temporary notes.
func (s *TodayService) SetNotes(permanent, temporary *string) error {
	s.sh.store.UpdateNotes(permanent, temporary)
	return s.sh.save()
}

// ResetDay clears the routine selection so a new one can be chosen,
// zeroes the current streak and walks one neutral day back (floored at
// zero). The history log is left untouched.
func (s *TodayService) ResetDay() error {
	snap := s.sh.store.Snapshot()

	s.sh.store.SelectRoutine(nil)

	zero := 0
	neutral := snap.Stats.NeutralDays - 1
	if neutral < 0 {
		neutral = 0
	}
	s.sh.store.UpdateStats(store.StatsUpdate{
		CurrentStreak: &zero,
		NeutralDays:   &neutral,
	})
	return s.sh.save()
}
