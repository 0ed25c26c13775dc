package service

import (
	"testing"
	"time"

	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/streak"
)

func TestTakeDayOff(t *testing.T) {
	services := newTestServices(t)

	dayOff, changed, err := services.Stats.TakeDayOff()
	if err != nil {
		t.Fatalf("TakeDayOff failed: %v", err)
	}
	if !changed {
		t.Fatal("expected the first take to change the record")
	}
	if dayOff.Used != 1 || !dayOff.UsedToday {
		t.Errorf("unexpected record: %+v", dayOff)
	}
	if !dayOff.LastUpdated.Equal(testNow) {
		t.Errorf("LastUpdated = %v, expected the clock", dayOff.LastUpdated)
	}
}

func TestTakeDayOff_TwiceSameDayIsNoOp(t *testing.T) {
	services := newTestServices(t)

	if _, _, err := services.Stats.TakeDayOff(); err != nil {
		t.Fatal(err)
	}
	dayOff, changed, err := services.Stats.TakeDayOff()
	if err != nil {
		t.Fatalf("second TakeDayOff failed: %v", err)
	}
	if changed {
		t.Error("second take on the same day should be a no-op")
	}
	if dayOff.Used != 1 {
		t.Errorf("Used = %d, expected 1", dayOff.Used)
	}
}

func TestTakeDayOff_AtLimitIsNoOp(t *testing.T) {
	services := newTestServices(t)

	// Burn the whole budget across three days.
	for i := 0; i < habit.DefaultDayOffLimit; i++ {
		day := testNow.AddDate(0, 0, i)
		services.SetNow(func() time.Time { return day })
		if _, changed, err := services.Stats.TakeDayOff(); err != nil || !changed {
			t.Fatalf("take %d failed: changed=%v err=%v", i, changed, err)
		}
	}

	next := testNow.AddDate(0, 0, habit.DefaultDayOffLimit)
	services.SetNow(func() time.Time { return next })
	if _, changed, err := services.Stats.TakeDayOff(); err != nil || changed {
		t.Errorf("take past the limit should be a no-op: changed=%v err=%v", changed, err)
	}
}

func TestUndoDayOff(t *testing.T) {
	services := newTestServices(t)

	if _, _, err := services.Stats.TakeDayOff(); err != nil {
		t.Fatal(err)
	}
	dayOff, changed, err := services.Stats.UndoDayOff()
	if err != nil {
		t.Fatalf("UndoDayOff failed: %v", err)
	}
	if !changed {
		t.Fatal("expected the undo to change the record")
	}
	if dayOff.Used != 0 || dayOff.UsedToday {
		t.Errorf("unexpected record after undo: %+v", dayOff)
	}
}

func TestUndoDayOff_WithoutTakeIsNoOp(t *testing.T) {
	services := newTestServices(t)

	if _, changed, err := services.Stats.UndoDayOff(); err != nil || changed {
		t.Errorf("undo without a take should be a no-op: changed=%v err=%v", changed, err)
	}
}

func TestSetDayOffLimit(t *testing.T) {
	services := newTestServices(t)

	if err := services.Stats.SetDayOffLimit(5); err != nil {
		t.Fatalf("SetDayOffLimit failed: %v", err)
	}
	if got := services.Stats.DayOff().Limit; got != 5 {
		t.Errorf("Limit = %d, expected 5", got)
	}

	if err := services.Stats.SetDayOffLimit(-1); err == nil {
		t.Error("negative limit should be rejected")
	}
}

func TestCalendar(t *testing.T) {
	services := newTestServices(t)
	setupSelected(t, services, "Run")
	if err := services.Today.Mark("Run", habit.StatusCompleted); err != nil {
		t.Fatal(err)
	}

	cells := services.Stats.Calendar(2026, time.August)
	if len(cells) != 31 {
		t.Fatalf("got %d cells for August, expected 31", len(cells))
	}
	if cells[30].Key != testToday {
		t.Errorf("cell 31 key = %q, expected %s", cells[30].Key, testToday)
	}
	if cells[30].Status != streak.DayComplete {
		t.Errorf("cell 31 status = %q, expected complete", cells[30].Status)
	}
	if cells[0].Status != streak.DayUnknown {
		t.Errorf("cell 1 status = %q, expected unknown", cells[0].Status)
	}
}

func TestDetail(t *testing.T) {
	services := newTestServices(t)
	setupSelected(t, services, "Run")
	if err := services.Today.Mark("Run", habit.StatusNeutral); err != nil {
		t.Fatal(err)
	}

	detail := services.Stats.Detail(testToday)
	if !detail.HasEntry {
		t.Fatal("expected an entry for today")
	}
	if detail.RoutineName != "Morning" {
		t.Errorf("RoutineName = %q, expected Morning", detail.RoutineName)
	}
	if detail.IsDayOff {
		t.Error("today is not a day off")
	}
	if len(detail.Entry.Habits) != 1 || detail.Entry.Habits[0].Status != habit.StatusNeutral {
		t.Errorf("unexpected entry: %+v", detail.Entry)
	}

	empty := services.Stats.Detail("2026-08-01")
	if empty.HasEntry {
		t.Error("expected no entry for an untracked date")
	}
}

func TestStatsReset(t *testing.T) {
	services := newTestServices(t)
	setupSelected(t, services, "Run")
	if err := services.Today.Mark("Run", habit.StatusCompleted); err != nil {
		t.Fatal(err)
	}
	if _, _, err := services.Stats.TakeDayOff(); err != nil {
		t.Fatal(err)
	}

	if err := services.Stats.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	if services.Today.Selected() != nil {
		t.Error("reset should clear the selection")
	}
	if got := services.Stats.Combined(); got != 0 {
		t.Errorf("Combined = %d, expected 0", got)
	}
	dayOff := services.Stats.DayOff()
	if dayOff.Used != 0 || dayOff.UsedToday {
		t.Errorf("day-off record not reset: %+v", dayOff)
	}
	if dayOff.Limit != habit.DefaultDayOffLimit {
		t.Errorf("Limit = %d, expected the configured budget", dayOff.Limit)
	}
	if got := len(services.Store().Snapshot().Stats.HabitHistory); got != 0 {
		t.Errorf("reset should empty the history log, got %d entries", got)
	}

	// Routines themselves survive a stats reset.
	if got := len(services.Routines.List()); got != 1 {
		t.Errorf("got %d routines after reset, expected 1", got)
	}
}
