package service

import (
	"testing"

	"github.com/halvard/tend/internal/habit"
)

func TestParseHabitSpec(t *testing.T) {
	services := newTestServices(t)

	task, err := services.Routines.ParseHabitSpec("6:00 Morning run")
	if err != nil {
		t.Fatalf("ParseHabitSpec failed: %v", err)
	}
	if task.Habit != "Morning run" {
		t.Errorf("Habit = %q, expected Morning run", task.Habit)
	}
	if task.Time.Hour != 6 || task.Time.Minute != 0 {
		t.Errorf("Time = %+v, expected 6:00", task.Time)
	}
	if task.Time.Timezone != "IST" {
		t.Errorf("Timezone = %q, expected the configured label", task.Time.Timezone)
	}
	if task.State != habit.StatusPending {
		t.Errorf("State = %q, expected pending", task.State)
	}
	if task.ID == "" {
		t.Error("task should get an id")
	}
}

func TestParseHabitSpec_Invalid(t *testing.T) {
	services := newTestServices(t)

	for _, spec := range []string{"", "6:00", "Run", "25:00 Run", "6:00  "} {
		if _, err := services.Routines.ParseHabitSpec(spec); err == nil {
			t.Errorf("ParseHabitSpec(%q) expected error", spec)
		}
	}
}

func TestRoutineCreate(t *testing.T) {
	services := newTestServices(t)

	r, err := services.Routines.Create("Morning", []string{"6:00 Run", "7:00 Read"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if r.ID == "" {
		t.Error("routine should get an id")
	}
	if len(r.Tasks) != 2 {
		t.Errorf("got %d tasks, expected 2", len(r.Tasks))
	}
	if !r.CreatedAt.Equal(testNow) || !r.UpdatedAt.Equal(testNow) {
		t.Errorf("timestamps not stamped with the clock: %v / %v", r.CreatedAt, r.UpdatedAt)
	}

	if got := len(services.Routines.List()); got != 1 {
		t.Errorf("List returned %d routines, expected 1", got)
	}
}

func TestRoutineCreate_EmptyName(t *testing.T) {
	services := newTestServices(t)

	if _, err := services.Routines.Create("  ", nil); err == nil {
		t.Error("expected error for an empty name")
	}
}

func TestRoutineCreate_BadSpecAborts(t *testing.T) {
	services := newTestServices(t)

	if _, err := services.Routines.Create("Morning", []string{"6:00 Run", "bad"}); err == nil {
		t.Error("expected error for a malformed habit spec")
	}
	if got := len(services.Routines.List()); got != 0 {
		t.Errorf("failed create left %d routines behind", got)
	}
}

func TestRoutineRename_KeepsHistoryAttached(t *testing.T) {
	services := newTestServices(t)

	if _, err := services.Routines.Create("Morning", []string{"6:00 Run"}); err != nil {
		t.Fatal(err)
	}
	if _, err := services.Today.SelectRoutine("Morning"); err != nil {
		t.Fatal(err)
	}
	if err := services.Today.Mark("Run", habit.StatusCompleted); err != nil {
		t.Fatal(err)
	}

	if _, err := services.Routines.Rename("Morning", "Early Morning"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	reports := services.Stats.Reports()
	if len(reports) != 1 {
		t.Fatalf("got %d reports, expected 1", len(reports))
	}
	if reports[0].RoutineName != "Early Morning" {
		t.Errorf("report name = %q, expected the new name", reports[0].RoutineName)
	}
	if reports[0].DaysFollowed != 1 {
		t.Errorf("DaysFollowed = %d, history should stay attached through a rename", reports[0].DaysFollowed)
	}

	detail := services.Stats.Detail(testToday)
	if detail.RoutineName != "Early Morning" {
		t.Errorf("day detail name = %q, expected the new name", detail.RoutineName)
	}
}

func TestRoutineRename_Unknown(t *testing.T) {
	services := newTestServices(t)

	if _, err := services.Routines.Rename("nope", "new"); err == nil {
		t.Error("expected error for an unknown routine")
	}
}

func TestRoutineDelete(t *testing.T) {
	services := newTestServices(t)

	if _, err := services.Routines.Create("Morning", []string{"6:00 Run"}); err != nil {
		t.Fatal(err)
	}
	if _, err := services.Today.SelectRoutine("Morning"); err != nil {
		t.Fatal(err)
	}

	if err := services.Routines.Delete("Morning"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := len(services.Routines.List()); got != 0 {
		t.Errorf("got %d routines after delete, expected 0", got)
	}
	if services.Today.Selected() != nil {
		t.Error("deleting the selected routine should clear the selection")
	}
}

func TestRoutineFind(t *testing.T) {
	services := newTestServices(t)

	created, err := services.Routines.Create("Morning", nil)
	if err != nil {
		t.Fatal(err)
	}

	if r, ok := services.Routines.Find(created.ID); !ok || r.Name != "Morning" {
		t.Errorf("Find by id failed: %+v %v", r, ok)
	}
	if r, ok := services.Routines.Find("MORNING"); !ok || r.ID != created.ID {
		t.Errorf("Find by case-insensitive name failed: %+v %v", r, ok)
	}
	if _, ok := services.Routines.Find("nope"); ok {
		t.Error("Find should miss on unknown input")
	}
}
