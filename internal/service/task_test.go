package service

import (
	"testing"
	"time"

	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/timeutil"
)

func TestAddToday(t *testing.T) {
	services := newTestServices(t)

	task, err := services.Tasks.AddToday("buy milk")
	if err != nil {
		t.Fatalf("AddToday failed: %v", err)
	}
	if task.Duration != habit.DurationToday {
		t.Errorf("Duration = %q, expected today", task.Duration)
	}
	if !task.DueDate.Equal(timeutil.EndOfDay(testNow)) {
		t.Errorf("DueDate = %v, expected end of today", task.DueDate)
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
}

func TestAddToday_EmptyTitle(t *testing.T) {
	services := newTestServices(t)

	if _, err := services.Tasks.AddToday("   "); err == nil {
		t.Error("expected error for an empty title")
	}
}

func TestAddLongTerm(t *testing.T) {
	services := newTestServices(t)

	task, err := services.Tasks.AddLongTerm("write report", "7days", "quarterly numbers")
	if err != nil {
		t.Fatalf("AddLongTerm failed: %v", err)
	}
	if task.Duration != habit.Duration("7days") {
		t.Errorf("Duration = %q, expected 7days", task.Duration)
	}
	want := timeutil.EndOfDay(testNow.AddDate(0, 0, 7))
	if !task.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, expected %v", task.DueDate, want)
	}
	if task.Description != "quarterly numbers" {
		t.Errorf("Description = %q", task.Description)
	}
}

func TestAddLongTerm_TodayDelegates(t *testing.T) {
	services := newTestServices(t)

	task, err := services.Tasks.AddLongTerm("buy milk", "today", "ignored")
	if err != nil {
		t.Fatalf("AddLongTerm failed: %v", err)
	}
	if task.Duration != habit.DurationToday {
		t.Errorf("Duration = %q, expected today", task.Duration)
	}
	// The today form has no description field.
	if task.Description != "" {
		t.Errorf("Description = %q, expected empty for a today task", task.Description)
	}
}

func TestAddLongTerm_InvalidDuration(t *testing.T) {
	services := newTestServices(t)

	for _, d := range []string{"1", "61days", "soon"} {
		if _, err := services.Tasks.AddLongTerm("x", d, ""); err == nil {
			t.Errorf("AddLongTerm(%q) expected error", d)
		}
	}
}

func TestTaskList_SplitsByDuration(t *testing.T) {
	services := newTestServices(t)

	if _, err := services.Tasks.AddToday("buy milk"); err != nil {
		t.Fatal(err)
	}
	if _, err := services.Tasks.AddLongTerm("write report", "7days", ""); err != nil {
		t.Fatal(err)
	}

	lists := services.Tasks.List()
	if len(lists.Today) != 1 || lists.Today[0].Title != "buy milk" {
		t.Errorf("unexpected today list: %+v", lists.Today)
	}
	if len(lists.LongTerm) != 1 || lists.LongTerm[0].Title != "write report" {
		t.Errorf("unexpected long-term list: %+v", lists.LongTerm)
	}
}

func TestTaskComplete(t *testing.T) {
	services := newTestServices(t)

	task, err := services.Tasks.AddToday("buy milk")
	if err != nil {
		t.Fatal(err)
	}
	if err := services.Tasks.Complete(task.ID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	lists := services.Tasks.List()
	if !lists.Today[0].Completed {
		t.Error("task should be completed")
	}
}

func TestTaskDelete(t *testing.T) {
	services := newTestServices(t)

	task, err := services.Tasks.AddToday("buy milk")
	if err != nil {
		t.Fatal(err)
	}
	if err := services.Tasks.Delete(task.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := len(services.Tasks.List().Today); got != 0 {
		t.Errorf("got %d tasks after delete, expected 0", got)
	}
}

func TestTasks_NeverAutoExpire(t *testing.T) {
	services := newTestServices(t)

	if _, err := services.Tasks.AddToday("buy milk"); err != nil {
		t.Fatal(err)
	}

	// Move the clock a week past the due date; the task must still list.
	services.SetNow(func() time.Time { return testNow.AddDate(0, 0, 7) })

	if got := len(services.Tasks.List().Today); got != 1 {
		t.Errorf("got %d tasks, overdue tasks must not disappear", got)
	}
}
