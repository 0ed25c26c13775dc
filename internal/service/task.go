package service

import (
	"fmt"
	"strings"

	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/timeutil"
)

// TaskService provides CRUD for ad-hoc short- and long-term tasks.
type TaskService struct {
	sh *shared
}

// TaskLists is the split view of the ad-hoc task list.
type TaskLists struct {
	Today    []habit.Task
	LongTerm []habit.Task
}

// AddToday adds a task for today, due at the end of the current day.
func (s *TaskService) AddToday(title string) (habit.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return habit.Task{}, fmt.Errorf("task title cannot be empty")
	}

	now := s.sh.now()
	t := habit.Task{
		ID:        habit.NewID(),
		Title:     title,
		Duration:  habit.DurationToday,
		CreatedAt: now,
		DueDate:   timeutil.EndOfDay(now),
	}

	s.sh.store.AddTask(t)
	return t, s.sh.save()
}

// AddLongTerm adds a task with an N-day duration tag and an optional
// description. The due date is derived from the duration.
func (s *TaskService) AddLongTerm(title, durationStr, description string) (habit.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return habit.Task{}, fmt.Errorf("task title cannot be empty")
	}

	duration, err := habit.ParseDuration(durationStr)
	if err != nil {
		return habit.Task{}, err
	}
	if duration.IsToday() {
		return s.AddToday(title)
	}

	now := s.sh.now()
	t := habit.Task{
		ID:          habit.NewID(),
		Title:       title,
		Duration:    duration,
		CreatedAt:   now,
		DueDate:     timeutil.EndOfDay(now.AddDate(0, 0, duration.Days())),
		Description: strings.TrimSpace(description),
	}

	s.sh.store.AddTask(t)
	return t, s.sh.save()
}

// Complete marks a task as completed. Completing it again is harmless;
// there is no toggle-off.
func (s *TaskService) Complete(id string) error {
	s.sh.store.CompleteTask(id)
	return s.sh.save()
}

// Delete removes a task. Tasks never auto-expire, even past their due
// date; deletion is always explicit.
func (s *TaskService) Delete(id string) error {
	s.sh.store.DeleteTask(id)
	return s.sh.save()
}

// List returns the tasks split into the today and long-term lists, in
// creation order.
func (s *TaskService) List() TaskLists {
	var lists TaskLists
	for _, t := range s.sh.store.Snapshot().Tasks {
		if t.Duration.IsToday() {
			lists.Today = append(lists.Today, t)
		} else {
			lists.LongTerm = append(lists.LongTerm, t)
		}
	}
	return lists
}
