package service

import (
	"fmt"
	"strings"

	"github.com/halvard/tend/internal/habit"
)

// RoutineService provides routine CRUD operations
type RoutineService struct {
	sh *shared
}

// ParseHabitSpec parses a "HH:MM Habit label" spec into a habit task.
// The timezone label comes from configuration.
func (s *RoutineService) ParseHabitSpec(spec string) (habit.HabitTask, error) {
	fields := strings.SplitN(strings.TrimSpace(spec), " ", 2)
	if len(fields) != 2 || strings.TrimSpace(fields[1]) == "" {
		return habit.HabitTask{}, fmt.Errorf("invalid habit %q: expected 'HH:MM Habit name'", spec)
	}

	clock, err := habit.ParseClockTime(fields[0], s.sh.cfg.TimezoneLabel)
	if err != nil {
		return habit.HabitTask{}, err
	}

	return habit.HabitTask{
		ID:    habit.NewID(),
		Habit: strings.TrimSpace(fields[1]),
		Time:  clock,
		State: habit.StatusPending,
	}, nil
}

// Create adds a new routine from a name and a list of habit specs.
func (s *RoutineService) Create(name string, habitSpecs []string) (habit.Routine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return habit.Routine{}, fmt.Errorf("routine name cannot be empty")
	}

	tasks := make([]habit.HabitTask, 0, len(habitSpecs))
	for _, spec := range habitSpecs {
		task, err := s.ParseHabitSpec(spec)
		if err != nil {
			return habit.Routine{}, err
		}
		tasks = append(tasks, task)
	}

	now := s.sh.now()
	r := habit.Routine{
		ID:        habit.NewID(),
		Name:      name,
		Tasks:     tasks,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.sh.store.AddRoutine(r)
	return r, s.sh.save()
}

// Rename changes a routine's display name. History stays attached: the
// log is keyed by routine id and names are resolved at read time.
func (s *RoutineService) Rename(nameOrID, newName string) (habit.Routine, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return habit.Routine{}, fmt.Errorf("routine name cannot be empty")
	}

	r, ok := s.Find(nameOrID)
	if !ok {
		return habit.Routine{}, fmt.Errorf("no routine matching %q", nameOrID)
	}

	r.Name = newName
	r.UpdatedAt = s.sh.now()
	s.sh.store.UpdateRoutine(r)
	return r, s.sh.save()
}

// Delete removes a routine. Deleting the selected routine clears the
// selection.
func (s *RoutineService) Delete(nameOrID string) error {
	r, ok := s.Find(nameOrID)
	if !ok {
		return fmt.Errorf("no routine matching %q", nameOrID)
	}

	s.sh.store.DeleteRoutine(r.ID)
	return s.sh.save()
}

// List returns all routines.
func (s *RoutineService) List() []habit.Routine {
	return s.sh.store.Snapshot().Routines
}

// Find resolves a routine by id or by case-insensitive name.
func (s *RoutineService) Find(nameOrID string) (habit.Routine, bool) {
	for _, r := range s.List() {
		if r.ID == nameOrID || strings.EqualFold(r.Name, nameOrID) {
			return r, true
		}
	}
	return habit.Routine{}, false
}
