package habit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DurationToday is the duration tag for tasks that expire at the end of
// the current day.
const DurationToday Duration = "today"

// Custom day counts accepted for long-term tasks.
const (
	MinCustomDays = 2
	MaxCustomDays = 60
)

// Duration is a task lifetime tag: the literal "today" or "Ndays".
// Tasks never auto-expire past their due date; the tag only decides
// which list a task appears in and how its due date is derived.
type Duration string

// IsToday reports whether the task belongs to the today list.
func (d Duration) IsToday() bool {
	return d == DurationToday
}

// Days returns the number of days the tag spans, or 0 for "today" and
// malformed tags.
func (d Duration) Days() int {
	s := string(d)
	if !strings.HasSuffix(s, "days") {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, "days"))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// ParseDuration parses a duration tag from user input. Accepts "today",
// "Ndays" or a bare number of days. Custom day counts are bounded to
// 2-60, matching the long-term task form.
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == string(DurationToday) {
		return DurationToday, nil
	}

	numeric := strings.TrimSuffix(s, "days")
	n, err := strconv.Atoi(numeric)
	if err != nil {
		return "", fmt.Errorf("invalid duration %q: expected 'today' or a number of days", s)
	}
	if n < MinCustomDays || n > MaxCustomDays {
		return "", fmt.Errorf("invalid duration %q: days must be between %d and %d", s, MinCustomDays, MaxCustomDays)
	}
	return Duration(fmt.Sprintf("%ddays", n)), nil
}

// Task is an ad-hoc short- or long-term item, distinct from the habit
// tasks that make up a routine.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Duration    Duration  `json:"duration"`
	CreatedAt   time.Time `json:"createdAt"`
	DueDate     time.Time `json:"dueDate"`
	Completed   bool      `json:"completed"`
	Description string    `json:"description,omitempty"`
}
