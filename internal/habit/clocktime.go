package habit

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock time of day with a fixed timezone label.
// The label is display-only; no conversion is performed.
type ClockTime struct {
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Timezone string `json:"timezone"`
}

// ParseClockTime parses "HH:MM" into a ClockTime with the given
// timezone label.
func ParseClockTime(s, timezone string) (ClockTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("invalid hour in %q: must be 0-23", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid minute in %q: must be 0-59", s)
	}

	return ClockTime{Hour: hour, Minute: minute, Timezone: timezone}, nil
}

// String formats the time as "H:MM TZ", matching the today view.
func (c ClockTime) String() string {
	if c.Timezone == "" {
		return fmt.Sprintf("%d:%02d", c.Hour, c.Minute)
	}
	return fmt.Sprintf("%d:%02d %s", c.Hour, c.Minute, c.Timezone)
}
