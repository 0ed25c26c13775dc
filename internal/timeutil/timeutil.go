// Package timeutil provides calendar-date helpers shared by the store,
// the streak engine and the calendar views.
package timeutil

import "time"

// DateKeyLayout is the calendar-date key format used throughout the
// habit history log.
const DateKeyLayout = "2006-01-02"

// DateKey returns the YYYY-MM-DD key for the given time in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key into a local-midnight time.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, time.Local)
}

// ValidDateKey reports whether key is a well-formed YYYY-MM-DD date.
func ValidDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// StartOfMonth returns the first day of the month at 00:00:00 in the same timezone
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of calendar days in the month containing t.
func DaysInMonth(t time.Time) int {
	return StartOfMonth(t).AddDate(0, 1, -1).Day()
}
