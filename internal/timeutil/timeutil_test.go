package timeutil

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2026, time.August, 31, 23, 59, 0, 0, time.Local)
	if got := DateKey(ts); got != "2026-08-31" {
		t.Errorf("DateKey = %q, expected 2026-08-31", got)
	}
}

func TestParseDateKey_RoundTrip(t *testing.T) {
	ts, err := ParseDateKey("2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if DateKey(ts) != "2026-08-31" {
		t.Errorf("round trip gave %q", DateKey(ts))
	}
	if ts.Hour() != 0 || ts.Minute() != 0 {
		t.Errorf("parsed key should be midnight, got %v", ts)
	}
}

func TestValidDateKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"2026-08-31", true},
		{"2026-02-29", false}, // not a leap year
		{"2024-02-29", true},
		{"2026-13-01", false},
		{"31-08-2026", false},
		{"2026-8-31", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDateKey(tt.key); got != tt.want {
			t.Errorf("ValidDateKey(%q) = %v, expected %v", tt.key, got, tt.want)
		}
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	ts := time.Date(2026, time.August, 31, 14, 30, 45, 123, time.Local)

	start := StartOfDay(ts)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("StartOfDay = %v, expected midnight", start)
	}

	end := EndOfDay(ts)
	if end.Day() != 31 || end.Hour() != 23 || end.Minute() != 59 {
		t.Errorf("EndOfDay = %v, expected last moment of the day", end)
	}
	if !end.After(ts) {
		t.Error("EndOfDay should be after any time that day")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.January, 31},
		{2026, time.February, 28},
		{2024, time.February, 29},
		{2026, time.April, 30},
	}

	for _, tt := range tests {
		ts := time.Date(tt.year, tt.month, 15, 12, 0, 0, 0, time.Local)
		if got := DaysInMonth(ts); got != tt.want {
			t.Errorf("DaysInMonth(%v %d) = %d, expected %d", tt.month, tt.year, got, tt.want)
		}
	}
}
