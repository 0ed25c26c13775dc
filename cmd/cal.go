package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/halvard/tend/internal/service"
	"github.com/halvard/tend/internal/streak"
)

// statusMarker renders a day status as a single-character suffix.
func statusMarker(s streak.DayStatus) string {
	switch s {
	case streak.DayComplete:
		return "#"
	case streak.DayPartial:
		return "+"
	case streak.DayIncomplete:
		return "!"
	case streak.DayOffStatus:
		return "o"
	default:
		return " "
	}
}

// printCalendar renders a Monday-first month grid with status markers.
func printCalendar(services *service.Services, year int, month time.Month) {
	cells := services.Stats.Calendar(year, month)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)

	_, _ = fmt.Fprintln(deps.Stdout, first.Format("January 2006"))
	_, _ = fmt.Fprintln(deps.Stdout, "Mo  Tu  We  Th  Fr  Sa  Su")

	// Leading blanks up to the first weekday (Monday-first, Sunday = 7)
	weekday := int(first.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	line := strings.Repeat("    ", weekday-1)

	for _, cell := range cells {
		line += fmt.Sprintf("%2d%s ", cell.Day, statusMarker(cell.Status))
		if (weekday+cell.Day-1)%7 == 0 {
			_, _ = fmt.Fprintln(deps.Stdout, strings.TrimRight(line, " "))
			line = ""
		}
	}
	if line != "" {
		_, _ = fmt.Fprintln(deps.Stdout, strings.TrimRight(line, " "))
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, "# complete   + partial   ! incomplete   o day off")
}
