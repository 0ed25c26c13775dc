package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/halvard/tend/internal/timeutil"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks, habit tallies and the day-off budget",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStats()
	},
}

func showStats() {
	services, ok := getServices()
	if !ok {
		return
	}

	combined := services.Stats.Combined()
	_, _ = fmt.Fprintf(deps.Stdout, "Current streak: %d %s\n", combined, pluralize("day", combined))

	d := services.Stats.DayOff()
	_, _ = fmt.Fprintf(deps.Stdout, "Days off:       %d / %d", d.Used, d.Limit)
	if d.UsedToday {
		_, _ = fmt.Fprint(deps.Stdout, " (one taken today)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	reports := services.Stats.Reports()
	if len(reports) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Routines:")
		for _, r := range reports {
			_, _ = fmt.Fprintf(deps.Stdout, "  %-20s %d %s followed",
				r.RoutineName, r.DaysFollowed, pluralize("day", r.DaysFollowed))
			if r.LastCompleted != "" {
				if t, err := timeutil.ParseDateKey(r.LastCompleted); err == nil {
					_, _ = fmt.Fprintf(deps.Stdout, " (last: %s)", t.Format("Jan 2, 2006"))
				}
			}
			_, _ = fmt.Fprintln(deps.Stdout)
		}
	}

	tallies := services.Stats.Tally()
	if len(tallies) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Habits:")
		for _, t := range tallies {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", t.RoutineName)
			for _, h := range t.Habits {
				_, _ = fmt.Fprintf(deps.Stdout, "    %-20s %d %s followed\n",
					h.Name, h.DaysFollowed, pluralize("day", h.DaysFollowed))
			}
		}
	}
}

// dayCmd represents the day command
var dayCmd = &cobra.Command{
	Use:   "day <date>",
	Short: "Show the recorded history for one date",
	Long: `Show the habit outcomes recorded for a calendar date (YYYY-MM-DD),
including whether it was the most recently taken day off.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !timeutil.ValidDateKey(args[0]) {
			fail(fmt.Sprintf("Invalid date %q", args[0]), nil, "Dates look like 2024-01-31")
			return
		}

		services, ok := getServices()
		if !ok {
			return
		}

		detail := services.Stats.Detail(args[0])
		t, _ := timeutil.ParseDateKey(args[0])
		_, _ = fmt.Fprintln(deps.Stdout, t.Format("Monday, January 2, 2006"))

		if detail.IsDayOff {
			_, _ = fmt.Fprintln(deps.Stdout, "Day off taken")
		}
		if !detail.HasEntry {
			_, _ = fmt.Fprintln(deps.Stdout, "No data available for this date")
			return
		}

		_, _ = fmt.Fprintf(deps.Stdout, "Routine: %s\n", detail.RoutineName)
		for _, h := range detail.Entry.Habits {
			_, _ = fmt.Fprintf(deps.Stdout, "  %-20s %s\n", h.Name, h.Status)
		}
	},
}

// calCmd represents the cal command
var calCmd = &cobra.Command{
	Use:   "cal [YYYY-MM]",
	Short: "Show a month calendar of day statuses",
	Long: `Render a calendar for the given month (default: current month).

Markers: # complete, + partial, ! incomplete, o day off.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if len(args) == 1 {
			parsed, err := time.ParseInLocation("2006-01", args[0], time.Local)
			if err != nil {
				fail(fmt.Sprintf("Invalid month %q", args[0]), nil, "Months look like 2024-01")
				return
			}
			year, month = parsed.Year(), parsed.Month()
		}

		services, ok := getServices()
		if !ok {
			return
		}

		printCalendar(services, year, month)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(calCmd)
}
