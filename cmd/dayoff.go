package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// dayoffCmd represents the dayoff command
var dayoffCmd = &cobra.Command{
	Use:   "dayoff",
	Short: "Take a day off from the monthly budget",
	Long: `Take a budgeted day off. A day off is available while the monthly
budget has room and none has been taken today. The calendar shows the
most recently taken day off as 'day-off'.

  tend dayoff            Take a day off
  tend dayoff undo       Reverse today's day off
  tend dayoff limit 5    Set the monthly budget`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		d, taken, err := services.Stats.TakeDayOff()
		if err != nil {
			fail("Failed to record day off", err, "")
			return
		}
		if !taken {
			if d.UsedToday {
				_, _ = fmt.Fprintln(deps.Stdout, "A day off is already recorded for today")
			} else {
				_, _ = fmt.Fprintf(deps.Stdout, "No days off left (%d/%d used)\n", d.Used, d.Limit)
			}
			return
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Day off taken (%d/%d used)\n", d.Used, d.Limit)
	},
}

// dayoffUndoCmd represents the dayoff undo command
var dayoffUndoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Reverse today's day off",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		d, undone, err := services.Stats.UndoDayOff()
		if err != nil {
			fail("Failed to undo day off", err, "")
			return
		}
		if !undone {
			_, _ = fmt.Fprintln(deps.Stdout, "No day off was taken today")
			return
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Day off undone (%d/%d used)\n", d.Used, d.Limit)
	},
}

// dayoffLimitCmd represents the dayoff limit command
var dayoffLimitCmd = &cobra.Command{
	Use:   "limit <n>",
	Short: "Set the monthly day-off budget",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		limit, err := strconv.Atoi(args[0])
		if err != nil || limit < 0 {
			fail(fmt.Sprintf("Invalid limit %q", args[0]), nil, "The limit must be a whole number, 0 or higher")
			return
		}

		services, ok := getServices()
		if !ok {
			return
		}

		if err := services.Stats.SetDayOffLimit(limit); err != nil {
			fail("Failed to set day-off limit", err, "")
			return
		}
		d := services.Stats.DayOff()
		_, _ = fmt.Fprintf(deps.Stdout, "Day-off limit set to %d (%d used)\n", d.Limit, d.Used)
	},
}

func init() {
	dayoffCmd.AddCommand(dayoffUndoCmd)
	dayoffCmd.AddCommand(dayoffLimitCmd)
	rootCmd.AddCommand(dayoffCmd)
}
