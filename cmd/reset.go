package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resetCmd represents the reset command group
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the day or all statistics",
}

// resetDayCmd represents the reset day command
var resetDayCmd = &cobra.Command{
	Use:   "day",
	Short: "Clear today's routine selection",
	Long: `Clear today's routine selection so a new routine can be chosen. The
current streak counter is zeroed; the history log is untouched.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		if err := services.Today.ResetDay(); err != nil {
			fail("Failed to reset the day", err, "")
			return
		}
		_, _ = fmt.Fprintln(deps.Stdout, "Day reset. Select a new routine with 'tend select <routine>'")
	},
}

// resetStatsCmd represents the reset stats command
var resetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Reset all statistics to zero",
	Long: `Zero every counter, clear the habit history log and restore the
configured day-off budget. Routine and task definitions are kept.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		if err := services.Stats.Reset(); err != nil {
			fail("Failed to reset stats", err, "")
			return
		}
		_, _ = fmt.Fprintln(deps.Stdout, "All stats have been reset to zero")
	},
}

func init() {
	resetCmd.AddCommand(resetDayCmd)
	resetCmd.AddCommand(resetStatsCmd)
	rootCmd.AddCommand(resetCmd)
}
