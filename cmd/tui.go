package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/halvard/tend/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal interface",
	Long: `Launch the full-screen terminal interface with tabs for today's
routine, statistics, the calendar and theme selection.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		p := tea.NewProgram(tui.New(services), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fail("Failed to run the interface", err, "")
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
