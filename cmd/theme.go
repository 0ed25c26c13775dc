package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halvard/tend/internal/tui/ui"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Show or set the interface theme",
	Long: `Show the active theme, or set it when a name is given. The selection
is persisted with the rest of the application state.

Available themes: ` + strings.Join(ui.ThemeNames(), ", "),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		services, ok := getServices()
		if !ok {
			return
		}

		if len(args) == 0 {
			_, _ = fmt.Fprintf(deps.Stdout, "Theme: %s\n", services.Settings.Theme())
			_, _ = fmt.Fprintf(deps.Stdout, "Available: %s\n", strings.Join(ui.ThemeNames(), ", "))
			return
		}

		name := strings.ToLower(args[0])
		if !ui.ValidTheme(name) {
			fail(fmt.Sprintf("Unknown theme %q", args[0]), nil,
				"Available themes: "+strings.Join(ui.ThemeNames(), ", "))
			return
		}

		if err := services.Settings.SetTheme(name); err != nil {
			fail("Failed to set theme", err, "")
			return
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Theme set to %q\n", name)
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
