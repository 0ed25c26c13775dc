package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halvard/tend/internal/config"
	"github.com/halvard/tend/internal/storage"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display configuration settings",
	Long: `Display the current effective configuration for tend.

Shows the configuration file location, whether it exists, and all current
settings. Values are merged from the config file with sensible defaults;
tend works without any configuration file.

Defaults:
  theme:          simple
  day_off_limit:  3
  timezone_label: IST

Configuration file location:
  ~/.config/tend/config.toml         Linux/macOS
  %APPDATA%\tend\config.toml         Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		fail("Failed to determine config file location", err, "Check that your home directory is accessible")
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		fail("Failed to load configuration", err,
			fmt.Sprintf("Check that your config file is valid TOML format: %s", configPath))
		return
	}

	dataPath, err := storage.DataPath()
	if err != nil {
		fail("Failed to determine data file location", err, "Check that your home directory is accessible")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for tend")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No file (using defaults)")
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Data file:       %s\n", dataPath)
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:           %s\n", cfg.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "day_off_limit:   %d\n", cfg.DayOffLimit)
	_, _ = fmt.Fprintf(deps.Stdout, "timezone_label:  %s\n", cfg.TimezoneLabel)
}

func init() {
	rootCmd.AddCommand(configCmd)
}
