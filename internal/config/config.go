package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "tend"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// Theme is the theme used when the snapshot carries no selection
	// (simple, space, abstract or gradient)
	Theme string `toml:"theme"`
	// DayOffLimit is the monthly day-off budget applied to fresh snapshots
	DayOffLimit int `toml:"day_off_limit"`
	// TimezoneLabel is the label attached to habit times (display-only)
	TimezoneLabel string `toml:"timezone_label"`
}

// DefaultConfig returns a Config with sensible defaults that match current behavior.
// - theme: "simple"
// - day_off_limit: 3
// - timezone_label: "IST"
func DefaultConfig() Config {
	return Config{
		Theme:         "simple",
		DayOffLimit:   habit.DefaultDayOffLimit,
		TimezoneLabel: "IST",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config file at the given path, filling unset
// keys with defaults. A missing file yields the defaults without error;
// invalid TOML is an error.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	if cfg.DayOffLimit < 0 {
		cfg.DayOffLimit = habit.DefaultDayOffLimit
	}
	return cfg, nil
}
