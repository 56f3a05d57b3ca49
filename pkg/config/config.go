// Package config provides TOML-based configuration for unit-pulse.
package config

import "fmt"

// Config is the root configuration structure.
type Config struct {
	General GeneralConfig `toml:"general"`
	GitHub  GitHubConfig  `toml:"github"`
	Theme   ThemeConfig   `toml:"theme"`
}

// GeneralConfig holds application-wide settings.
type GeneralConfig struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// LogFile is where slog output goes. Logs never go to stderr while
	// the TUI owns the terminal.
	LogFile string `toml:"log_file"`
	// StartupRoute is the location path shown at launch ("",
	// "unit-converter" or "github-info"). Unknown values show the
	// not-found page, same as navigating to them.
	StartupRoute string `toml:"startup_route"`
}

// GitHubConfig holds settings for the profile fetch.
type GitHubConfig struct {
	// Endpoint overrides the profile URL, mainly for testing against a
	// local server. Empty selects the public GitHub API.
	Endpoint string `toml:"endpoint"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name string `toml:"name"`
}

// Validate checks the configuration for values that would misbehave at
// runtime.
func (c *Config) Validate() error {
	switch c.General.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.General.LogLevel)
	}
	if c.General.LogFile == "" {
		return fmt.Errorf("log_file must not be empty")
	}
	return nil
}
