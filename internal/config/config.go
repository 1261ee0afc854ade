// Package config loads and validates the BragBoard client configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete client configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Paths   PathsConfig   `mapstructure:"paths"`
}

// ServerConfig describes how to reach the BragBoard API
type ServerConfig struct {
	// BaseURL is the root of the BragBoard API, without a trailing slash
	BaseURL string `mapstructure:"base_url"`
	// AuthTimeoutSeconds bounds login/register calls. Other calls carry no
	// client-enforced timeout and rely on the transport.
	AuthTimeoutSeconds int `mapstructure:"auth_timeout_seconds"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	Theme string `mapstructure:"theme"`
	// MentionLimit caps how many @mention suggestions are shown (default: 8)
	MentionLimit int `mapstructure:"mention_limit"`
	// MessageWidth is the wrap width for rendered shoutout messages
	MessageWidth int `mapstructure:"message_width"`
}

// LoggingConfig controls the debug log
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Enabled turns the debug log file on or off
	Enabled bool `mapstructure:"enabled"`
}

// PathsConfig controls where client state lives
type PathsConfig struct {
	// StateDir holds the session file and debug log.
	// Empty means the default state directory.
	StateDir string `mapstructure:"state_dir"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:            "http://localhost:8000",
			AuthTimeoutSeconds: 8,
		},
		TUI: TUIConfig{
			Theme:        "default",
			MentionLimit: 8,
			MessageWidth: 72,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Enabled: true,
		},
		Paths: PathsConfig{
			StateDir: "",
		},
	}
}

// SetDefaults registers all default values with viper.
// Call this before reading the config file so defaults are available even
// without one.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("server.base_url", defaults.Server.BaseURL)
	viper.SetDefault("server.auth_timeout_seconds", defaults.Server.AuthTimeoutSeconds)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.mention_limit", defaults.TUI.MentionLimit)
	viper.SetDefault("tui.message_width", defaults.TUI.MessageWidth)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)

	viper.SetDefault("paths.state_dir", defaults.Paths.StateDir)
}

// Load unmarshals the current viper state into a Config
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigDir returns the directory where the config file is expected
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bragboard")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bragboard"
	}
	return filepath.Join(home, ".config", "bragboard")
}

// StateDir resolves the effective state directory for session and log files
func (c *Config) StateDir() string {
	if c.Paths.StateDir != "" {
		return c.Paths.StateDir
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "bragboard")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bragboard"
	}
	return filepath.Join(home, ".local", "state", "bragboard")
}
