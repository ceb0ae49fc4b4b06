// Package config handles configuration loading and validation for mindscope.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
	"github.com/Soumodip04/MindScope-sub001/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Notifications NotificationsConfig `yaml:"notifications"`
	TUI           TUIConfig           `yaml:"tui"`
	Scenarios     ScenariosConfig     `yaml:"scenarios"`
}

// NotificationsConfig tunes the notification center.
type NotificationsConfig struct {
	// DefaultDuration applies when a notification omits its duration.
	DefaultDuration time.Duration `yaml:"default_duration"`
	// TickInterval is the period of the progress stream.
	TickInterval time.Duration `yaml:"tick_interval"`
}

// TUIConfig controls toast rendering.
type TUIConfig struct {
	MaxVisible int    `yaml:"max_visible"`
	ToastWidth int    `yaml:"toast_width"`
	Theme      string `yaml:"theme"`
}

// ScenariosConfig locates the script library.
type ScenariosConfig struct {
	// Dir holds named scripts. Relative paths resolve against the directory
	// of the config file.
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Notifications: NotificationsConfig{
			DefaultDuration: notify.DefaultDuration,
			TickInterval:    notify.DefaultTickInterval,
		},
		TUI: TUIConfig{
			MaxVisible: 5,
			ToastWidth: 50,
			Theme:      styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	cfg.resolvePaths(configPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Notifications.DefaultDuration == 0 {
		c.Notifications.DefaultDuration = defaults.Notifications.DefaultDuration
	}
	if c.Notifications.TickInterval == 0 {
		c.Notifications.TickInterval = defaults.Notifications.TickInterval
	}
	if c.TUI.MaxVisible == 0 {
		c.TUI.MaxVisible = defaults.TUI.MaxVisible
	}
	if c.TUI.ToastWidth == 0 {
		c.TUI.ToastWidth = defaults.TUI.ToastWidth
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// resolvePaths anchors the scenario library next to the config file.
func (c *Config) resolvePaths(configPath string) {
	if configPath == "" {
		return
	}
	base := filepath.Dir(configPath)
	switch {
	case c.Scenarios.Dir == "":
		c.Scenarios.Dir = filepath.Join(base, "scenarios")
	case !filepath.IsAbs(c.Scenarios.Dir):
		c.Scenarios.Dir = filepath.Join(base, c.Scenarios.Dir)
	}
}

// CenterOptions returns the notify options derived from the configuration.
func (c *Config) CenterOptions() []notify.Option {
	return []notify.Option{
		notify.WithDefaultDuration(c.Notifications.DefaultDuration),
		notify.WithTickInterval(c.Notifications.TickInterval),
	}
}
