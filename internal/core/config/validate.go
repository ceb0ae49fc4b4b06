package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/Soumodip04/MindScope-sub001/internal/core/styles"
)

const (
	minTickInterval = 10 * time.Millisecond
	minToastWidth   = 20
)

// Validate checks that the configuration is valid. Errors are reported per
// field as criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("notifications.default_duration", c.Notifications.DefaultDuration, positiveDuration),
		criterio.Run("notifications.tick_interval", c.Notifications.TickInterval, atLeast(minTickInterval)),
		criterio.Run("notifications.tick_interval", c.Notifications.TickInterval, shorterThan(c.Notifications.DefaultDuration)),
		criterio.Run("tui.max_visible", c.TUI.MaxVisible, positiveInt),
		criterio.Run("tui.toast_width", c.TUI.ToastWidth, minWidth),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		criterio.Run("scenarios.dir", c.Scenarios.Dir, directoryOrMissing),
	)
}

func positiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", d)
	}
	return nil
}

func atLeast(limit time.Duration) func(time.Duration) error {
	return func(d time.Duration) error {
		if d < limit {
			return fmt.Errorf("must be at least %s, got %s", limit, d)
		}
		return nil
	}
}

func shorterThan(limit time.Duration) func(time.Duration) error {
	return func(d time.Duration) error {
		if limit > 0 && d >= limit {
			return fmt.Errorf("must be shorter than default_duration (%s)", limit)
		}
		return nil
	}
}

func positiveInt(n int) error {
	if n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

func minWidth(n int) error {
	if n < minToastWidth {
		return fmt.Errorf("must be at least %d columns", minToastWidth)
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func directoryOrMissing(dir string) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
