package commands

import (
	"os"
	"path/filepath"

	"github.com/Soumodip04/MindScope-sub001/internal/core/config"
	"github.com/Soumodip04/MindScope-sub001/internal/core/logging"
	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mindscope", "config.yaml")
}

// cfg returns the loaded configuration, falling back to defaults when the
// Before hook did not run.
func (f *Flags) cfg() *config.Config {
	if f.Config == nil {
		cfg := config.DefaultConfig()
		f.Config = &cfg
	}
	return f.Config
}

// NewCenter builds a notification center from the loaded configuration.
func (f *Flags) NewCenter(opts ...notify.Option) *notify.Center {
	all := append(f.cfg().CenterOptions(), notify.WithLogger(logging.Component("notify")))
	return notify.New(append(all, opts...)...)
}
