package commands

import (
	"github.com/urfave/cli/v3"
)

const (
	AppName  = "mindscope"
	AppUsage = "In-process notifications for the MindScope journal"

	AppDescription = `MindScope shows short-lived toasts for journal activity: saves, reminders,
validation problems and failures. Toasts expire on their own unless pinned.

Run 'mindscope play' to print the lifecycle of a notification script,
'mindscope tui' to watch it live, or 'mindscope checkin' to record a mood.`
)

// GlobalFlags returns the root flags bound to flags.
func GlobalFlags(flags *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("MINDSCOPE_LOG_LEVEL"),
			Value:       "warn",
			Destination: &flags.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (defaults to stderr)",
			Sources:     cli.EnvVars("MINDSCOPE_LOG_FILE"),
			Destination: &flags.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("MINDSCOPE_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &flags.ConfigPath,
		},
	}
}

// RegisterAll adds every subcommand to app.
func RegisterAll(app *cli.Command, flags *Flags) *cli.Command {
	app = NewPlayCmd(flags).Register(app)
	app = NewTuiCmd(flags).Register(app)
	app = NewCheckinCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)
	return app
}
