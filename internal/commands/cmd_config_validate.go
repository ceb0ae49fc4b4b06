package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Soumodip04/MindScope-sub001/internal/core/config"
	"github.com/Soumodip04/MindScope-sub001/internal/core/feedback"
	"github.com/Soumodip04/MindScope-sub001/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "mindscope config validate [options]",
				Description: "Loads the configuration file and reports every invalid setting by key.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationReport struct {
	Path   string   `json:"path"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// run validates the file directly rather than relying on the Before hook so
// that an invalid file is reported instead of aborting startup.
func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	report := validationReport{Path: cmd.flags.ConfigPath, Valid: true}

	if _, err := config.Load(cmd.flags.ConfigPath); err != nil {
		report.Valid = false
		report.Errors = feedback.Messages(err)
	}

	w := c.Root().Writer
	if cmd.format == "json" {
		if err := iojson.WriteWith(w, c.Root().ErrWriter, report); err != nil {
			return err
		}
	} else {
		p := newPrinter(w)
		for _, msg := range report.Errors {
			p.Errorf("%s", msg)
		}
		if report.Valid {
			p.Successf("Configuration is valid")
		} else {
			p.Printf("")
			p.Errorf("%d error(s) found in %s", len(report.Errors), report.Path)
		}
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}
