package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/Soumodip04/MindScope-sub001/internal/metrics"
	"github.com/Soumodip04/MindScope-sub001/internal/profiler"
	"github.com/Soumodip04/MindScope-sub001/internal/tui"
	"github.com/Soumodip04/MindScope-sub001/pkg/utils"
)

// deferredLogLimit caps log output held in memory while the TUI runs.
const deferredLogLimit = 1 << 20

type TuiCmd struct {
	flags        *Flags
	profilerPort int
	empty        bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tui",
		Usage:     "Show notifications live in the terminal",
		UsageText: "mindscope tui [options] [script | -]",
		Description: `Opens a full-screen view of the notification center while a script plays.
Toasts stack newest at the bottom with a bar showing the time left before
they expire.

Keys: d dismiss newest, c clear all, enter run the newest toast's first
action, q quit.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "profiler-port",
				Usage:       "enable pprof, /metrics and /debug/notifications on the specified port (e.g., 6060)",
				Sources:     cli.EnvVars("MINDSCOPE_PROFILER_PORT"),
				Destination: &cmd.profilerPort,
			},
			&cli.BoolFlag{
				Name:        "empty",
				Usage:       "start without playing a script",
				Destination: &cmd.empty,
			},
		},
		ShellComplete: ScriptCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *TuiCmd) run(ctx context.Context, c *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires a terminal; use 'mindscope play' for headless output")
	}

	opts := tui.Options{
		MaxVisible: cmd.flags.cfg().TUI.MaxVisible,
		ToastWidth: cmd.flags.cfg().TUI.ToastWidth,
	}
	if !cmd.empty {
		script, err := cmd.flags.loadScript(c.Args().First(), c.Root().Reader)
		if err != nil {
			return err
		}
		opts.Script = script
	}

	// Console logs would draw over the alternate screen; hold them until exit.
	if cmd.flags.LogFile == "" {
		deferred := utils.NewDeferredWriter(deferredLogLimit)
		prev := log.Logger
		log.Logger = log.Logger.Output(deferred)
		defer func() {
			log.Logger = prev
			_ = deferred.Flush(os.Stderr)
		}()
	}

	center := cmd.flags.NewCenter()
	defer center.Close()

	if cmd.profilerPort > 0 {
		stats := metrics.NewNotifications()
		defer center.Subscribe(stats.Observe)()

		profServer := profiler.New(cmd.profilerPort, center.Snapshot)
		profServer.Handle("/metrics", stats.Handler())
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := tui.New(ctx, center, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
