package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Soumodip04/MindScope-sub001/internal/core/logging"
	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
	"github.com/Soumodip04/MindScope-sub001/internal/core/scenario"
	"github.com/Soumodip04/MindScope-sub001/internal/core/styles"
	"github.com/Soumodip04/MindScope-sub001/pkg/iojson"
	"github.com/Soumodip04/MindScope-sub001/pkg/tmpl"
)

const (
	defaultLinger    = 10 * time.Second
	idlePollInterval = 20 * time.Millisecond

	defaultLineTemplate = `{{ clock .At }}  {{ pad 9 .Kind }} {{ .Icon }} {{ .Title }}{{ if .Message }}: {{ .Message }}{{ end }}`
)

type PlayCmd struct {
	flags    *Flags
	linger   time.Duration
	format   string
	template string
}

// NewPlayCmd creates a new play command.
func NewPlayCmd(flags *Flags) *PlayCmd {
	return &PlayCmd{flags: flags}
}

// Register adds the play command to the application.
func (cmd *PlayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "play",
		Usage:     "Play a notification script and print every event",
		UsageText: "mindscope play [options] [script | -]",
		Description: `Runs a script against a fresh notification center without a UI and prints
one line per added, dismissed, expired or cleared notification.

The script argument is a file path, a name from the scenario library, or "-"
to read from stdin. Without an argument the built-in demo is played.

After the last step, play waits for outstanding expiry timers (at most
--linger) and then prints the notifications that are still active.`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:        "linger",
				Usage:       "maximum time to wait for pending expiries after the last step",
				Value:       defaultLinger,
				Destination: &cmd.linger,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.StringFlag{
				Name:        "template",
				Usage:       "Go template for text lines (fields: At Kind ID Severity Icon Title Message Duration Persistent Actions)",
				Value:       defaultLineTemplate,
				Destination: &cmd.template,
			},
		},
		ShellComplete: ScriptCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *PlayCmd) run(ctx context.Context, c *cli.Command) error {
	script, err := cmd.flags.loadScript(c.Args().First(), c.Root().Reader)
	if err != nil {
		return err
	}

	out, err := newEventWriter(c.Root().Writer, cmd.format, cmd.template)
	if err != nil {
		return err
	}

	center := cmd.flags.NewCenter()
	defer center.Close()

	unsubscribe := center.Subscribe(out.Event)

	ctx = logging.WithOperation(ctx, "play")
	if err := scenario.NewPlayer(center).Play(ctx, script); err != nil {
		unsubscribe()
		return fmt.Errorf("play %s: %w", script.Name, err)
	}

	waitIdle(ctx, center, cmd.linger)
	unsubscribe()

	return out.Snapshot(center.Snapshot())
}

// waitIdle blocks until no expiry timers are pending, the linger period has
// passed, or ctx is done.
func waitIdle(ctx context.Context, center *notify.Center, linger time.Duration) {
	if center.Pending() == 0 || linger <= 0 {
		return
	}

	deadline := time.NewTimer(linger)
	defer deadline.Stop()
	ticker := time.NewTicker(idlePollInterval)
	defer ticker.Stop()

	for center.Pending() > 0 {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			return
		case <-ticker.C:
		}
	}
}

// eventLine is the rendered form of one notification in play output.
type eventLine struct {
	At         time.Time     `json:"at"`
	Kind       string        `json:"kind"`
	ID         string        `json:"id"`
	Severity   string        `json:"severity"`
	Icon       string        `json:"-"`
	Title      string        `json:"title"`
	Message    string        `json:"message,omitempty"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
	Persistent bool          `json:"persistent,omitempty"`
	Actions    []string      `json:"actions,omitempty"`
}

func newEventLine(kind string, at time.Time, n notify.Notification) eventLine {
	l := eventLine{
		At:         at,
		Kind:       kind,
		ID:         n.ID,
		Severity:   string(n.Severity),
		Icon:       styles.SeverityIcon(string(n.Severity)),
		Title:      n.Title,
		Message:    n.Message,
		Duration:   n.Duration,
		DurationMS: n.Duration.Milliseconds(),
		Persistent: n.Persistent,
	}
	for _, a := range n.Actions {
		l.Actions = append(l.Actions, a.Label)
	}
	return l
}

// eventWriter prints center events. Event may be called from timer
// goroutines, so every write goes through a LineWriter or the text mutex.
type eventWriter struct {
	json *iojson.LineWriter
	text *textWriter
}

func newEventWriter(w io.Writer, format, template string) (*eventWriter, error) {
	switch format {
	case "json":
		return &eventWriter{json: iojson.NewLineWriter(w)}, nil
	case "text", "":
		tpl, err := tmpl.Parse(template)
		if err != nil {
			return nil, fmt.Errorf("invalid --template: %w", err)
		}
		return &eventWriter{text: newTextWriter(w, tpl)}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected text or json)", format)
	}
}

// Event writes one line for e.
func (w *eventWriter) Event(e notify.Event) {
	line := newEventLine(string(e.Kind), e.At, e.Notification)
	if w.json != nil {
		_ = w.json.Write(line)
		return
	}
	w.text.Write(line)
}

// Snapshot writes the notifications still active at the end of playback.
func (w *eventWriter) Snapshot(active []notify.Notification) error {
	now := time.Now()
	lines := make([]eventLine, 0, len(active))
	for _, n := range active {
		lines = append(lines, newEventLine("active", now, n))
	}

	if w.json != nil {
		return w.json.Write(map[string]any{"kind": "snapshot", "active": lines})
	}

	w.text.Printf("\n%d active notification(s)", len(lines))
	for _, l := range lines {
		w.text.Write(l)
	}
	return nil
}
