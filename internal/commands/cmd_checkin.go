package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/Soumodip04/MindScope-sub001/internal/core/feedback"
	"github.com/Soumodip04/MindScope-sub001/internal/core/logging"
	"github.com/Soumodip04/MindScope-sub001/internal/core/validate"
	"github.com/Soumodip04/MindScope-sub001/internal/tui"
)

const defaultSaveLatency = 300 * time.Millisecond

var errInvalidCheckIn = errors.New("check-in has invalid fields")

var moodLabels = map[int]string{
	1: "rough",
	2: "low",
	3: "okay",
	4: "good",
	5: "great",
}

type CheckinCmd struct {
	flags   *Flags
	entry   CheckIn
	latency time.Duration
	journal *journal
}

// NewCheckinCmd creates a new checkin command.
func NewCheckinCmd(flags *Flags) *CheckinCmd {
	return &CheckinCmd{flags: flags}
}

// Register adds the checkin command to the application.
func (cmd *CheckinCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "checkin",
		Usage:     "Record a mood check-in",
		UsageText: "mindscope checkin [options]",
		Description: `Asks how you are feeling and saves the answer to the journal.

In a terminal an interactive form is shown unless --mood is given. Invalid
answers are reported as a single warning listing every problem; the save
itself is reported with loading, success and error notifications.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "mood",
				Usage:       fmt.Sprintf("mood from %d (rough) to %d (great)", validate.MinMood, validate.MaxMood),
				Destination: &cmd.entry.Mood,
			},
			&cli.StringFlag{
				Name:        "note",
				Usage:       fmt.Sprintf("optional note (up to %d characters)", validate.MaxNoteLength),
				Destination: &cmd.entry.Note,
			},
			&cli.StringFlag{
				Name:        "email",
				Usage:       "optional email address for a summary",
				Destination: &cmd.entry.Email,
			},
			&cli.DurationFlag{
				Name:        "latency",
				Usage:       "simulated save latency",
				Value:       defaultSaveLatency,
				Destination: &cmd.latency,
				Hidden:      true,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CheckinCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithOperation(ctx, "checkin")
	entry := cmd.entry

	if entry.Mood == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := checkinForm(&entry).RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("check-in form: %w", err)
		}
	}

	if cmd.journal == nil {
		cmd.journal = newJournal(cmd.latency)
	}

	center := cmd.flags.NewCenter()
	defer center.Close()

	saved, err := submitCheckIn(ctx, center, cmd.journal, entry)

	w := c.Root().Writer
	cfg := cmd.flags.cfg()
	_, _ = fmt.Fprintln(w, tui.RenderStack(center.Snapshot(), cfg.TUI.MaxVisible, cfg.TUI.ToastWidth))

	if err != nil {
		return cli.Exit("", 1)
	}

	summary, err := renderMarkdown(checkinSummary(saved, len(cmd.journal.Entries())), cfg.TUI.ToastWidth+20)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(w, summary)
	return nil
}

func checkinForm(entry *CheckIn) *huh.Form {
	options := make([]huh.Option[int], 0, validate.MaxMood)
	for mood := validate.MaxMood; mood >= validate.MinMood; mood-- {
		options = append(options, huh.NewOption(fmt.Sprintf("%d  %s", mood, moodLabels[mood]), mood))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How are you feeling?").
				Options(options...).
				Value(&entry.Mood),
			huh.NewText().
				Title("Anything on your mind?").
				Description(fmt.Sprintf("Optional, up to %d characters", validate.MaxNoteLength)).
				Value(&entry.Note),
			huh.NewInput().
				Title("Email for a weekly summary").
				Placeholder("optional").
				Value(&entry.Email),
		),
	)
}

// submitCheckIn validates entry, reporting problems as one warning, and
// saves it with loading and outcome notifications.
func submitCheckIn(ctx context.Context, n feedback.Notifier, j *journal, entry CheckIn) (CheckIn, error) {
	entry.Note = strings.TrimSpace(entry.Note)
	entry.Email = strings.TrimSpace(entry.Email)

	if !feedback.GateErr(n, entry.Validate()) {
		return CheckIn{}, errInvalidCheckIn
	}

	return feedback.WithAsync(ctx, n, feedback.AsyncText{
		Loading: "Saving check-in…",
		Success: "Check-in saved",
		Error:   "Could not save check-in",
	}, func(ctx context.Context) (CheckIn, error) {
		return j.Save(ctx, entry)
	})
}

func checkinSummary(c CheckIn, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Check-in, %s\n\n", c.At.Format("Mon Jan 2 15:04"))
	fmt.Fprintf(&b, "- **Mood:** %d/%d (%s)\n", c.Mood, validate.MaxMood, moodLabels[c.Mood])
	if c.Email != "" {
		fmt.Fprintf(&b, "- **Summary to:** %s\n", c.Email)
	}
	fmt.Fprintf(&b, "- **Entries this session:** %d\n", total)
	if c.Note != "" {
		fmt.Fprintf(&b, "\n> %s\n", strings.ReplaceAll(c.Note, "\n", "\n> "))
	}
	return b.String()
}

func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return out, nil
}
