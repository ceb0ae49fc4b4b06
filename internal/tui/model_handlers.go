package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
	"github.com/Soumodip04/MindScope-sub001/internal/core/styles"
)

// progressMsg carries one value from a notification's progress stream.
// ok is false once the stream has closed.
type progressMsg struct {
	id        string
	remaining float64
	ok        bool
	ch        <-chan float64
}

type scriptDoneMsg struct {
	err error
}

// watchProgress waits for the next value on ch.
func watchProgress(id string, ch <-chan float64) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		return progressMsg{id: id, remaining: v, ok: ok, ch: ch}
	}
}

func (m Model) playScript() tea.Cmd {
	if m.script == nil {
		return nil
	}
	script, player, ctx := m.script, m.player, m.ctx
	return func() tea.Msg {
		return scriptDoneMsg{err: player.Play(ctx, script)}
	}
}

func (m Model) handleEvents() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.buffer.WaitForSignal()}

	for _, e := range m.buffer.Drain() {
		m.activity = append(m.activity, formatEvent(e))
		if e.Kind == notify.EventAdded && e.Notification.Expires() {
			if ch, ok := m.center.Progress(e.Notification.ID); ok {
				cmds = append(cmds, watchProgress(e.Notification.ID, ch))
			}
		}
	}
	if extra := len(m.activity) - maxActivityLines; extra > 0 {
		m.activity = m.activity[extra:]
	}

	m.toastController.Sync(m.center.Snapshot())
	return m, tea.Batch(cmds...)
}

func (m Model) handleProgress(msg progressMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		return m, nil
	}
	m.toastController.SetProgress(msg.id, msg.remaining)
	return m, watchProgress(msg.id, msg.ch)
}

func (m Model) handleScriptDone(msg scriptDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		m.status = "script finished"
	case errors.Is(msg.err, context.Canceled):
		m.status = "script cancelled"
	default:
		m.log.Error().Err(msg.err).Msg("script playback failed")
		m.status = "script failed: " + msg.err.Error()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Dismiss):
		if n, ok := m.toastController.Newest(); ok {
			m.center.Remove(n.ID)
		}
	case key.Matches(msg, m.keys.Clear):
		m.center.Clear()
	case key.Matches(msg, m.keys.Trigger):
		if n, ok := m.toastController.Newest(); ok && len(n.Actions) > 0 {
			m.center.Trigger(n.ID, n.Actions[0].Label)
		}
	}
	return m, nil
}

func formatEvent(e notify.Event) string {
	n := e.Notification
	return fmt.Sprintf("%s  %-9s %s %s",
		e.At.Format("15:04:05.000"),
		e.Kind,
		styles.SeverityIcon(string(n.Severity)),
		n.Title,
	)
}
