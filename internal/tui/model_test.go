package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
	"github.com/Soumodip04/MindScope-sub001/pkg/tuitest"
)

func newTestCenter(t *testing.T) *notify.Center {
	t.Helper()

	var (
		mu sync.Mutex
		n  int
	)
	c := notify.New(
		notify.WithTickInterval(5*time.Millisecond),
		notify.WithIDFunc(func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("n%d", n)
		}),
	)
	t.Cleanup(c.Close)
	return c
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModel_SyncsOnEvents(t *testing.T) {
	c := newTestCenter(t)
	m := New(context.Background(), c, Options{})

	c.Info("first", "")
	c.Error("second", "boom", 0)

	m, cmd := update(t, m, drainEventsMsg{})
	require.NotNil(t, cmd)

	require.Len(t, m.toastController.Visible(), 2)
	newest, ok := m.toastController.Newest()
	require.True(t, ok)
	assert.Equal(t, "second", newest.Title)
	assert.Len(t, m.activity, 2)
	assert.Contains(t, m.activity[0], "added")
	assert.Contains(t, m.activity[0], "first")
}

func TestModel_DismissNewest(t *testing.T) {
	c := newTestCenter(t)
	m := New(context.Background(), c, Options{})

	c.Info("older", "")
	c.Info("newer", "")
	m, _ = update(t, m, drainEventsMsg{})

	m, _ = update(t, m, tuitest.KeyPress('d'))
	m, _ = update(t, m, drainEventsMsg{})

	snap := c.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "older", snap[0].Title)
	newest, _ := m.toastController.Newest()
	assert.Equal(t, "older", newest.Title)
}

func TestModel_ClearAll(t *testing.T) {
	c := newTestCenter(t)
	m := New(context.Background(), c, Options{})

	c.Info("a", "")
	c.Warning("b", "", 0)
	m, _ = update(t, m, drainEventsMsg{})

	m, _ = update(t, m, tuitest.KeyPress('c'))
	m, _ = update(t, m, drainEventsMsg{})

	assert.Empty(t, c.Snapshot())
	assert.False(t, m.toastController.HasToasts())
	assert.Equal(t, 0, c.Pending())
}

func TestModel_EnterTriggersFirstAction(t *testing.T) {
	c := newTestCenter(t)
	m := New(context.Background(), c, Options{})

	var pressed []string
	c.Add(notify.Input{
		Severity:   notify.SeverityWarning,
		Title:      "Reminder",
		Persistent: true,
		Actions: []notify.Action{
			{Label: "Check in", Invoke: func() { pressed = append(pressed, "Check in") }},
			{Label: "Later", Invoke: func() { pressed = append(pressed, "Later") }},
		},
	})
	m, _ = update(t, m, drainEventsMsg{})

	_, _ = update(t, m, tuitest.KeyEnter())
	assert.Equal(t, []string{"Check in"}, pressed)
	assert.Len(t, c.Snapshot(), 1)
}

func TestModel_ProgressStream(t *testing.T) {
	c := newTestCenter(t)
	m := New(context.Background(), c, Options{})

	id := c.Info("ticking", "", 200*time.Millisecond)
	m, _ = update(t, m, drainEventsMsg{})

	ch, ok := c.Progress(id)
	require.True(t, ok)

	msg, ok := watchProgress(id, ch)().(progressMsg)
	require.True(t, ok)
	require.True(t, msg.ok)
	assert.LessOrEqual(t, msg.remaining, 1.0)

	m, cmd := update(t, m, msg)
	assert.NotNil(t, cmd)
	assert.InDelta(t, msg.remaining, m.toastController.Visible()[0].remaining, 1e-9)

	c.Remove(id)
	for v := range ch {
		_ = v
	}
	closed, ok := watchProgress(id, ch)().(progressMsg)
	require.True(t, ok)
	assert.False(t, closed.ok)

	_, cmd = update(t, m, closed)
	assert.Nil(t, cmd)
}

func TestModel_ScriptDoneStatus(t *testing.T) {
	c := newTestCenter(t)
	m := New(context.Background(), c, Options{})

	m, _ = update(t, m, scriptDoneMsg{})
	assert.Equal(t, "script finished", m.status)

	m, _ = update(t, m, scriptDoneMsg{err: context.Canceled})
	assert.Equal(t, "script cancelled", m.status)

	m, _ = update(t, m, scriptDoneMsg{err: errors.New("bad")})
	assert.Equal(t, "script failed: bad", m.status)
}

func TestModel_QuitUnsubscribes(t *testing.T) {
	c := newTestCenter(t)
	m := New(context.Background(), c, Options{})

	m, cmd := update(t, m, tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())

	c.Info("after quit", "")
	assert.Nil(t, m.buffer.Drain())
}

func TestModel_View(t *testing.T) {
	c := newTestCenter(t)
	m := New(context.Background(), c, Options{ToastWidth: 30})
	m, _ = update(t, m, tuitest.WindowSize(100, 30))

	assert.Contains(t, m.View(), "waiting for notifications")

	c.Success("Saved", "entry stored")
	m, _ = update(t, m, drainEventsMsg{})

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Saved")
	assert.Contains(t, out, "dismiss newest")
}
