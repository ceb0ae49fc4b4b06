// Package tui implements the live notification view.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Soumodip04/MindScope-sub001/internal/core/logging"
	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
	"github.com/Soumodip04/MindScope-sub001/internal/core/scenario"
)

const maxActivityLines = 200

// Options configures the TUI behavior.
type Options struct {
	MaxVisible int              // Toasts shown at once (default 5)
	ToastWidth int              // Toast content width in columns (default 50)
	Script     *scenario.Script // Played on start (optional)
}

// Model is the bubbletea model for the live notification view.
type Model struct {
	ctx         context.Context
	center      *notify.Center
	buffer      *EventBuffer
	unsubscribe func()

	toastController *ToastController
	toastView       *ToastView

	script *scenario.Script
	player *scenario.Player
	status string

	activity []string
	keys     keyMap
	help     help.Model
	log      zerolog.Logger

	width    int
	height   int
	quitting bool
}

// New creates a Model subscribed to center. Playback of opts.Script, if any,
// is bound to ctx.
func New(ctx context.Context, center *notify.Center, opts Options) Model {
	buffer := NewEventBuffer()
	controller := NewToastController(opts.MaxVisible)
	controller.Sync(center.Snapshot())

	m := Model{
		ctx:             ctx,
		center:          center,
		buffer:          buffer,
		unsubscribe:     center.Subscribe(buffer.Push),
		toastController: controller,
		toastView:       NewToastView(controller, opts.ToastWidth),
		script:          opts.Script,
		player:          scenario.NewPlayer(center),
		keys:            defaultKeyMap(),
		help:            help.New(),
		log:             logging.Component("tui"),
	}
	if opts.Script != nil {
		m.status = "playing " + opts.Script.Name
	}
	return m
}

// Init starts listening for center events and begins script playback.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.buffer.WaitForSignal()}
	if cmd := m.playScript(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case drainEventsMsg:
		return m.handleEvents()
	case progressMsg:
		return m.handleProgress(msg)
	case scriptDoneMsg:
		return m.handleScriptDone(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// quit detaches from the center and stops the program.
func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	return m, tea.Quit
}
