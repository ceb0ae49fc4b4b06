package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
)

// drainEventsMsg signals that buffered center events are ready.
type drainEventsMsg struct{}

// EventBuffer collects center events from any goroutine and emits coalesced
// drain signals for the bubbletea update loop.
type EventBuffer struct {
	mu     sync.Mutex
	events []notify.Event
	signal chan struct{}
}

// NewEventBuffer constructs a buffer for async event delivery.
func NewEventBuffer() *EventBuffer {
	return &EventBuffer{
		events: make([]notify.Event, 0),
		signal: make(chan struct{}, 1),
	}
}

// Push appends an event and emits a non-blocking drain signal. It has the
// notify.Subscriber signature so it can be passed to Center.Subscribe.
func (b *EventBuffer) Push(e notify.Event) {
	b.mu.Lock()
	b.events = append(b.events, e)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Drain returns all buffered events and clears the buffer.
func (b *EventBuffer) Drain() []notify.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == 0 {
		return nil
	}

	out := make([]notify.Event, len(b.events))
	copy(out, b.events)
	b.events = b.events[:0]
	return out
}

// WaitForSignal blocks until there are events ready to drain.
func (b *EventBuffer) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return drainEventsMsg{}
	}
}
