package notify

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EventKind names a lifecycle transition of a notification.
type EventKind string

const (
	EventAdded     EventKind = "added"
	EventDismissed EventKind = "dismissed"
	EventExpired   EventKind = "expired"
	EventCleared   EventKind = "cleared"
)

// Event is delivered to subscribers after the center's state has changed.
type Event struct {
	Kind         EventKind
	Notification Notification
	At           time.Time
}

// Subscriber is a callback invoked for every Event.
type Subscriber func(Event)

// Option configures a Center.
type Option func(*Center)

// WithLogger sets the logger used for lifecycle debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Center) { c.log = l }
}

// WithDefaultDuration sets the duration applied when an Input omits one.
func WithDefaultDuration(d time.Duration) Option {
	return func(c *Center) { c.defaultDuration = d }
}

// WithTickInterval sets the progress tick period.
func WithTickInterval(d time.Duration) Option {
	return func(c *Center) { c.tick = d }
}

// WithIDFunc replaces the UUID generator for notification ids.
func WithIDFunc(fn func() string) Option {
	return func(c *Center) { c.newID = fn }
}

// WithClock replaces time.Now for creation timestamps and progress.
func WithClock(fn func() time.Time) Option {
	return func(c *Center) { c.now = fn }
}

// Center is the public facade over the Registry and Scheduler. A single
// mutex serializes every mutation, including timer expiry, so a removal is
// processed at most once and a timer never acts on an absent entry.
type Center struct {
	mu       sync.Mutex
	registry *Registry
	sched    *Scheduler
	closed   bool
	// expiring counts expiries whose events are still being published
	expiring int

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int

	log             zerolog.Logger
	defaultDuration time.Duration
	tick            time.Duration
	newID           func() string
	now             func() time.Time
}

// New creates a Center. Call Close to tear it down.
func New(opts ...Option) *Center {
	c := &Center{
		subs:            make(map[int]Subscriber),
		log:             zerolog.Nop(),
		defaultDuration: DefaultDuration,
		tick:            DefaultTickInterval,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.registry = NewRegistry(c.defaultDuration)
	c.registry.now = c.now
	if c.newID != nil {
		c.registry.newID = c.newID
	}
	c.sched = NewScheduler(c.tick)
	c.sched.now = c.now
	return c
}

// Add creates a notification and schedules its expiry when eligible.
// It returns the new id, or "" once the center is closed.
func (c *Center) Add(in Input) string {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.log.Warn().Str("title", in.Title).Msg("notification dropped: center closed")
		return ""
	}

	n := c.registry.Add(in)
	scheduled := c.sched.Schedule(n, c.expire)
	c.mu.Unlock()

	c.log.Debug().
		Str("id", n.ID).
		Str("severity", string(n.Severity)).
		Dur("duration", n.Duration).
		Bool("scheduled", scheduled).
		Msg("notification added")

	c.publish(Event{Kind: EventAdded, Notification: n, At: n.CreatedAt})
	return n.ID
}

// Remove dismisses a notification. The timer and tick stream are cancelled
// before the entry leaves the registry. Unknown ids are ignored.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	c.sched.Cancel(id)
	n, ok := c.registry.Remove(id)
	c.mu.Unlock()

	if !ok {
		return
	}

	c.log.Debug().Str("id", id).Msg("notification dismissed")
	c.publish(Event{Kind: EventDismissed, Notification: n, At: c.now()})
}

// Clear removes every notification and cancels every outstanding timer.
func (c *Center) Clear() {
	c.mu.Lock()
	removed := c.clearLocked()
	c.mu.Unlock()

	c.publishCleared(removed)
}

// Close tears the center down: everything is cleared, subscribers are
// dropped after being told, and later Add calls are ignored.
func (c *Center) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	removed := c.clearLocked()
	c.mu.Unlock()

	c.publishCleared(removed)

	c.subMu.Lock()
	clear(c.subs)
	c.subMu.Unlock()
}

func (c *Center) clearLocked() []Notification {
	cancelled := c.sched.CancelAll()
	removed := c.registry.Clear()
	if len(removed) > 0 {
		c.log.Debug().Int("removed", len(removed)).Int("timers", cancelled).Msg("notifications cleared")
	}
	return removed
}

func (c *Center) publishCleared(removed []Notification) {
	at := c.now()
	for _, n := range removed {
		c.publish(Event{Kind: EventCleared, Notification: n, At: at})
	}
}

// expire is the scheduler callback. It runs on the timer goroutine.
func (c *Center) expire(id string, seq uint64) {
	c.mu.Lock()
	if !c.sched.Release(id, seq) {
		c.mu.Unlock()
		return
	}
	n, ok := c.registry.Remove(id)
	if ok {
		c.expiring++
	}
	c.mu.Unlock()

	if !ok {
		return
	}

	c.log.Debug().Str("id", id).Msg("notification expired")
	c.publish(Event{Kind: EventExpired, Notification: n, At: c.now()})

	c.mu.Lock()
	c.expiring--
	c.mu.Unlock()
}

// Success adds a success notification. Passing a duration of 0 disables
// expiry; omitting it selects the default.
func (c *Center) Success(title, message string, duration ...time.Duration) string {
	return c.shorthand(SeveritySuccess, title, message, duration)
}

// Error adds an error notification.
func (c *Center) Error(title, message string, duration ...time.Duration) string {
	return c.shorthand(SeverityError, title, message, duration)
}

// Warning adds a warning notification.
func (c *Center) Warning(title, message string, duration ...time.Duration) string {
	return c.shorthand(SeverityWarning, title, message, duration)
}

// Info adds an info notification.
func (c *Center) Info(title, message string, duration ...time.Duration) string {
	return c.shorthand(SeverityInfo, title, message, duration)
}

func (c *Center) shorthand(sev Severity, title, message string, duration []time.Duration) string {
	in := Input{Severity: sev, Title: title, Message: message}
	if len(duration) > 0 {
		in.Duration = duration[0]
		if in.Duration <= 0 {
			in.Duration = NoExpiry
		}
	}
	return c.Add(in)
}

// Snapshot returns the active notifications in insertion order.
func (c *Center) Snapshot() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.Snapshot()
}

// Get returns the live notification with the given id.
func (c *Center) Get(id string) (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.Get(id)
}

// Progress returns the remaining-fraction stream of a transient notification.
// The channel is closed when the notification is removed by any path.
func (c *Center) Progress(id string) (<-chan float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sched.Progress(id)
}

// Pending returns the number of outstanding expiry timers, counting expiries
// whose event is still being delivered to subscribers.
func (c *Center) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sched.Pending() + c.expiring
}

// Trigger invokes the action with the given label on a live notification.
// The callback runs without the center lock held.
func (c *Center) Trigger(id, label string) bool {
	n, ok := c.Get(id)
	if !ok {
		return false
	}
	for _, a := range n.Actions {
		if a.Label == label {
			a.Trigger()
			return true
		}
	}
	return false
}

// Subscribe registers fn for every subsequent event and returns a function
// that removes it.
func (c *Center) Subscribe(fn Subscriber) func() {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subMu.Lock()
			delete(c.subs, id)
			c.subMu.Unlock()
		})
	}
}

// publish runs outside c.mu, so events for one notification raised on
// different goroutines (an add and a very short expiry) may arrive out of order.
func (c *Center) publish(e Event) {
	c.subMu.Lock()
	subs := make([]Subscriber, 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.subMu.Unlock()

	for _, fn := range subs {
		fn(e)
	}
}
