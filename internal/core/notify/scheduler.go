package notify

import (
	"sync"
	"time"
)

// DefaultTickInterval is the period of the progress tick stream.
const DefaultTickInterval = 100 * time.Millisecond

// ExpireFunc is called from the timer goroutine when an entry's duration
// elapses. The receiver must confirm the entry with Scheduler.Release
// before acting on it.
type ExpireFunc func(id string, seq uint64)

// Scheduler owns one cancellable timer and one progress stream per
// transient notification, keyed by notification id. Its table is not safe
// for concurrent use; Center serializes every call.
type Scheduler struct {
	tick    time.Duration
	now     func() time.Time
	seq     uint64
	entries map[string]*entry
}

// NewScheduler creates a scheduler with the given progress tick period.
func NewScheduler(tick time.Duration) *Scheduler {
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	return &Scheduler{
		tick:    tick,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Schedule starts the expiry timer and tick stream for n. Notifications that
// do not expire are ignored and false is returned.
func (s *Scheduler) Schedule(n Notification, onExpire ExpireFunc) bool {
	if !n.Expires() {
		return false
	}
	if old, ok := s.entries[n.ID]; ok {
		old.cancel()
	}

	s.seq++
	e := &entry{
		id:       n.ID,
		seq:      s.seq,
		duration: n.Duration,
		started:  s.now(),
		last:     1,
		stop:     make(chan struct{}),
		ticks:    make(chan float64, 1),
	}
	s.entries[n.ID] = e

	go e.run(s.tick, s.now, onExpire)
	return true
}

// Release removes the entry for id if seq still identifies the live entry.
// A false result means the entry was cancelled or replaced before the timer
// callback got here, and the caller must not act on it.
func (s *Scheduler) Release(id string, seq uint64) bool {
	e, ok := s.entries[id]
	if !ok || e.seq != seq {
		return false
	}
	delete(s.entries, id)
	e.cancel()
	return true
}

// Cancel stops the timer and closes the tick stream for id.
func (s *Scheduler) Cancel(id string) bool {
	e, ok := s.entries[id]
	if !ok {
		return false
	}
	delete(s.entries, id)
	e.cancel()
	return true
}

// CancelAll stops every outstanding timer and returns how many were running.
func (s *Scheduler) CancelAll() int {
	n := len(s.entries)
	for id, e := range s.entries {
		e.cancel()
		delete(s.entries, id)
	}
	return n
}

// Progress returns the tick stream for id. The channel yields the remaining
// fraction of the lifetime and is closed when the entry stops.
func (s *Scheduler) Progress(id string) (<-chan float64, bool) {
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	return e.ticks, true
}

// Pending returns the number of outstanding timers.
func (s *Scheduler) Pending() int {
	return len(s.entries)
}

type entry struct {
	id       string
	seq      uint64
	duration time.Duration
	started  time.Time
	stop     chan struct{}

	mu      sync.Mutex
	stopped bool
	last    float64
	ticks   chan float64
}

func (e *entry) run(tick time.Duration, now func() time.Time, onExpire ExpireFunc) {
	timer := time.NewTimer(e.duration)
	ticker := time.NewTicker(tick)
	defer timer.Stop()
	defer ticker.Stop()

	for {
		select {
		case <-e.stop:
			return
		case <-timer.C:
			e.emit(0)
			onExpire(e.id, e.seq)
			return
		case <-ticker.C:
			left := e.duration - now().Sub(e.started)
			e.emit(max(float64(left)/float64(e.duration), 0))
		}
	}
}

// emit publishes the remaining fraction, replacing an unread value.
// Values never increase and nothing is sent once the entry is cancelled.
func (e *entry) emit(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return
	}
	if v > e.last {
		v = e.last
	}
	e.last = v

	select {
	case e.ticks <- v:
	default:
		select {
		case <-e.ticks:
		default:
		}
		e.ticks <- v
	}
}

// cancel stops the goroutine and closes the tick stream. Safe to call twice.
func (e *entry) cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return
	}
	e.stopped = true
	close(e.stop)
	close(e.ticks)
}
