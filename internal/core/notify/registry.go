package notify

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Registry holds the active notifications in insertion order. It is plain
// state and is not safe for concurrent use; Center serializes access.
type Registry struct {
	items           []Notification
	index           map[string]int
	newID           func() string
	now             func() time.Time
	defaultDuration time.Duration
}

// NewRegistry creates an empty registry. A zero defaultDuration selects
// DefaultDuration.
func NewRegistry(defaultDuration time.Duration) *Registry {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	return &Registry{
		index:           make(map[string]int),
		newID:           uuid.NewString,
		now:             time.Now,
		defaultDuration: defaultDuration,
	}
}

// Add stores a new notification at the end of the order and returns it.
func (r *Registry) Add(in Input) Notification {
	n := Notification{
		ID:         r.newID(),
		Severity:   in.Severity,
		Title:      in.Title,
		Message:    in.Message,
		Duration:   resolveDuration(in.Duration, r.defaultDuration),
		Persistent: in.Persistent,
		CreatedAt:  r.now(),
		Actions:    slices.Clone(in.Actions),
	}

	r.index[n.ID] = len(r.items)
	r.items = append(r.items, n)
	return n
}

// Remove deletes the notification with the given id. Unknown ids are a no-op.
func (r *Registry) Remove(id string) (Notification, bool) {
	i, ok := r.index[id]
	if !ok {
		return Notification{}, false
	}

	n := r.items[i]
	r.items = slices.Delete(r.items, i, i+1)
	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.items[j].ID] = j
	}
	return n, true
}

// Clear removes every notification and returns them in insertion order.
func (r *Registry) Clear() []Notification {
	removed := r.items
	r.items = nil
	clear(r.index)
	return removed
}

// Get returns the live notification with the given id.
func (r *Registry) Get(id string) (Notification, bool) {
	i, ok := r.index[id]
	if !ok {
		return Notification{}, false
	}
	return r.items[i], true
}

// Snapshot returns a copy of the active notifications in insertion order.
func (r *Registry) Snapshot() []Notification {
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of active notifications.
func (r *Registry) Len() int {
	return len(r.items)
}
