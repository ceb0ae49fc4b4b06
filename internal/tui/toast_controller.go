package tui

import (
	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
)

const defaultMaxToasts = 5

type toast struct {
	notification notify.Notification
	// remaining is the fraction of the lifetime left, 1 for non-expiring toasts.
	remaining float64
}

// ToastController mirrors the center's active notifications for rendering.
// It never removes anything on its own; expiry and dismissal happen in the
// center and arrive here through Sync.
type ToastController struct {
	toasts     []toast
	maxVisible int
}

func NewToastController(maxVisible int) *ToastController {
	if maxVisible <= 0 {
		maxVisible = defaultMaxToasts
	}
	return &ToastController{maxVisible: maxVisible}
}

// Sync replaces the toast stack with snapshot, keeping the last known
// progress of toasts that are still active.
func (c *ToastController) Sync(snapshot []notify.Notification) {
	known := make(map[string]float64, len(c.toasts))
	for _, t := range c.toasts {
		known[t.notification.ID] = t.remaining
	}

	next := make([]toast, 0, len(snapshot))
	for _, n := range snapshot {
		remaining, ok := known[n.ID]
		if !ok {
			remaining = 1
		}
		next = append(next, toast{notification: n, remaining: remaining})
	}
	c.toasts = next
}

// SetProgress records the remaining fraction for id. It returns false when
// the toast is no longer active.
func (c *ToastController) SetProgress(id string, remaining float64) bool {
	for i := range c.toasts {
		if c.toasts[i].notification.ID == id {
			c.toasts[i].remaining = remaining
			return true
		}
	}
	return false
}

// Newest returns the most recently added active notification.
func (c *ToastController) Newest() (notify.Notification, bool) {
	if len(c.toasts) == 0 {
		return notify.Notification{}, false
	}
	return c.toasts[len(c.toasts)-1].notification, true
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Visible returns the newest maxVisible toasts, oldest first.
func (c *ToastController) Visible() []toast {
	if len(c.toasts) > c.maxVisible {
		return c.toasts[len(c.toasts)-c.maxVisible:]
	}
	return c.toasts
}

// Hidden returns how many active toasts are not visible.
func (c *ToastController) Hidden() int {
	return max(len(c.toasts)-c.maxVisible, 0)
}
