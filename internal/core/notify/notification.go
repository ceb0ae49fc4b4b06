// Package notify holds the in-process notification center: an ordered
// registry of active notifications, the expiry scheduler that removes
// transient ones, and the Center facade that ties both together.
package notify

import (
	"time"
)

// Severity classifies a notification for presentation and helper routing.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid reports whether s is one of the known severities.
func (s Severity) IsValid() bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// ActionStyle is a rendering hint for an action.
type ActionStyle string

const (
	ActionPrimary   ActionStyle = "primary"
	ActionSecondary ActionStyle = "secondary"
)

const (
	// DefaultDuration applies when an Input leaves Duration unset.
	DefaultDuration = 5 * time.Second

	// NoExpiry explicitly requests a zero duration: the notification is
	// kept until removed even though it is not marked persistent.
	NoExpiry time.Duration = -1
)

// Action is a labeled command attached to a notification. Invoke is opaque
// to the center; it is only stored and run on demand.
type Action struct {
	Label  string
	Style  ActionStyle
	Invoke func()
}

// Trigger runs the action's callback. A nil callback is a no-op.
func (a Action) Trigger() {
	if a.Invoke != nil {
		a.Invoke()
	}
}

// Notification is an immutable alert owned by the registry until removed.
type Notification struct {
	ID         string
	Severity   Severity
	Title      string
	Message    string
	Duration   time.Duration
	Persistent bool
	CreatedAt  time.Time
	Actions    []Action
}

// Expires reports whether the notification is removed automatically.
func (n Notification) Expires() bool {
	return !n.Persistent && n.Duration > 0
}

// Remaining returns the fraction of the lifetime left at now, in [0, 1].
// Notifications that never expire always report 1.
func (n Notification) Remaining(now time.Time) float64 {
	if !n.Expires() {
		return 1
	}
	left := n.Duration - now.Sub(n.CreatedAt)
	switch {
	case left <= 0:
		return 0
	case left >= n.Duration:
		return 1
	}
	return float64(left) / float64(n.Duration)
}

// Input describes a notification to create. A zero Duration selects the
// default; use NoExpiry for an explicit zero.
type Input struct {
	Severity   Severity
	Title      string
	Message    string
	Duration   time.Duration
	Persistent bool
	Actions    []Action
}

// resolveDuration applies the default-duration rule.
func resolveDuration(d, def time.Duration) time.Duration {
	switch {
	case d == 0:
		return def
	case d < 0:
		return 0
	}
	return d
}
