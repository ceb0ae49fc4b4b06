// Package metrics exports notification center activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
)

const namespace = "mindscope"

// Notifications counts center events. Observe is a notify.Subscriber.
type Notifications struct {
	registry *prometheus.Registry

	mu      sync.Mutex
	live    map[string]struct{}
	// removed holds ids whose removal arrived before their add event.
	removed map[string]struct{}

	Events   *prometheus.CounterVec
	Active   prometheus.Gauge
	Lifetime *prometheus.HistogramVec
}

// NewNotifications creates the metrics on a private registry.
func NewNotifications() *Notifications {
	m := &Notifications{
		registry: prometheus.NewRegistry(),
		live:     make(map[string]struct{}),
		removed:  make(map[string]struct{}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "events_total",
			Help:      "Notification lifecycle events by kind and severity",
		}, []string{"kind", "severity"}),
		Active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "active",
			Help:      "Notifications currently shown",
		}),
		Lifetime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "lifetime_seconds",
			Help:      "Time from creation to removal, by removal kind",
			Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 300},
		}, []string{"kind"}),
	}

	m.registry.MustRegister(m.Events, m.Active, m.Lifetime)
	return m
}

// Observe records e.
func (m *Notifications) Observe(e notify.Event) {
	kind := string(e.Kind)
	m.Events.WithLabelValues(kind, string(e.Notification.Severity)).Inc()

	if n, changed := m.track(e); changed {
		m.Active.Set(float64(n))
	}

	if e.Kind != notify.EventAdded && !e.Notification.CreatedAt.IsZero() {
		m.Lifetime.WithLabelValues(kind).Observe(e.At.Sub(e.Notification.CreatedAt).Seconds())
	}
}

// track updates the live set and returns its size and whether it changed. A
// removal seen before its add cancels that add.
func (m *Notifications) track(e notify.Event) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := e.Notification.ID
	if e.Kind == notify.EventAdded {
		if _, gone := m.removed[id]; gone {
			delete(m.removed, id)
			return len(m.live), false
		}
		m.live[id] = struct{}{}
		return len(m.live), true
	}

	if _, ok := m.live[id]; !ok {
		m.removed[id] = struct{}{}
		return len(m.live), false
	}
	delete(m.live, id)
	return len(m.live), true
}

// Handler serves the metrics in the Prometheus text format.
func (m *Notifications) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
