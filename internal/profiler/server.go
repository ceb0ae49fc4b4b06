// Package profiler serves pprof and a live view of the notification center
// over HTTP for local debugging.
package profiler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/rs/zerolog"

	"github.com/Soumodip04/MindScope-sub001/internal/core/logging"
	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
	"github.com/Soumodip04/MindScope-sub001/pkg/iojson"
)

// SnapshotFunc returns the notifications to expose on /debug/notifications.
type SnapshotFunc func() []notify.Notification

type Server struct {
	mux        *http.ServeMux
	httpServer *http.Server
	listener   net.Listener
	port       int
	log        zerolog.Logger
}

type notificationView struct {
	ID         string    `json:"id"`
	Severity   string    `json:"severity"`
	Title      string    `json:"title"`
	Message    string    `json:"message,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	Persistent bool      `json:"persistent"`
	CreatedAt  time.Time `json:"created_at"`
	Remaining  float64   `json:"remaining"`
	Actions    []string  `json:"actions,omitempty"`
}

// New creates a server bound to port (0 picks a free port). When snapshot is
// non-nil the active notifications are served as JSON.
func New(port int, snapshot SnapshotFunc) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	if snapshot != nil {
		mux.HandleFunc("/debug/notifications", notificationsHandler(snapshot))
	}

	return &Server{
		mux: mux,
		httpServer: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		port: port,
		log:  logging.Component("profiler"),
	}
}

func notificationsHandler(snapshot SnapshotFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		active := snapshot()

		out := make([]notificationView, 0, len(active))
		for _, n := range active {
			v := notificationView{
				ID:         n.ID,
				Severity:   string(n.Severity),
				Title:      n.Title,
				Message:    n.Message,
				DurationMS: n.Duration.Milliseconds(),
				Persistent: n.Persistent,
				CreatedAt:  n.CreatedAt,
				Remaining:  n.Remaining(now),
			}
			for _, a := range n.Actions {
				v.Actions = append(v.Actions, a.Label)
			}
			out = append(out, v)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = iojson.WriteWith(w, w, map[string]any{"active": out})
	}
}

// Handle registers an extra handler. Call it before Start.
func (s *Server) Handle(pattern string, h http.Handler) {
	s.mux.Handle(pattern, h)
}

func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	s.listener = listener

	actualPort := listener.Addr().(*net.TCPAddr).Port
	s.log.Info().Int("port", actualPort).Msg("starting profiler server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("profiler server failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down profiler server")
	return s.httpServer.Shutdown(ctx)
}
