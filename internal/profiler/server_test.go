package profiler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
)

func startServer(t *testing.T, snapshot SnapshotFunc) *Server {
	t.Helper()

	server := New(0, snapshot)
	require.NoError(t, server.Start(context.Background()), "Start() error")
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})
	return server
}

func TestServer_StartAndShutdown(t *testing.T) {
	server := New(0, nil)
	require.NoError(t, server.Start(context.Background()))
	assert.NotEmpty(t, server.Addr())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(shutdownCtx))
}

func TestServer_PprofEndpoints(t *testing.T) {
	server := startServer(t, nil)
	baseURL := "http://" + server.Addr()

	for _, endpoint := range []string{"/debug/pprof/", "/debug/pprof/cmdline", "/debug/pprof/symbol"} {
		t.Run(endpoint, func(t *testing.T) {
			resp, err := http.Get(baseURL + endpoint)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}

	resp, err := http.Get(baseURL + "/debug/notifications")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Notifications(t *testing.T) {
	c := notify.New()
	t.Cleanup(c.Close)

	c.Add(notify.Input{
		Severity:   notify.SeverityWarning,
		Title:      "Reminder",
		Persistent: true,
		Actions:    []notify.Action{{Label: "Check in"}},
	})
	c.Error("Sync failed", "offline", 2*time.Second)

	server := startServer(t, c.Snapshot)

	resp, err := http.Get("http://" + server.Addr() + "/debug/notifications")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body struct {
		Active []notificationView `json:"active"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Active, 2)

	assert.Equal(t, "Reminder", body.Active[0].Title)
	assert.True(t, body.Active[0].Persistent)
	assert.Equal(t, []string{"Check in"}, body.Active[0].Actions)
	assert.InDelta(t, 1.0, body.Active[0].Remaining, 0)

	assert.Equal(t, "error", body.Active[1].Severity)
	assert.Equal(t, int64(2000), body.Active[1].DurationMS)
}

func TestServer_Handle(t *testing.T) {
	server := New(0, nil)
	server.Handle("/metrics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	require.NoError(t, server.Start(context.Background()))
	t.Cleanup(func() { _ = server.Shutdown(context.Background()) })

	resp, err := http.Get("http://" + server.Addr() + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}
