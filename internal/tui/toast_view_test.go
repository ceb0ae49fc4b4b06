package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
	"github.com/Soumodip04/MindScope-sub001/internal/core/styles"
)

func TestToastView_View_empty(t *testing.T) {
	v := NewToastView(NewToastController(5), 40)
	assert.Empty(t, v.View())
}

func TestToastView_View_renders_each_severity(t *testing.T) {
	tests := []struct {
		severity notify.Severity
		icon     string
	}{
		{notify.SeveritySuccess, styles.IconSuccess},
		{notify.SeverityError, styles.IconError},
		{notify.SeverityWarning, styles.IconWarning},
		{notify.SeverityInfo, styles.IconInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			c := NewToastController(5)
			v := NewToastView(c, 40)

			c.Sync([]notify.Notification{{
				ID:       "n1",
				Severity: tt.severity,
				Title:    "title",
				Message:  "test msg",
				Duration: time.Second,
			}})

			out := v.View()
			require.NotEmpty(t, out)
			assert.Contains(t, out, tt.icon+" title")
			assert.Contains(t, out, "test msg")
			assert.NotContains(t, out, "pinned")
		})
	}
}

func TestToastView_View_pinned_and_actions(t *testing.T) {
	c := NewToastController(5)
	v := NewToastView(c, 40)

	c.Sync([]notify.Notification{{
		ID:         "n1",
		Severity:   notify.SeverityWarning,
		Title:      "Reminder",
		Persistent: true,
		Actions: []notify.Action{
			{Label: "Check in", Style: notify.ActionPrimary},
			{Label: "Later", Style: notify.ActionSecondary},
		},
	}})

	out := v.View()
	assert.Contains(t, out, "pinned")
	assert.Contains(t, out, "Check in")
	assert.Contains(t, out, "Later")
}

func TestToastView_View_stacks_newest_last(t *testing.T) {
	c := NewToastController(5)
	v := NewToastView(c, 40)

	c.Sync([]notify.Notification{
		{ID: "n1", Severity: notify.SeverityInfo, Title: "first", Duration: time.Second},
		{ID: "n2", Severity: notify.SeverityError, Title: "second", Duration: time.Second},
	})

	out := v.View()
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestToastView_View_reports_hidden(t *testing.T) {
	c := NewToastController(2)
	v := NewToastView(c, 40)

	c.Sync(notes(4))

	out := v.View()
	assert.Contains(t, out, "+2 more")
	assert.NotContains(t, out, "toast 1")
	assert.Contains(t, out, "toast 4")
}

func TestToastView_Width_defaults(t *testing.T) {
	v := NewToastView(NewToastController(0), 0)
	assert.Equal(t, defaultToastWidth+2, v.Width())
}

func TestRenderStack(t *testing.T) {
	out := RenderStack([]notify.Notification{
		{ID: "a", Severity: notify.SeveritySuccess, Title: "Entry saved", Persistent: true},
	}, 3, 30)
	assert.Contains(t, out, "Entry saved")
	assert.Contains(t, out, "pinned")

	assert.Empty(t, RenderStack(nil, 3, 30))
}
