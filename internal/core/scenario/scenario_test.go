package scenario

import (
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
)

func TestLoad_Short(t *testing.T) {
	s, err := Load("testdata/short.yaml")
	require.NoError(t, err)

	assert.Equal(t, "short", s.Name)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, "add", s.Steps[0].Kind())
	assert.Equal(t, "first", s.Steps[0].Ref)
	require.NotNil(t, s.Steps[0].Add.Duration)
	assert.Equal(t, time.Duration(0), *s.Steps[0].Add.Duration)
	assert.Equal(t, time.Hour, *s.Steps[1].Add.Duration)
	assert.Equal(t, "remove", s.Steps[2].Kind())
	assert.Equal(t, 20*time.Millisecond, s.Duration())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read script")
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{
		"steps[0].add.severity",
		"steps[0].add.title",
		"steps[1].at",
		"steps[2]",
	}, fields)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "steps: [",
			wantErr: "parse script",
		},
		{
			name:    "missing name",
			yaml:    "steps:\n  - clear: true\n",
			wantErr: "name",
		},
		{
			name:    "no steps",
			yaml:    "name: empty\n",
			wantErr: "script has no steps",
		},
		{
			name:    "two actions",
			yaml:    "name: x\nsteps:\n  - clear: true\n    remove: a\n",
			wantErr: "more than one action",
		},
		{
			name:    "duplicate ref",
			yaml:    "name: x\nsteps:\n  - ref: a\n    add: {title: one}\n  - ref: a\n    add: {title: two}\n",
			wantErr: "duplicate ref",
		},
		{
			name:    "ref on clear",
			yaml:    "name: x\nsteps:\n  - ref: a\n    clear: true\n",
			wantErr: "ref is only valid on add steps",
		},
		{
			name:    "bad action style",
			yaml:    "name: x\nsteps:\n  - add:\n      title: t\n      actions:\n        - {label: go, style: loud}\n",
			wantErr: "unknown style",
		},
		{
			name:    "negative async delay",
			yaml:    "name: x\nsteps:\n  - async: {delay: -1s}\n",
			wantErr: "steps[0].async.delay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDemo(t *testing.T) {
	s := Demo()
	assert.Equal(t, "demo", s.Name)
	assert.NotEmpty(t, s.Steps)
	assert.Greater(t, s.Duration(), time.Second)
}

func TestAddStep_Input(t *testing.T) {
	t.Run("omitted duration uses default", func(t *testing.T) {
		in := AddStep{Title: "t"}.Input(nil)
		assert.Equal(t, notify.SeverityInfo, in.Severity)
		assert.Equal(t, time.Duration(0), in.Duration)
	})

	t.Run("explicit zero disables expiry", func(t *testing.T) {
		zero := time.Duration(0)
		in := AddStep{Title: "t", Duration: &zero}.Input(nil)
		assert.Equal(t, notify.NoExpiry, in.Duration)
	})

	t.Run("actions post through callback", func(t *testing.T) {
		var posted []string
		in := AddStep{
			Severity: notify.SeverityWarning,
			Title:    "Reminder",
			Actions: []ActionStep{
				{Label: "Check in", Style: notify.ActionPrimary},
				{Label: "Later"},
			},
		}.Input(func(title, _ string) { posted = append(posted, title) })

		require.Len(t, in.Actions, 2)
		assert.Equal(t, notify.ActionPrimary, in.Actions[0].Style)

		in.Actions[1].Trigger()
		in.Actions[0].Trigger()
		assert.Equal(t, []string{"Later", "Check in"}, posted)
	})
}
