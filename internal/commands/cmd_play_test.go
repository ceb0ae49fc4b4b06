package commands

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPlay(t *testing.T, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	app := testApp(&buf, NewPlayCmd(testFlags()).Register)

	err := app.Run(context.Background(), append([]string{"mindscope", "play"}, args...))
	require.NoError(t, err)
	return buf.String()
}

func decodeLines(t *testing.T, out string) []map[string]any {
	t.Helper()

	var lines []map[string]any
	sc := bufio.NewScanner(bytes.NewBufferString(out))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m), sc.Text())
		lines = append(lines, m)
	}
	require.NoError(t, sc.Err())
	return lines
}

func kindsOf(lines []map[string]any) []string {
	kinds := make([]string, 0, len(lines))
	for _, l := range lines {
		kinds = append(kinds, l["kind"].(string))
	}
	return kinds
}

func TestPlay_Text(t *testing.T) {
	out := runPlay(t, "--linger", "0s", "testdata/short.yaml")

	assert.Contains(t, out, "added")
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "Broken: it broke")
	assert.Contains(t, out, "dismissed")
	assert.Contains(t, out, "1 active notification(s)")
}

func TestPlay_Template(t *testing.T) {
	out := runPlay(t, "--linger", "0s", "--template", "{{ .Kind }}|{{ .Title }}", "short")

	assert.Equal(t, "added|Hello\nadded|Broken\ndismissed|Hello\n\n1 active notification(s)\nactive|Broken\n", out)
}

func TestPlay_JSON(t *testing.T) {
	lines := decodeLines(t, runPlay(t, "--linger", "0s", "--format", "json", "testdata/short.yaml"))

	require.Equal(t, []string{"added", "added", "dismissed", "snapshot"}, kindsOf(lines))
	assert.Equal(t, "Hello", lines[0]["title"])
	assert.Equal(t, "error", lines[1]["severity"])
	assert.Equal(t, lines[0]["id"], lines[2]["id"])

	active := lines[3]["active"].([]any)
	require.Len(t, active, 1)
	assert.Equal(t, "Broken", active[0].(map[string]any)["title"])
}

func TestPlay_WaitsForExpiry(t *testing.T) {
	lines := decodeLines(t, runPlay(t, "--linger", "5s", "--format", "json", "testdata/expire.yaml"))

	require.Equal(t, []string{"added", "expired", "snapshot"}, kindsOf(lines))
	assert.Equal(t, float64(50), lines[0]["duration_ms"])
	assert.Empty(t, lines[2]["active"])
}

func TestPlay_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown format", args: []string{"--format", "xml", "short"}, want: `unknown format "xml"`},
		{name: "bad template", args: []string{"--template", "{{ .Nope", "short"}, want: "invalid --template"},
		{name: "missing script", args: []string{"nowhere"}, want: `script "nowhere" not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := testApp(&buf, NewPlayCmd(testFlags()).Register)

			err := app.Run(context.Background(), append([]string{"mindscope", "play"}, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
