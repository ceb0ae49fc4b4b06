package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runConfigValidate(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	flags := &Flags{ConfigPath: path}
	app := testApp(&buf, NewConfigValidateCmd(flags).Register)

	err := app.Run(context.Background(), append([]string{"mindscope", "config", "validate"}, args...))
	return buf.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const invalidConfig = `
tui:
  max_visible: -1
  theme: neon
`

func TestConfigValidate_Valid(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: tokyo-night\n")

	out, err := runConfigValidate(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigValidate_MissingFileIsValid(t *testing.T) {
	out, err := runConfigValidate(t, filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigValidate_InvalidText(t *testing.T) {
	path := writeConfig(t, invalidConfig)

	out, err := runConfigValidate(t, path)
	require.Error(t, err)

	assert.Contains(t, out, "tui.max_visible: must be at least 1")
	assert.Contains(t, out, `tui.theme: unknown theme "neon"`)
	assert.Contains(t, out, "2 error(s) found in "+path)
}

func TestConfigValidate_InvalidJSON(t *testing.T) {
	path := writeConfig(t, invalidConfig)

	out, err := runConfigValidate(t, path, "--format", "json")
	require.Error(t, err)

	var report validationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, path, report.Path)
	assert.False(t, report.Valid)
	assert.Len(t, report.Errors, 2)
}

func TestConfigValidate_ParseError(t *testing.T) {
	path := writeConfig(t, "tui: [unclosed\n")

	out, err := runConfigValidate(t, path)
	require.Error(t, err)
	assert.Contains(t, out, "1 error(s) found")
}
