// Package tmpl provides template rendering for user supplied output formats.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

var funcs = template.FuncMap{
	"join":  strings.Join,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"pad":   pad,
	"ms":    millis,
	"clock": clock,
}

// pad right-pads s with spaces to width n.
func pad(n int, s string) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func millis(d time.Duration) int64 {
	return d.Milliseconds()
}

func clock(t time.Time) string {
	return t.Format("15:04:05.000")
}

// Template is a parsed output format.
type Template struct {
	t *template.Template
}

// Parse compiles a template string. Templates reject references to
// undefined keys.
//
// Available template functions:
//   - join: Join string slice with separator (e.g., join .Labels ", ")
//   - upper, lower: Change case
//   - pad: Right-pad to a width (e.g., pad 9 .Kind)
//   - ms: Duration in whole milliseconds
//   - clock: Format a time as 15:04:05.000
func Parse(tmpl string) (*Template, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Template{t: t}, nil
}

// Execute renders the template with data.
func (t *Template) Execute(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

// Render parses and executes tmpl with data in one step.
func Render(tmpl string, data any) (string, error) {
	t, err := Parse(tmpl)
	if err != nil {
		return "", err
	}
	return t.Execute(data)
}
