package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Soumodip04/MindScope-sub001/internal/core/styles"
)

// printer writes severity-prefixed status lines for non-interactive output.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) line(severity, format string, args ...any) {
	icon := lipgloss.NewStyle().
		Foreground(styles.SeverityColor(severity)).
		Render(styles.SeverityIcon(severity))
	_, _ = fmt.Fprintf(p.w, "%s %s\n", icon, fmt.Sprintf(format, args...))
}

func (p *printer) Successf(format string, args ...any) { p.line("success", format, args...) }
func (p *printer) Errorf(format string, args ...any)   { p.line("error", format, args...) }
func (p *printer) Warnf(format string, args ...any)    { p.line("warning", format, args...) }
func (p *printer) Infof(format string, args ...any)    { p.line("info", format, args...) }

// Printf writes an unprefixed line.
func (p *printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}
