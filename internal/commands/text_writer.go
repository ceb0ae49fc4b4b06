package commands

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Soumodip04/MindScope-sub001/pkg/tmpl"
)

// textWriter renders values through a template, one line each. Safe for
// concurrent use.
type textWriter struct {
	mu  sync.Mutex
	w   io.Writer
	tpl *tmpl.Template
}

func newTextWriter(w io.Writer, tpl *tmpl.Template) *textWriter {
	return &textWriter{w: w, tpl: tpl}
}

func (t *textWriter) Write(data any) {
	line, err := t.tpl.Execute(data)
	if err != nil {
		log.Warn().Err(err).Msg("render output line")
		return
	}
	t.Printf("%s", line)
}

func (t *textWriter) Printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(t.w, format+"\n", args...)
}
