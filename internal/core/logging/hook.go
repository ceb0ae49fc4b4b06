package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts operation and step from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if op := GetOperation(ctx); op != "" {
		e.Str("operation", op)
	}

	if step := GetStep(ctx); step != "" {
		e.Str("step", step)
	}
}
