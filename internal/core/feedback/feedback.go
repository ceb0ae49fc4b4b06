// Package feedback wraps operations and validation results with user-facing
// notifications. It depends only on the Notifier shorthands, never on the
// registry or scheduler behind them.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/Soumodip04/MindScope-sub001/internal/core/logging"
)

// Notifier is the subset of notify.Center used by the helpers.
type Notifier interface {
	Success(title, message string, duration ...time.Duration) string
	Error(title, message string, duration ...time.Duration) string
	Warning(title, message string, duration ...time.Duration) string
	Info(title, message string, duration ...time.Duration) string
}

// AsyncText holds the titles shown around an operation.
type AsyncText struct {
	Loading string
	Success string
	Error   string
}

const (
	defaultLoading = "Working…"
	defaultSuccess = "Done"
	defaultError   = "Something went wrong"

	// ValidationTitle is the title of the warning emitted by Gate.
	ValidationTitle = "Please fix the following"
)

func (t AsyncText) withDefaults() AsyncText {
	if t.Loading == "" {
		t.Loading = defaultLoading
	}
	if t.Success == "" {
		t.Success = defaultSuccess
	}
	if t.Error == "" {
		t.Error = defaultError
	}
	return t
}

// WithAsync posts an info notification, runs op, then posts a success or an
// error notification. The result and error of op are returned unchanged. A
// panic inside op is reported and then re-raised with its original value.
func WithAsync[T any](ctx context.Context, n Notifier, text AsyncText, op func(context.Context) (T, error)) (result T, err error) {
	text = text.withDefaults()
	n.Info(text.Loading, "")

	defer func() {
		if r := recover(); r != nil {
			n.Error(text.Error, fmt.Sprint(r))
			panic(r)
		}
	}()

	result, err = op(ctx)
	if err != nil {
		logger := logging.Component("feedback")
		logger.Debug().Ctx(ctx).Err(err).Str("title", text.Error).Msg("operation failed")
		n.Error(text.Error, err.Error())
		return result, err
	}

	n.Success(text.Success, "")
	return result, nil
}

// Gate reports whether errs is empty. Otherwise it posts one warning that
// lists every error and returns false.
func Gate(n Notifier, errs []string) bool {
	if len(errs) == 0 {
		return true
	}
	n.Warning(ValidationTitle, strings.Join(errs, "; "))
	return false
}

// GateErr is Gate for an error value. criterio.FieldErrors are flattened to
// "field: message" entries; any other non-nil error becomes a single entry.
func GateErr(n Notifier, err error) bool {
	if err == nil {
		return true
	}
	return Gate(n, Messages(err))
}

// Messages flattens a validation error into human-readable strings.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, fmt.Sprintf("%s: %s", fe.Field, fe.Err))
	}
	return out
}
