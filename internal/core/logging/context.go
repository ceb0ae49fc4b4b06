package logging

import "context"

type contextKey string

const (
	operationKey contextKey = "operation"
	stepKey      contextKey = "step"
)

// WithOperation tags the context with the name of the running operation.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// WithStep tags the context with the scenario step being executed.
func WithStep(ctx context.Context, step string) context.Context {
	return context.WithValue(ctx, stepKey, step)
}

// GetOperation retrieves the operation name from the context.
// Returns empty string if not present.
func GetOperation(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey).(string); ok {
		return op
	}
	return ""
}

// GetStep retrieves the step label from the context.
// Returns empty string if not present.
func GetStep(ctx context.Context) string {
	if step, ok := ctx.Value(stepKey).(string); ok {
		return step
	}
	return ""
}
