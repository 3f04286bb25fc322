package core

import "context"

// Context keys for report options
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
	commandKey        contextKey = "command"
)

// WithSuppressHeader marks the context so that no header is logged.
// The MCP server uses it to keep stdio clean.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}

// WithCommand records the command name that is stored with the run history.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// commandFromContext returns the command name, or "report" when unset.
func commandFromContext(ctx context.Context) string {
	if command, ok := ctx.Value(commandKey).(string); ok && command != "" {
		return command
	}
	return "report"
}
