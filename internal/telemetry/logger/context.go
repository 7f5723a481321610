// Package logger provides structured logging for tagoverride.
package logger

import "context"

type contextKey string

const (
	loggerKey     contextKey = "tagoverride.logger"
	issuanceIDKey contextKey = "tagoverride.issuance_id"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithIssuanceID adds an issuance ID to the context.
func WithIssuanceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, issuanceIDKey, id)
}

// IssuanceIDFromContext extracts the issuance ID from context.
func IssuanceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(issuanceIDKey).(string); ok {
		return id
	}
	return ""
}

// L is a shorthand for FromContext that also enriches the logger with the
// issuance ID from the context.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)
	if id := IssuanceIDFromContext(ctx); id != "" {
		l = l.With("issuance_id", id)
	}
	return l
}
