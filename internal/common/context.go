package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyClientKey contextKey = "client_key"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithClientKey adds the rate-limit client key to the context
func WithClientKey(ctx context.Context, clientKey string) context.Context {
	return context.WithValue(ctx, ContextKeyClientKey, clientKey)
}

// ClientKeyFromContext extracts the rate-limit client key from context
func ClientKeyFromContext(ctx context.Context) string {
	if clientKey, ok := ctx.Value(ContextKeyClientKey).(string); ok {
		return clientKey
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
