package context

import (
	"context"
	"strings"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// WithRequestID stores a non-blank request id on ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
