package ctxutil

import (
	"context"

	"github.com/sensorfactory/nexus/internal/domain"
)

type ctxKey string

const (
	sessionKey   ctxKey = "session"
	requestIDKey ctxKey = "request_id"
)

// WithSession stores the authenticated session in the context.
func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromCtx extracts the session from the context.
// Returns false if the value is missing, has an empty user ID, or has the wrong type.
func SessionFromCtx(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(domain.Session)
	if !ok || s.ID == "" {
		return domain.Session{}, false
	}
	return s, true
}

// UserIDFromCtx returns the ID of the authenticated user, if any.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	s, ok := SessionFromCtx(ctx)
	return s.ID, ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
