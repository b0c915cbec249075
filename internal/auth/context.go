package auth

import "context"

type contextKey struct{}

// WithUserID attaches the session identity to the context. The ledger
// never authenticates anyone itself; the presentation layer supplies a
// present-or-absent user id and checkout consults it as a precondition.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserID returns the session identity, or "" when no session is active.
func UserID(ctx context.Context) string {
	if val, ok := ctx.Value(contextKey{}).(string); ok {
		return val
	}
	return ""
}
