// This file holds the helpers that move the verified identity through context.Context.
// The middleware stores the user id once the token is verified; handlers read it back
// instead of trusting ids supplied in paths or bodies.
package auth

import (
	"context"
)

// contextKey is unexported so no other package can collide with our keys.
type contextKey string

const userIDContextKey contextKey = "auth_user_id"

// NewContextWithUserID returns a child context carrying the verified user id.
func NewContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext returns the verified user id set by JWTMiddleware.
// The bool is false when the request did not pass through the middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok && userID != ""
}
