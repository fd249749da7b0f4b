// This file defines the bearer-token middleware that guards every business route.
// It is the Go counterpart of a Nest.js Guard implementing `CanActivate`.
package auth

import (
	"net/http"
	"strings"

	"github.com/user/nutritrack-go/apperror"
	"github.com/user/nutritrack-go/logging"
)

// Client-facing messages of the two rejection outcomes.
const (
	msgAuthorizationMissing = "Authorization header missing"
	msgTokenInvalid         = "Token is invalid"
)

// JWTMiddleware verifies the `Authorization: <scheme> <token>` header.
//
// Per request it moves from unauthenticated to authenticated or ends the request:
//   - no header: 401 "Authorization header missing", the verifier is never called;
//   - no token after the scheme, or a token that fails verification: 401 "Token is invalid";
//   - otherwise the verified user id is put in the request context and the chain continues.
//
// The scheme word itself is not checked.
func JWTMiddleware(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError(msgAuthorizationMissing, nil))
				return
			}

			fields := strings.Fields(authHeader)
			if len(fields) < 2 {
				WriteError(w, r, apperror.NewAuthError(msgTokenInvalid, nil))
				return
			}

			claims, err := verifier.Verify(fields[1])
			if err != nil {
				logging.FromContext(r.Context()).WithError(err).Debug("rejected bearer token")
				WriteError(w, r, apperror.NewAuthError(msgTokenInvalid, err))
				return
			}

			ctx := NewContextWithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
