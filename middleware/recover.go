package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/user/nutritrack-go/apperror"
	"github.com/user/nutritrack-go/auth"
	"github.com/user/nutritrack-go/logging"
)

// Recoverer turns a panic in a handler into a logged 500 with the standard
// `{"message": ...}` body.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			logging.FromContext(r.Context()).
				WithField("panic", rvr).
				WithField("stack", string(debug.Stack())).
				Error("recovered from panic")
			auth.WriteError(w, r, apperror.NewInternalError("Internal server error", nil))
		}()
		next.ServeHTTP(w, r)
	})
}
