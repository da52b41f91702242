package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// withRecover turns a panic in a later handler into a 500 written by the
// terminal error handler. http.ErrAbortHandler is re-raised so net/http can
// abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			h.handleError(w, r, fmt.Errorf("%w: %v", ErrPanic, rvr), string(debug.Stack()))
		}()

		next.ServeHTTP(w, r)
	})
}
