package http

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/internal/utils"
	"github.com/MKhiriev/go-users-posts/models"
)

// maxStackDepth bounds the number of frames recorded for an error body.
const maxStackDepth = 32

// fail is the only way guards and handlers report an error. The call stack
// is captured here, at the report site.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	// skip runtime.Callers, captureStack and fail
	h.handleError(w, r, err, captureStack(3))
}

// handleError is the terminal error handler. It logs the failure once and
// writes the uniform error body.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, stack string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("func", "*Handler.handleError").
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Int("status", status).
		Msg("request failed")

	body := models.ErrorResponse{
		CustomMessage: usersRouterMessage,
		Message:       err.Error(),
	}
	if !h.hideStack {
		body.Stack = stack
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.handleError").Msg("error writing error response")
	}
}

func captureStack(skip int) string {
	var buf strings.Builder
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		fmt.Fprintf(&buf, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return buf.String()
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, fmt.Errorf("%w: %s %s", ErrRouteNotFound, r.Method, r.URL.Path))
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, fmt.Errorf("%w: %s %s", ErrMethodNotAllowed, r.Method, r.URL.Path))
}
