package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.middlewares()...)

	// set before any Route call so sub-routers inherit them
	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/health", h.health)

		// guards run in the listed order and stop at the first failure
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.getUsers)
			r.With(h.validateUser).Post("/", h.createUser)

			r.With(h.validateUserID).Get("/{id}", h.getUser)
			r.With(h.validateUserID, h.validateUser).Put("/{id}", h.updateUser)
			r.With(h.validateUserID).Delete("/{id}", h.deleteUser)

			r.With(h.validateUserID).Get("/{id}/posts", h.getUserPosts)
			r.With(h.validateUserID, h.validatePost).Post("/{id}/posts", h.createUserPost)
		})
	})

	return router
}

// middlewares returns the stack shared by every route, outermost first.
// withRecover sits inside withGZip so a recovered error is written through
// the same encoder as whatever the handler wrote before panicking.
func (h *Handler) middlewares() []func(http.Handler) http.Handler {
	mws := []func(http.Handler) http.Handler{
		h.withTraceID,
		h.withLogging,
		h.withGZip,
		h.withRecover,
		middleware.StripSlashes,
	}
	if h.requestTimeout > 0 {
		mws = append(mws, middleware.Timeout(h.requestTimeout))
	}

	return mws
}
