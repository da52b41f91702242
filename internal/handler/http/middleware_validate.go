package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/internal/store"
	"github.com/MKhiriev/go-users-posts/internal/utils"
	"github.com/MKhiriev/go-users-posts/models"
)

// maxBodyBytes caps request bodies read by the body guards.
const maxBodyBytes = 1 << 20

// validateUserID resolves the {id} path parameter to an existing user and
// stores it on the request context. Ids that cannot name a user are reported
// the same way as ids of missing users.
func (h *Handler) validateUserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		rawID := chi.URLParam(r, "id")
		// unsigned parse rejects signs; 63 bits keeps the id inside int64
		id, err := strconv.ParseUint(rawID, 10, 63)
		if err != nil || id == 0 {
			log.Debug().Str("func", "*Handler.validateUserID").Str("id", rawID).Msg("malformed user id")
			h.fail(w, r, ErrUserNotFound)
			return
		}

		user, err := h.services.UserService.GetUserByID(r.Context(), int64(id))
		if errors.Is(err, store.ErrUserNotFound) {
			h.fail(w, r, ErrUserNotFound)
			return
		}
		if err != nil {
			h.fail(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}

// validateUser requires a JSON body with a non-empty "name" and stores the
// name on the request context.
func (h *Handler) validateUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body models.UserRequest
		if err := decodeBody(w, r, &body); err != nil {
			h.fail(w, r, err)
			return
		}

		if err := h.validator.Validate(r.Context(), body); err != nil {
			h.fail(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithName(r.Context(), body.Name)))
	})
}

// validatePost requires a JSON body with a non-empty "text" and stores the
// text on the request context.
func (h *Handler) validatePost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body models.PostRequest
		if err := decodeBody(w, r, &body); err != nil {
			h.fail(w, r, err)
			return
		}

		if err := h.validator.Validate(r.Context(), body); err != nil {
			h.fail(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithText(r.Context(), body.Text)))
	})
}

// decodeBody decodes a JSON request body into dst. An empty body leaves dst
// untouched so that the field checks report what is missing.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return NewStatusError(http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
	}

	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
