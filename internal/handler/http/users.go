package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/internal/utils"
	"github.com/MKhiriev/go-users-posts/models"
)

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.GetUsers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, users, http.StatusOK)
}

// getUser answers with the user loaded by validateUserID.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.fail(w, r, errMissingContextValue)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	name, ok := utils.GetNameFromContext(r.Context())
	if !ok {
		h.fail(w, r, errMissingContextValue)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), models.User{Name: name})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	user, userOK := utils.GetUserFromContext(r.Context())
	name, nameOK := utils.GetNameFromContext(r.Context())
	if !userOK || !nameOK {
		h.fail(w, r, errMissingContextValue)
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), models.User{ID: user.ID, Name: name})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.fail(w, r, errMissingContextValue)
		return
	}

	deleted, err := h.services.UserService.DeleteUser(r.Context(), user.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, deleted, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}
