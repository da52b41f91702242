package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-posts/internal/utils"
	"github.com/MKhiriev/go-users-posts/models"
)

func (h *Handler) getUserPosts(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.fail(w, r, errMissingContextValue)
		return
	}

	posts, err := h.services.UserService.GetUserPosts(r.Context(), user.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, posts, http.StatusOK)
}

// createUserPost stores a post owned by the user from the path. Any
// "user_id" in the body is ignored.
func (h *Handler) createUserPost(w http.ResponseWriter, r *http.Request) {
	user, userOK := utils.GetUserFromContext(r.Context())
	text, textOK := utils.GetTextFromContext(r.Context())
	if !userOK || !textOK {
		h.fail(w, r, errMissingContextValue)
		return
	}

	created, err := h.services.UserService.CreatePost(r.Context(), models.Post{Text: text, UserID: user.ID})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, created, http.StatusCreated)
}
