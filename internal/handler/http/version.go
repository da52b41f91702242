package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/internal/utils"
	"github.com/MKhiriev/go-users-posts/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteText(w, serverVersion, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing response")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ping(r.Context()); err != nil {
		h.fail(w, r, NewStatusError(http.StatusServiceUnavailable, err))
		return
	}

	h.writeJSON(w, r, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
