package http

import (
	"net/http"

	"github.com/MKhiriev/nutri-track/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	writeJSON(w, r, models.VersionResponse{Version: serverVersion}, http.StatusOK)
}
