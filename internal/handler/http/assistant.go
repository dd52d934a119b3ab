package http

import (
	"net/http"

	"github.com/MKhiriev/nutri-track/models"
)

// chat never fails on upstream errors; the service answers with a labelled
// demo response instead.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var request models.ChatRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	response, err := h.services.AssistantService.Chat(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, r, response, http.StatusOK)
}

func (h *Handler) estimateCalories(w http.ResponseWriter, r *http.Request) {
	var request models.CalorieEstimateRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	estimate, err := h.services.AssistantService.EstimateCalories(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, r, estimate, http.StatusOK)
}
