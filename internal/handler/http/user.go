package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/nutri-track/internal/app"
	"github.com/MKhiriev/nutri-track/internal/validators"
	"github.com/MKhiriev/nutri-track/models"
)

func (h *Handler) updateMetrics(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var metrics models.UserMetrics
	if !decodeJSON(w, r, &metrics) {
		return
	}

	user, err := h.services.UserService.UpdateMetrics(r.Context(), userID, metrics)
	if err != nil {
		writeServiceError(w, r, err, app.MsgUserNotFound)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	dateRange, ok := queryDateRange(w, r, "startDate", "endDate")
	if !ok {
		return
	}

	summary, err := h.services.UserService.Summary(r.Context(), userID, dateRange)
	if err != nil {
		writeServiceError(w, r, err, app.MsgUserNotFound)
		return
	}

	writeJSON(w, r, summary, http.StatusOK)
}

// queryDateRange parses the named range parameters. Missing bounds default
// to the current UTC day.
func queryDateRange(w http.ResponseWriter, r *http.Request, startName, endName string) (models.DateRange, bool) {
	query := r.URL.Query()

	dateRange, err := validators.ParseDateRange(
		validators.QueryParam{Name: startName, Value: query.Get(startName)},
		validators.QueryParam{Name: endName, Value: query.Get(endName)},
		time.Now(),
	)
	if err != nil {
		writeServiceError(w, r, err, "")
		return models.DateRange{}, false
	}

	return dateRange, true
}
