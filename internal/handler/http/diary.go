package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/nutri-track/internal/app"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/utils"
	"github.com/MKhiriev/nutri-track/models"
)

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var request models.ExerciseRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	exercise, err := h.services.ExerciseService.AddExercise(r.Context(), userID, request)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, r, exercise, http.StatusOK)
}

func (h *Handler) getExercises(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	dateRange, ok := queryDateRange(w, r, "start", "end")
	if !ok {
		return
	}

	exercises, err := h.services.ExerciseService.GetExercises(r.Context(), userID, dateRange)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}

	writeJSON(w, r, exercises, http.StatusOK)
}

func (h *Handler) addFoodEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var request models.FoodEntryRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	entry, err := h.services.FoodEntryService.AddFoodEntry(r.Context(), userID, request)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, r, entry, http.StatusOK)
}

func (h *Handler) getFoodEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	dateRange, ok := queryDateRange(w, r, "startDate", "endDate")
	if !ok {
		return
	}

	entries, err := h.services.FoodEntryService.GetFoodEntries(r.Context(), userID, dateRange)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	if entries == nil {
		entries = []models.FoodEntry{}
	}

	writeJSON(w, r, entries, http.StatusOK)
}

// deleteFoodEntry removes an entry of the current user. Another user's entry
// is reported exactly like a missing one.
func (h *Handler) deleteFoodEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	entryID, err := parseEntryID(chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("bad food entry id")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidID, "id")
		return
	}

	if err = h.services.FoodEntryService.DeleteFoodEntry(r.Context(), userID, entryID); err != nil {
		writeServiceError(w, r, err, app.MsgFoodEntryNotFound)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgFoodEntryDeleted}, http.StatusOK)
}

func parseEntryID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidFoodEntryID
	}
	return id, nil
}
