package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/nutri-track/internal/app"
	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/service"
	"github.com/MKhiriev/nutri-track/internal/utils"
)

// Handler serves the REST API on top of [service.Services].
type Handler struct {
	services *service.Services

	// appConfig carries the session cookie settings.
	appConfig config.App
	server    config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		appConfig: cfg.App,
		server:    cfg.Server,
		logger:    logger,
	}
}

// decodeJSON reads the request body into dst. On failure it answers 400
// and reports false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, "")
		return false
	}
	return true
}

// writeJSON logs write failures; the status line is already sent by then.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("response write failed")
	}
}
