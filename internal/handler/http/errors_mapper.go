package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/nutri-track/internal/app"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/service"
	"github.com/MKhiriev/nutri-track/internal/utils"
	"github.com/MKhiriev/nutri-track/internal/validators"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is matched in order; the first target found in the chain
// decides the response.
var errorStatuses = []errorStatus{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrUnauthorized, http.StatusUnauthorized, app.MsgAuthRequired},
	{service.ErrUsernameAlreadyExists, http.StatusBadRequest, app.MsgUsernameTaken},
	{service.ErrNotFound, http.StatusNotFound, app.MsgNotFound},
	{service.ErrValidation, http.StatusBadRequest, app.MsgInvalidRequest},
	{validators.ErrValidation, http.StatusBadRequest, app.MsgInvalidRequest},
}

// statusFromError maps a service error to the HTTP status, the client-safe
// message and, for validation failures, the offending field.
func statusFromError(err error) (status int, message, field string) {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, vErr.Error(), vErr.Field
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message, ""
		}
	}

	return http.StatusInternalServerError, app.MsgInternalServerError, ""
}

// writeServiceError answers with the mapped status. notFound, when set,
// replaces the generic 404 message. 5xx causes are logged, never sent.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	status, message, field := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusNotFound && notFound != "" {
		message = notFound
	}

	utils.WriteError(w, status, message, field)
}
