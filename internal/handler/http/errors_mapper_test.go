package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/nutri-track/internal/app"
	"github.com/MKhiriev/nutri-track/internal/service"
	"github.com/MKhiriev/nutri-track/internal/store"
	"github.com/MKhiriev/nutri-track/internal/validators"
	"github.com/MKhiriev/nutri-track/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantField   string
	}{
		{
			name:        "field validation",
			err:         fmt.Errorf("%w: %w", service.ErrValidation, &validators.ValidationError{Field: "age", Err: validators.ErrInvalidAge}),
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ErrInvalidAge.Error(),
			wantField:   "age",
		},
		{
			name:        "validation without field",
			err:         service.ErrValidation,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidRequest,
		},
		{
			name:        "invalid credentials",
			err:         service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "unauthorized",
			err:         service.ErrUnauthorized,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgAuthRequired,
		},
		{
			name:        "username conflict",
			err:         service.ErrUsernameAlreadyExists,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Username already exists",
		},
		{
			name:        "not found",
			err:         fmt.Errorf("lookup: %w", service.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgNotFound,
		},
		{
			name:        "store failure is not leaked",
			err:         fmt.Errorf("insert: %w: pq: relation does not exist", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
		{
			name:        "unknown",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message, field := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestWriteServiceError_NotFoundOverride(t *testing.T) {
	rec := httptest.NewRecorder()

	writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrNotFound, "Food entry not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, models.ErrorResponse{Message: "Food entry not found"}, decodeBody[models.ErrorResponse](t, rec))
}

func TestWriteServiceError_OverrideOnlyAppliesTo404(t *testing.T) {
	rec := httptest.NewRecorder()

	writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrUnauthorized, "Food entry not found")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgAuthRequired, decodeBody[models.ErrorResponse](t, rec).Message)
}
