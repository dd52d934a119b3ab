package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/nutri-track/internal/service"
	"github.com/MKhiriev/nutri-track/internal/validators"
	"github.com/MKhiriev/nutri-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChat(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthenticated()
	m.assistant.EXPECT().Chat(gomock.Any(), models.ChatRequest{Prompt: "hi"}).
		Return(models.ChatResponse{Response: "demo", IsDemo: true, Error: "not configured"}, nil)

	rec := serve(h, authedRequest(t, http.MethodPost, "/api/gemini", `{"prompt":"hi"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":"demo","isDemo":true,"error":"not configured"}`, rec.Body.String())
}

func TestChat_EmptyPrompt(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthenticated()
	m.assistant.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(models.ChatResponse{},
		errors.Join(service.ErrValidation, &validators.ValidationError{Field: validators.FieldPrompt, Err: validators.ErrPromptRequired}))

	rec := serve(h, authedRequest(t, http.MethodPost, "/api/gemini", `{"prompt":""}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "prompt", decodeBody[models.ErrorResponse](t, rec).Field)
}

func TestEstimateCalories(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthenticated()
	m.assistant.EXPECT().EstimateCalories(gomock.Any(), models.CalorieEstimateRequest{Food: "banana", Portion: "1 medium"}).
		Return(models.CalorieEstimate{Calories: 105}, nil)

	rec := serve(h, authedRequest(t, http.MethodPost, "/api/gemini/calories", `{"food":"banana","portion":"1 medium"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"calories":105,"isDemo":false}`, rec.Body.String())
}
