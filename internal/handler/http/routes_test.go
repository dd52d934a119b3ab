package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// protectedRoutes must answer 401 without a session, which also proves they
// are registered.
var protectedRoutes = []routeCase{
	{http.MethodGet, "/api/user"},
	{http.MethodPost, "/api/user/metrics"},
	{http.MethodGet, "/api/user/summary"},
	{http.MethodPost, "/api/exercises"},
	{http.MethodGet, "/api/exercises"},
	{http.MethodPost, "/api/food-entries"},
	{http.MethodGet, "/api/food-entries"},
	{http.MethodDelete, "/api/food-entries/1"},
	{http.MethodPost, "/api/gemini"},
	{http.MethodPost, "/api/gemini/calories"},
}

func TestInit_ProtectedRoutesRequireSession(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_PublicRoutesDoNotRequireSession(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	// register and login reach the handler and fail on the empty body
	for _, path := range []string{"/api/register", "/api/login"} {
		rec := serve(h, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	// only GET is registered for /api/version
	rec := serve(h, httptest.NewRequest(http.MethodPut, "/api/version", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/user", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflightAllowsCredentials(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/food-entries", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestInit_CORSRejectsUnknownOrigin(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/food-entries", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := serve(h, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
