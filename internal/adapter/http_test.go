// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/nutri-track/internal/app"
	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/models"
)

const testCookieName = "nutri_session"

// newTestAdapter points an httpServerAdapter at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientConfig{
		ServerURL:         serverURL,
		RequestTimeout:    5 * time.Second,
		SessionCookieName: testCookieName,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_StoresSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Username)

		http.SetCookie(w, &http.Cookie{Name: testCookieName, Value: "signed-session", HttpOnly: true})
		writeJSON(t, w, http.StatusCreated, models.User{ID: 1, Username: "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Register(context.Background(), models.Credentials{Username: "alice", Password: "pw123456"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "signed-session", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Message: app.MsgUsernameTaken})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Username: "alice", Password: "pw123456"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Username already exists")
	assert.Empty(t, a.Token())
}

func TestLogin_MissingCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.User{ID: 1, Username: "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw123456"})

	assert.ErrorIs(t, err, ErrNoSessionToken)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout_ForgetsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/logout", r.URL.Path)
		assert.Equal(t, "Bearer signed-session", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Logged out"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed-session")

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Token())
}

// ── Authenticated calls ─────────────────────────────────────────────────────

func TestMe_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.User{ID: 5, Username: "bob"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")

	user, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
}

func TestMe_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "Not authenticated"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateMetrics(t *testing.T) {
	weight := 70.5
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/metrics", r.URL.Path)

		var m models.UserMetrics
		require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		require.NotNil(t, m.Weight)
		assert.Nil(t, m.Height)

		writeJSON(t, w, http.StatusOK, models.User{ID: 1, Weight: m.Weight})
	}))
	defer srv.Close()

	user, err := newTestAdapter(t, srv.URL).UpdateMetrics(context.Background(), models.UserMetrics{Weight: &weight})
	require.NoError(t, err)
	require.NotNil(t, user.Weight)
	assert.Equal(t, weight, *user.Weight)
}

func TestSummary_SendsRange(t *testing.T) {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Microsecond)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/summary", r.URL.Path)
		assert.Equal(t, "2024-03-10T00:00:00Z", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-03-10T23:59:59.999999Z", r.URL.Query().Get("endDate"))
		writeJSON(t, w, http.StatusOK, models.Summary{CaloriesIn: 1200, NetCalories: 1200})
	}))
	defer srv.Close()

	summary, err := newTestAdapter(t, srv.URL).Summary(context.Background(), models.DateRange{Start: start, End: end})
	require.NoError(t, err)
	assert.Equal(t, 1200, summary.CaloriesIn)
}

func TestExercises(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/exercises", r.URL.Path)

		switch r.Method {
		case http.MethodPost:
			writeJSON(t, w, http.StatusOK, models.Exercise{ID: 3, Type: "running"})
		case http.MethodGet:
			assert.NotEmpty(t, r.URL.Query().Get("start"))
			assert.NotEmpty(t, r.URL.Query().Get("end"))
			writeJSON(t, w, http.StatusOK, []models.Exercise{{ID: 3, Type: "running"}})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	kind := "running"

	created, err := a.AddExercise(context.Background(), models.ExerciseRequest{Type: &kind})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	list, err := a.ListExercises(context.Background(), models.DateRange{Start: time.Now(), End: time.Now()})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFoodEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/food-entries":
			writeJSON(t, w, http.StatusOK, models.FoodEntry{ID: 9, Name: "Apple", Calories: 95})
		case r.Method == http.MethodGet && r.URL.Path == "/api/food-entries":
			assert.Empty(t, r.URL.Query().Get("startDate"), "zero bounds are omitted")
			writeJSON(t, w, http.StatusOK, []models.FoodEntry{})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/food-entries/9":
			writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Food entry deleted successfully"})
		case r.Method == http.MethodDelete:
			writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Message: "Food entry not found"})
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()
	name := "Apple"

	entry, err := a.AddFoodEntry(ctx, models.FoodEntryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, int64(9), entry.ID)

	entries, err := a.ListFoodEntries(ctx, models.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, a.DeleteFoodEntry(ctx, 9))

	err = a.DeleteFoodEntry(ctx, 10)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Food entry not found")
}

func TestAssistant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/gemini":
			var req models.ChatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "hello", req.Prompt)
			writeJSON(t, w, http.StatusOK, models.ChatResponse{Response: "hi", IsDemo: true})
		case "/api/gemini/calories":
			writeJSON(t, w, http.StatusOK, models.CalorieEstimate{Calories: 105})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	answer, err := a.Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.True(t, answer.IsDemo)

	estimate, err := a.EstimateCalories(context.Background(), models.CalorieEstimateRequest{Food: "banana"})
	require.NoError(t, err)
	assert.Equal(t, 105, estimate.Calories)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "1.2.3"})
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestInternalServerError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "boom")
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientConfig{ServerURL: ""}, logger.Nop())
	require.Error(t, err)
}
