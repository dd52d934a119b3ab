package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, s string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

// ── gzip ─────────────────────────────────────────────────────────────────────

func TestWithGZip_CompressesResponse(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestWithGZip_PlainWithoutAcceptEncoding(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "plain")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestWithGZip_NoContentStaysEmpty(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	var got string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/", gzipped(t, `{"name":"Apple"}`))
	req.Header.Set("Content-Encoding", "gzip")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"name":"Apple"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	called := false
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

// ── trace id ─────────────────────────────────────────────────────────────────

func TestRequestTraceID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "client id kept", header: "abc-123", keep: true},
		{name: "missing", header: ""},
		{name: "too long", header: strings.Repeat("a", maxTraceIDLength+1)},
		{name: "whitespace", header: "abc 123"},
		{name: "control character", header: "abc\x01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}

			got := requestTraceID(req)

			if tt.keep {
				assert.Equal(t, tt.header, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "expected a generated uuid, got %q", got)
		})
	}
}

// ── logging ──────────────────────────────────────────────────────────────────

func TestWithLogging_AccessLine(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		write     bool
		wantLevel string
		wantCode  float64
	}{
		{name: "ok", status: http.StatusCreated, write: true, wantLevel: "info", wantCode: 201},
		{name: "nothing written", wantLevel: "info", wantCode: 200},
		{name: "server error", status: http.StatusInternalServerError, write: true, wantLevel: "warn", wantCode: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h, _ := newTestHandler(t)
			h.logger = &logger.Logger{Logger: zerolog.New(&buf)}

			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.write {
					w.WriteHeader(tt.status)
					_, _ = io.WriteString(w, "body")
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/api/user?x=1", nil)
			req.Header.Set(traceIDHeader, "trace-1")
			h.withTraceID(h.withLogging(inner)).ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantCode, entry["status"])
			assert.Equal(t, "trace-1", entry["trace_id"])
			assert.Equal(t, "/api/user?x=1", entry["uri"])
			assert.Equal(t, http.MethodGet, entry["method"])
		})
	}
}

// ── response writer ──────────────────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusTeapot)
	_, err = w.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, w.size)
	assert.Same(t, rec, w.Unwrap())
}

// ── method check ─────────────────────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name       string
		method     string
		wantStatus int
	}{
		{name: "registered", method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "unregistered method", method: http.MethodPost, wantStatus: http.StatusNotFound},
		{name: "delete", method: http.MethodDelete, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/ping", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
