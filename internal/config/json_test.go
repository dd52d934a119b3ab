package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"session_secret": "cookie_secret",
			"session_ttl": "24h",
			"session_cookie_name": "sid",
			"secure_cookie": true,
			"version": "0.9.0",
			"log_level": "error"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"cors_origins": ["http://localhost:5173"]
		},
		"storage": {
			"db": { "dsn": "file:nutri.db", "driver": "sqlite3" }
		},
		"adapter": {
			"gemini_api_key": "k",
			"gemini_base_url": "http://g",
			"gemini_model": "m",
			"request_timeout": "2s"
		},
		"workers": {
			"session_purge_interval": "15m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "cookie_secret", cfg.App.SessionSecret)
	assert.Equal(t, 24*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, "sid", cfg.App.SessionCookieName)
	assert.True(t, cfg.App.SecureCookie)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)

	assert.Equal(t, "file:nutri.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)

	assert.Equal(t, "k", cfg.Adapter.GeminiAPIKey)
	assert.Equal(t, "http://g", cfg.Adapter.GeminiBaseURL)
	assert.Equal(t, "m", cfg.Adapter.GeminiModel)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 15*time.Minute, cfg.Workers.SessionPurgeInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {"session_ttl": "two weeks"}}`), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	out, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(out))
}
