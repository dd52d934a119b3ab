package config

import (
	"fmt"
	"time"
)

// ClientConfig configures the terminal diary client.
type ClientConfig struct {
	// ServerURL is the base URL of the nutri-track API.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`

	// RequestTimeout bounds each API call.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// LogFile receives client logs so they do not corrupt the terminal UI.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE" envDefault:"nutri-client.log"`

	// SessionCookieName must match the server's APP_SESSION_COOKIE_NAME.
	// Env: CLIENT_SESSION_COOKIE_NAME
	SessionCookieName string `env:"SESSION_COOKIE_NAME" envDefault:"nutri_session"`
}

// GetClientConfig reads the client configuration from CLIENT_* variables.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnvWithPrefix(cfg, "CLIENT_"); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
