package config

import "time"

// Built-in values used for fields that no other source has set.
const (
	DefaultHTTPAddress          = "localhost:8080"
	DefaultDBDriver             = DriverPostgres
	DefaultSessionTTL           = 14 * 24 * time.Hour
	DefaultSessionCookieName    = "nutri_session"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultGeminiBaseURL        = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel          = "gemini-1.5-flash"
	DefaultAdapterTimeout       = 20 * time.Second
	DefaultSessionPurgeInterval = time.Hour
	DefaultLogLevel             = "info"
	DefaultVersion              = "dev"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionTTL:        DefaultSessionTTL,
			SessionCookieName: DefaultSessionCookieName,
			Version:           DefaultVersion,
			LogLevel:          DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDBDriver},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			GeminiBaseURL:  DefaultGeminiBaseURL,
			GeminiModel:    DefaultGeminiModel,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			SessionPurgeInterval: DefaultSessionPurgeInterval,
		},
	}
}
