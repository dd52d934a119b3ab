package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/logger"
)

// NewConnectSQLite opens a SQLite database. Enable foreign keys through the
// DSN ("_foreign_keys=on"); the pragma is per connection.
//
// SQLite allows one writer at a time, so the pool is limited to a single
// connection. Writers queue in database/sql instead of failing with
// SQLITE_BUSY.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(config.DriverSQLite, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, config.DriverSQLite, NewSQLiteErrorClassifier(), log), nil
}

func sqliteError(err error) (sqlite3.Error, bool) {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr, true
	}

	return sqlite3.Error{}, false
}
