package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/logger"
)

// Storages groups every repository the service layer depends on.
type Storages struct {
	Sequence            SequenceGenerator
	UserRepository      UserRepository
	ExerciseRepository  ExerciseRepository
	FoodEntryRepository FoodEntryRepository
	SessionRepository   SessionRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, sessionTTL time.Duration, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, sessionTTL, logger), nil
}

// NewStoragesFromDB builds the repositories over an open, migrated db.
func NewStoragesFromDB(db *DB, sessionTTL time.Duration, logger *logger.Logger) *Storages {
	seq := NewSequenceGenerator(db)

	return &Storages{
		Sequence:            seq,
		UserRepository:      NewUserRepository(db, seq, logger),
		ExerciseRepository:  NewExerciseRepository(db, seq, logger),
		FoodEntryRepository: NewFoodEntryRepository(db, seq, logger),
		SessionRepository:   NewSessionRepository(db, sessionTTL, logger),
		db:                  db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
