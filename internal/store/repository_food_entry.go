package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/models"
)

type foodEntryRepository struct {
	db     *DB
	seq    SequenceGenerator
	logger *logger.Logger
}

// NewFoodEntryRepository constructs a [FoodEntryRepository].
func NewFoodEntryRepository(db *DB, seq SequenceGenerator, logger *logger.Logger) FoodEntryRepository {
	logger.Debug().Msg("creating food entry repository")
	return &foodEntryRepository{
		db:     db,
		seq:    seq,
		logger: logger,
	}
}

func (r *foodEntryRepository) AddFoodEntry(ctx context.Context, entry models.FoodEntry) (models.FoodEntry, error) {
	log := logger.FromContext(ctx)

	id, err := r.seq.Next(ctx, models.CounterFoodEntryID)
	if err != nil {
		return models.FoodEntry{}, fmt.Errorf("error allocating food entry id: %w", err)
	}

	now := r.db.now()
	entry.ID = id
	entry.Date = entry.Date.UTC().Truncate(time.Microsecond)
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query, args, err := r.db.buildInsertFoodEntryQuery(entry)
	if err != nil {
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*foodEntryRepository.AddFoodEntry").
			Int64("user_id", entry.UserID).
			Msg("error inserting food entry")
		return models.FoodEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *foodEntryRepository) GetFoodEntries(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.FoodEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectFoodEntriesQuery(userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*foodEntryRepository.GetFoodEntries").Int64("user_id", userID).Msg("error selecting food entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.FoodEntry, 0)
	for rows.Next() {
		entry, scanErr := scanFoodEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*foodEntryRepository.GetFoodEntries").Msg("error scanning food entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// DeleteFoodEntry deletes by id and owner in one statement, so an entry of
// another user is reported exactly like a missing one.
func (r *foodEntryRepository) DeleteFoodEntry(ctx context.Context, userID, entryID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteFoodEntryQuery(userID, entryID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*foodEntryRepository.DeleteFoodEntry").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("error deleting food entry")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}
