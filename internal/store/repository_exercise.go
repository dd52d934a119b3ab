package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/models"
)

type exerciseRepository struct {
	db     *DB
	seq    SequenceGenerator
	logger *logger.Logger
}

// NewExerciseRepository constructs an [ExerciseRepository].
func NewExerciseRepository(db *DB, seq SequenceGenerator, logger *logger.Logger) ExerciseRepository {
	logger.Debug().Msg("creating exercise repository")
	return &exerciseRepository{
		db:     db,
		seq:    seq,
		logger: logger,
	}
}

// AddExercise stores a workout for exercise.UserID under a fresh
// "exerciseId" value.
func (r *exerciseRepository) AddExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
	log := logger.FromContext(ctx)

	id, err := r.seq.Next(ctx, models.CounterExerciseID)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("error allocating exercise id: %w", err)
	}

	now := r.db.now()
	exercise.ID = id
	exercise.Date = exercise.Date.UTC().Truncate(time.Microsecond)
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	query, args, err := r.db.buildInsertExerciseQuery(exercise)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*exerciseRepository.AddExercise").
			Int64("user_id", exercise.UserID).
			Msg("error inserting exercise")
		return models.Exercise{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exercise, nil
}

// GetExercises lists the user's workouts whose date lies in dateRange,
// bounds included, oldest first.
func (r *exerciseRepository) GetExercises(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.Exercise, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectExercisesQuery(userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*exerciseRepository.GetExercises").Int64("user_id", userID).Msg("error selecting exercises")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		exercise, scanErr := scanExercise(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*exerciseRepository.GetExercises").Msg("error scanning exercise")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		exercises = append(exercises, exercise)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return exercises, nil
}
