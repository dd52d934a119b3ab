package store

import (
	"context"

	"github.com/MKhiriev/nutri-track/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SequenceGenerator issues strictly increasing ids per counter kind.
type SequenceGenerator interface {
	// Next atomically increments the counter named kind, creating it at 1
	// when absent, and returns the new value.
	Next(ctx context.Context, kind string) (int64, error)
}

// UserRepository stores user accounts and their body metrics.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateUserMetrics(ctx context.Context, userID int64, metrics models.UserMetrics) (models.User, error)
}

// ExerciseRepository stores logged workouts.
type ExerciseRepository interface {
	AddExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error)
	GetExercises(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.Exercise, error)
}

// FoodEntryRepository stores food diary entries.
type FoodEntryRepository interface {
	AddFoodEntry(ctx context.Context, entry models.FoodEntry) (models.FoodEntry, error)
	GetFoodEntries(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.FoodEntry, error)
	// DeleteFoodEntry removes the entry only when it belongs to userID and
	// reports whether a row was deleted.
	DeleteFoodEntry(ctx context.Context, userID, entryID int64) (bool, error)
}

// SessionRepository maps opaque tokens to users.
type SessionRepository interface {
	Create(ctx context.Context, userID int64) (models.Session, error)
	// Resolve returns [ErrSessionNotFound] for unknown and expired tokens.
	Resolve(ctx context.Context, token string) (models.Session, error)
	// Destroy is idempotent.
	Destroy(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) (int64, error)
}
