package store

import (
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/nutri-track/models"
)

const (
	countersTable    = "counters"
	usersTable       = "users"
	exercisesTable   = "exercises"
	foodEntriesTable = "food_entries"
	sessionsTable    = "sessions"
)

var (
	userColumns = []string{
		"id", "username", "password", "height", "weight", "age",
		"gender", "activity_level", "created_at", "updated_at",
	}
	exerciseColumns = []string{
		"id", "user_id", "type", "duration", "calories_burned", "date",
		"created_at", "updated_at",
	}
	foodEntryColumns = []string{
		"id", "user_id", "name", "calories", "date", "meal_type",
		"created_at", "updated_at",
	}
)

// nextSequenceSuffix turns the counter INSERT into an atomic
// increment-or-create. Both PostgreSQL and SQLite (3.35+) support it.
const nextSequenceSuffix = "ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1 RETURNING seq"

func (db *DB) buildNextSequenceQuery(kind string) (string, []any, error) {
	return db.builder.
		Insert(countersTable).
		Columns("name", "seq").
		Values(kind, 1).
		Suffix(nextSequenceSuffix).
		ToSql()
}

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID, user.Username, user.Password,
			user.Height, user.Weight, user.Age,
			genderValue(user.Gender), activityValue(user.ActivityLevel),
			user.CreatedAt, user.UpdatedAt,
		).
		ToSql()
}

func (db *DB) buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

// buildUpdateUserMetricsQuery sets only the non-nil fields of metrics.
func (db *DB) buildUpdateUserMetricsQuery(userID int64, metrics models.UserMetrics, now time.Time) (string, []any, error) {
	update := db.builder.
		Update(usersTable).
		Set("updated_at", now)

	if metrics.Height != nil {
		update = update.Set("height", *metrics.Height)
	}
	if metrics.Weight != nil {
		update = update.Set("weight", *metrics.Weight)
	}
	if metrics.Age != nil {
		update = update.Set("age", *metrics.Age)
	}
	if metrics.Gender != nil {
		update = update.Set("gender", string(*metrics.Gender))
	}
	if metrics.ActivityLevel != nil {
		update = update.Set("activity_level", string(*metrics.ActivityLevel))
	}

	return update.
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func (db *DB) buildInsertExerciseQuery(e models.Exercise) (string, []any, error) {
	return db.builder.
		Insert(exercisesTable).
		Columns(exerciseColumns...).
		Values(e.ID, e.UserID, e.Type, e.Duration, e.CaloriesBurned, e.Date, e.CreatedAt, e.UpdatedAt).
		ToSql()
}

func (db *DB) buildSelectExercisesQuery(userID int64, dateRange models.DateRange) (string, []any, error) {
	return db.builder.
		Select(exerciseColumns...).
		From(exercisesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"date": dateRange.Start}).
		Where(sq.LtOrEq{"date": dateRange.End}).
		OrderBy("date ASC", "id ASC").
		ToSql()
}

func (db *DB) buildInsertFoodEntryQuery(f models.FoodEntry) (string, []any, error) {
	return db.builder.
		Insert(foodEntriesTable).
		Columns(foodEntryColumns...).
		Values(f.ID, f.UserID, f.Name, f.Calories, f.Date, f.MealType, f.CreatedAt, f.UpdatedAt).
		ToSql()
}

func (db *DB) buildSelectFoodEntriesQuery(userID int64, dateRange models.DateRange) (string, []any, error) {
	return db.builder.
		Select(foodEntryColumns...).
		From(foodEntriesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"date": dateRange.Start}).
		Where(sq.LtOrEq{"date": dateRange.End}).
		OrderBy("date ASC", "id ASC").
		ToSql()
}

func (db *DB) buildDeleteFoodEntryQuery(userID, entryID int64) (string, []any, error) {
	return db.builder.
		Delete(foodEntriesTable).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
}

func (db *DB) buildInsertSessionQuery(tokenHash string, s models.Session) (string, []any, error) {
	return db.builder.
		Insert(sessionsTable).
		Columns("token_hash", "user_id", "created_at", "expires_at").
		Values(tokenHash, s.UserID, s.CreatedAt, s.ExpiresAt).
		ToSql()
}

func (db *DB) buildSelectSessionQuery(tokenHash string, now time.Time) (string, []any, error) {
	return db.builder.
		Select("user_id", "created_at", "expires_at").
		From(sessionsTable).
		Where(sq.Eq{"token_hash": tokenHash}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
}

func (db *DB) buildDeleteSessionQuery(tokenHash string) (string, []any, error) {
	return db.builder.
		Delete(sessionsTable).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

func (db *DB) buildPurgeSessionsQuery(now time.Time) (string, []any, error) {
	return db.builder.
		Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}

func genderValue(g *models.Gender) sql.NullString {
	if g == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*g), Valid: true}
}

func activityValue(a *models.ActivityLevel) sql.NullString {
	if a == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*a), Valid: true}
}
