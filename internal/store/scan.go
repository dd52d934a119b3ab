package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/nutri-track/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user          models.User
		height        sql.NullFloat64
		weight        sql.NullFloat64
		age           sql.NullInt64
		gender        sql.NullString
		activityLevel sql.NullString
	)

	err := row.Scan(
		&user.ID, &user.Username, &user.Password,
		&height, &weight, &age, &gender, &activityLevel,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if height.Valid {
		user.Height = &height.Float64
	}
	if weight.Valid {
		user.Weight = &weight.Float64
	}
	if age.Valid {
		a := int(age.Int64)
		user.Age = &a
	}
	if gender.Valid {
		g := models.Gender(gender.String)
		user.Gender = &g
	}
	if activityLevel.Valid {
		l := models.ActivityLevel(activityLevel.String)
		user.ActivityLevel = &l
	}
	user.CreatedAt, user.UpdatedAt = utc(user.CreatedAt), utc(user.UpdatedAt)

	return user, nil
}

func scanExercise(row rowScanner) (models.Exercise, error) {
	var e models.Exercise
	err := row.Scan(&e.ID, &e.UserID, &e.Type, &e.Duration, &e.CaloriesBurned, &e.Date, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return models.Exercise{}, err
	}
	e.Date, e.CreatedAt, e.UpdatedAt = utc(e.Date), utc(e.CreatedAt), utc(e.UpdatedAt)

	return e, nil
}

func scanFoodEntry(row rowScanner) (models.FoodEntry, error) {
	var f models.FoodEntry
	err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Calories, &f.Date, &f.MealType, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return models.FoodEntry{}, err
	}
	f.Date, f.CreatedAt, f.UpdatedAt = utc(f.Date), utc(f.CreatedAt), utc(f.UpdatedAt)

	return f, nil
}

func utc(t time.Time) time.Time {
	return t.UTC()
}
