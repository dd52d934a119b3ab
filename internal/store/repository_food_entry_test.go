package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/models"
)

func newTestFoodEntryRepo(t *testing.T) (*foodEntryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &foodEntryRepository{db: db, seq: NewSequenceGenerator(db), logger: logger.Nop()}, mock
}

func TestAddFoodEntry(t *testing.T) {
	repo, mock := newTestFoodEntryRepo(t)

	date := time.Date(2024, 3, 10, 8, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))

	expectNextSequence(mock, models.CounterFoodEntryID, 11)
	mock.ExpectExec("INSERT INTO food_entries").
		WithArgs(int64(11), int64(1), "oatmeal", 300, date.UTC(), "breakfast", fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry, err := repo.AddFoodEntry(context.Background(), models.FoodEntry{
		UserID: 1, Name: "oatmeal", Calories: 300, MealType: "breakfast", Date: date,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), entry.ID)
	assert.Equal(t, time.UTC, entry.Date.Location())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFoodEntry_DateTruncatedToMicroseconds(t *testing.T) {
	repo, mock := newTestFoodEntryRepo(t)

	date := time.Date(2024, 3, 10, 12, 30, 0, 123456789, time.UTC)
	stored := time.Date(2024, 3, 10, 12, 30, 0, 123456000, time.UTC)

	expectNextSequence(mock, models.CounterFoodEntryID, 12)
	mock.ExpectExec("INSERT INTO food_entries").
		WithArgs(int64(12), int64(1), "apple", 95, stored, "snack", fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry, err := repo.AddFoodEntry(context.Background(), models.FoodEntry{
		UserID: 1, Name: "apple", Calories: 95, MealType: "snack", Date: date,
	})
	require.NoError(t, err)
	assert.Equal(t, stored, entry.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFoodEntries(t *testing.T) {
	repo, mock := newTestFoodEntryRepo(t)

	dateRange := models.DateRange{Start: fixedNow.Add(-24 * time.Hour), End: fixedNow}
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "calories", "date", "meal_type", "created_at", "updated_at"}).
		AddRow(1, 1, "oatmeal", 300, fixedNow.Add(-time.Hour), "breakfast", fixedNow, fixedNow).
		AddRow(2, 1, "salad", 250, fixedNow, "lunch", fixedNow, fixedNow)

	mock.ExpectQuery(regexp.QuoteMeta("FROM food_entries WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC, id ASC")).
		WithArgs(int64(1), dateRange.Start, dateRange.End).
		WillReturnRows(rows)

	entries, err := repo.GetFoodEntries(context.Background(), 1, dateRange)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "oatmeal", entries[0].Name)
	assert.Equal(t, "lunch", entries[1].MealType)
}

func TestGetFoodEntries_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestFoodEntryRepo(t)

	mock.ExpectQuery("FROM food_entries").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "calories", "date", "meal_type", "created_at", "updated_at"}))

	entries, err := repo.GetFoodEntries(context.Background(), 1, models.DateRange{Start: fixedNow, End: fixedNow})
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestDeleteFoodEntry(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		want     bool
		wantErr  error
	}{
		{name: "deleted", affected: 1, want: true},
		{name: "missing or foreign", affected: 0, want: false},
		{name: "db error", execErr: errors.New("boom"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestFoodEntryRepo(t)

			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM food_entries WHERE id = $1 AND user_id = $2")).
				WithArgs(int64(5), int64(1))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			deleted, err := repo.DeleteFoodEntry(context.Background(), 1, 5)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
		})
	}
}
