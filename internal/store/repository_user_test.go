package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/models"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

// newTestDB wraps a sqlmock connection as a PostgreSQL-dialect *DB with a
// frozen clock.
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := newDB(conn, config.DriverPostgres, NewPostgresErrorClassifier(), logger.Nop())
	db.now = func() time.Time { return fixedNow }

	return db, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	l := logger.Nop()
	return &userRepository{db: db, seq: NewSequenceGenerator(db), logger: l}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{
	"id", "username", "password", "height", "weight", "age",
	"gender", "activity_level", "created_at", "updated_at",
}

func expectNextSequence(mock sqlmock.Sqlmock, kind string, seq int64) {
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO counters (name,seq) VALUES ($1,$2) ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1 RETURNING seq")).
		WithArgs(kind, 1).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(seq))
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	expectNextSequence(mock, models.CounterUserID, 7)
	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(7), "alice", "hash", nil, nil, nil, nil, nil, fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), models.User{Username: "alice", Password: "hash"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, fixedNow, created.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	expectNextSequence(mock, models.CounterUserID, 8)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	expectNextSequence(mock, models.CounterUserID, 9)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreateUser_SequenceError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO counters").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, "alice", "hash", 170.5, 65.0, 30, "female", "moderate", fixedNow, fixedNow)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password, height, weight, age, gender, activity_level, created_at, updated_at FROM users WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(rows)

	user, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "hash", user.Password)
	require.NotNil(t, user.Height)
	assert.InDelta(t, 170.5, *user.Height, 1e-9)
	require.NotNil(t, user.Age)
	assert.Equal(t, 30, *user.Age)
	require.NotNil(t, user.Gender)
	assert.Equal(t, models.Female, *user.Gender)
	require.NotNil(t, user.ActivityLevel)
	assert.Equal(t, models.Moderate, *user.ActivityLevel)
}

func TestGetUser_NullMetrics(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(3, "bob", "hash", nil, nil, nil, nil, nil, fixedNow, fixedNow)
	mock.ExpectQuery("FROM users WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	user, err := repo.GetUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, user.Height)
	assert.Nil(t, user.Weight)
	assert.Nil(t, user.Age)
	assert.Nil(t, user.Gender)
	assert.Nil(t, user.ActivityLevel)
	assert.False(t, user.HasBodyMetrics())
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestGetUserByUsername_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrNoUserWasFound)
}

func TestUpdateUserMetrics_SetsOnlyProvidedFields(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	weight := 70.0
	level := models.Active

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, "alice", "hash", nil, weight, nil, nil, "active", fixedNow.Add(-time.Hour), fixedNow)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET updated_at = $1, weight = $2, activity_level = $3 WHERE id = $4 RETURNING id, username")).
		WithArgs(fixedNow, weight, "active", int64(1)).
		WillReturnRows(rows)

	user, err := repo.UpdateUserMetrics(context.Background(), 1, models.UserMetrics{Weight: &weight, ActivityLevel: &level})
	require.NoError(t, err)
	require.NotNil(t, user.Weight)
	assert.Equal(t, weight, *user.Weight)
	assert.Equal(t, fixedNow, user.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserMetrics_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	age := 40
	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.UpdateUserMetrics(context.Background(), 99, models.UserMetrics{Age: &age})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
