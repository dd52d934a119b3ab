package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	seq    SequenceGenerator
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] that allocates ids from
// seq.
func NewUserRepository(db *DB, seq SequenceGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		seq:    seq,
		logger: logger,
	}
}

// CreateUser allocates a "userId" sequence value and inserts the user.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	id, err := r.seq.Next(ctx, models.CounterUserID)
	if err != nil {
		return models.User{}, fmt.Errorf("error allocating user id: %w", err)
	}

	now := r.db.now()
	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := r.db.buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username is taken")
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// GetUser returns the user with the given id or [ErrNoUserWasFound].
func (r *userRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"id": userID}, "*userRepository.GetUser")
}

// GetUserByUsername returns the user with the given username or
// [ErrNoUserWasFound].
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username}, "*userRepository.GetUserByUsername")
}

func (r *userRepository) getUser(ctx context.Context, where sq.Eq, funcName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectUserQuery(where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateUserMetrics applies the non-nil fields of metrics, bumps updated_at
// and returns the stored user.
func (r *userRepository) UpdateUserMetrics(ctx context.Context, userID int64, metrics models.UserMetrics) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateUserMetricsQuery(userID, metrics, r.db.now())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUserMetrics").Int64("user_id", userID).Msg("error updating metrics")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
