package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/utils"
	"github.com/MKhiriev/nutri-track/models"
)

// sessionRepository keeps sessions in the "sessions" table. Only the SHA-256
// digest of a token is stored; the plain token is returned once, by Create.
type sessionRepository struct {
	db     *DB
	ttl    time.Duration
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] whose sessions
// expire ttl after creation.
func NewSessionRepository(db *DB, ttl time.Duration, logger *logger.Logger) SessionRepository {
	logger.Debug().Dur("ttl", ttl).Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *sessionRepository) Create(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.NewSessionToken()
	if err != nil {
		return models.Session{}, err
	}

	now := r.db.now()
	session := models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(r.ttl),
	}

	query, args, err := r.db.buildInsertSessionQuery(utils.HashSessionToken(token), session)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Create").Int64("user_id", userID).Msg("error inserting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (r *sessionRepository) Resolve(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.Session{}, ErrSessionNotFound
	}

	query, args, err := r.db.buildSelectSessionQuery(utils.HashSessionToken(token), r.db.now())
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.UserID, &session.CreatedAt, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.Resolve").Msg("error selecting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	session.CreatedAt, session.ExpiresAt = utc(session.CreatedAt), utc(session.ExpiresAt)

	return session, nil
}

func (r *sessionRepository) Destroy(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil
	}

	query, args, err := r.db.buildDeleteSessionQuery(utils.HashSessionToken(token))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Destroy").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// PurgeExpired deletes every session whose expiry has passed and returns
// how many were removed.
func (r *sessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildPurgeSessionsQuery(r.db.now())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.PurgeExpired").Msg("error purging sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.RowsAffected()
}
