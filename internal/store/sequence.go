package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/nutri-track/internal/logger"
)

// sequenceGenerator issues ids from the counters table. A single upsert
// statement increments and returns the value, so concurrent callers never
// observe the same id. Ids consumed by a failed insert are not reused.
type sequenceGenerator struct {
	db *DB
}

// NewSequenceGenerator constructs a [SequenceGenerator] over db.
func NewSequenceGenerator(db *DB) SequenceGenerator {
	return &sequenceGenerator{db: db}
}

func (s *sequenceGenerator) Next(ctx context.Context, kind string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.buildNextSequenceQuery(kind)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seq int64
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrSequenceExhausted
		}
		log.Err(err).
			Str("func", "*sequenceGenerator.Next").
			Str("kind", kind).
			Stringer("classification", s.db.errorClassificator.Classify(err)).
			Msg("error incrementing counter")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return seq, nil
}
