package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name       string
		err        error
		want       ErrorClassification
		wantUnique bool
	}{
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable, wantUnique: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), want: NonRetryable, wantUnique: true},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
			assert.Equal(t, tt.wantUnique, c.IsUniqueViolation(tt.err))
		})
	}
}

func TestClassifyPgError(t *testing.T) {
	assert.Equal(t, Retryable, ClassifyPgError(&pgconn.PgError{Code: pgerrcode.CannotConnectNow}))
	assert.Equal(t, NonRetryable, ClassifyPgError(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name       string
		err        error
		want       ErrorClassification
		wantUnique bool
	}{
		{
			name:       "unique",
			err:        sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			want:       NonRetryable,
			wantUnique: true,
		},
		{
			name:       "primary key",
			err:        fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}),
			want:       NonRetryable,
			wantUnique: true,
		},
		{
			name: "foreign key",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey},
			want: NonRetryable,
		},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, want: Retryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
			assert.Equal(t, tt.wantUnique, c.IsUniqueViolation(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}
