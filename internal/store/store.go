// Package store implements the PostgreSQL repositories for accounts,
// sessions, tasks, and time-tracking events.
package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"timebandit/internal/db"
)

var (
	// ErrNotFound indicates no row matched the requested id/owner combination.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a unique constraint violation, e.g. a duplicate email.
	ErrConflict = errors.New("already exists")
)

const uniqueViolation = "23505"

// Store holds the connection pool shared by all repositories.
type Store struct {
	pool *pgxpool.Pool
}

// New wraps the provided pool in a Store.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Ping reports whether the backing database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return db.Ping(ctx, s.pool)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
