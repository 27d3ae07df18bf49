package store

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"timebandit/internal/db"
)

// CreateAccount inserts a new account with the given pre-hashed password.
// A duplicate email surfaces as ErrConflict.
func (s *Store) CreateAccount(ctx context.Context, email, passwordHash string) (Account, error) {
	var account Account
	err := db.Get(ctx, s.pool, &account,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, external_id, email, password_hash`,
		email, passwordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Account{}, ErrConflict
		}
		return Account{}, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// AccountByEmail looks up an account by its email address.
func (s *Store) AccountByEmail(ctx context.Context, email string) (Account, error) {
	var account Account
	err := db.Get(ctx, s.pool, &account,
		`SELECT id, external_id, email, password_hash
		 FROM users
		 WHERE email = $1`,
		email,
	)
	if err != nil {
		if pgxscan.NotFound(err) {
			return Account{}, ErrNotFound
		}
		return Account{}, fmt.Errorf("account by email: %w", err)
	}
	return account, nil
}
