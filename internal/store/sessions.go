package store

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"timebandit/internal/auth"
	"timebandit/internal/db"
)

// CreateSession issues a fresh session token for the account. Each account
// holds at most one live session: the upsert overwrites any existing row,
// invalidating the previous token in the same statement.
func (s *Store) CreateSession(ctx context.Context, accountID int64) (string, error) {
	token, err := auth.NewSessionToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	var issued string
	err = db.Get(ctx, s.pool, &issued,
		`INSERT INTO sessions (session_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id)
		 DO UPDATE SET session_id = EXCLUDED.session_id
		 RETURNING session_id`,
		token, accountID,
	)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return issued, nil
}

// AccountIDForToken resolves a session token to the owning account id.
// An unknown token yields ErrNotFound; that is the only invalidation path.
func (s *Store) AccountIDForToken(ctx context.Context, token string) (int64, error) {
	var accountID int64
	err := db.Get(ctx, s.pool, &accountID,
		`SELECT user_id FROM sessions WHERE session_id = $1`,
		token,
	)
	if err != nil {
		if pgxscan.NotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("resolve session: %w", err)
	}
	return accountID, nil
}
