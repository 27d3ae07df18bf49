package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"timebandit/internal/store"
)

type contextKey string

const accountIDContextKey = contextKey("account_id")

// requireSession gates protected routes. It reads the session cookie, resolves
// the token through the session table, and injects the account id into the
// request context. Requests without a live session are rejected before any
// repository work happens.
func (a *API) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			respondError(w, http.StatusUnauthorized, errors.New("unauthorized"))
			return
		}

		accountID, err := a.store.AccountIDForToken(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Error().Err(err).Msg("resolve session token")
			}
			respondError(w, http.StatusUnauthorized, errors.New("unauthorized"))
			return
		}

		ctx := ContextWithAccountID(r.Context(), accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccountIDFromContext returns the authenticated account id injected by the
// session middleware.
func AccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(accountIDContextKey).(int64)
	return accountID, ok
}

// ContextWithAccountID injects an account id, mainly for tests.
func ContextWithAccountID(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, accountIDContextKey, accountID)
}
