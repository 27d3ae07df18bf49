package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"timebandit/internal/auth"
	"timebandit/internal/store"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, errors.New("email and password are required"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("hash password")
		respondError(w, http.StatusInternalServerError, errInternal)
		return
	}

	if _, err := a.store.CreateAccount(r.Context(), req.Email, hash); err != nil {
		if errors.Is(err, store.ErrConflict) {
			respondError(w, http.StatusConflict, errors.New("email already registered"))
			return
		}
		log.Error().Err(err).Msg("create account")
		respondError(w, http.StatusInternalServerError, errInternal)
		return
	}

	respondJSON(w, http.StatusOK, "account created")
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	// Every failure below returns the same response so callers cannot probe
	// which part of the chain rejected them.
	account, err := a.store.AccountByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error().Err(err).Msg("account lookup")
		}
		respondError(w, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if !auth.VerifyPassword(req.Password, account.PasswordHash) {
		respondError(w, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := a.store.CreateSession(r.Context(), account.ID)
	if err != nil {
		log.Error().Err(err).Msg("create session")
		respondError(w, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Secure:   a.config.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	respondJSON(w, http.StatusOK, nil)
}

// handleSession lets the frontend check whether its cookie still maps to a
// live session.
func (a *API) handleSession(w http.ResponseWriter, r *http.Request) {
	accountID, ok := AccountIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"account_id": accountID})
}
