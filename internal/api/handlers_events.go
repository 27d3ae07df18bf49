package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"timebandit/internal/store"
)

type eventRequest struct {
	TaskID    int64     `json:"task_id"`
	DateBegan time.Time `json:"date_began"`
	Duration  int64     `json:"duration"`
	Notes     string    `json:"notes"`
}

func (a *API) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	accountID, ok := AccountIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if req.TaskID <= 0 {
		respondError(w, http.StatusBadRequest, errors.New("valid task_id is required"))
		return
	}
	if req.DateBegan.IsZero() {
		respondError(w, http.StatusBadRequest, errors.New("date_began is required"))
		return
	}

	event, err := a.store.CreateEvent(r.Context(), accountID, req.TaskID, req.DateBegan, req.Duration, req.Notes)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, errors.New("task not found"))
			return
		}
		log.Error().Err(err).Msg("create event")
		respondError(w, http.StatusInternalServerError, errInternal)
		return
	}

	a.publishJSON(eventsCreatedTopic, map[string]any{
		"event_id":   event.ID,
		"task_id":    event.TaskID,
		"account_id": event.OwnerID,
	})
	respondJSON(w, http.StatusOK, event)
}
