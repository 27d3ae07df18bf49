package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"timebandit/internal/store"
)

type taskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (a *API) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	accountID, ok := AccountIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	task, err := a.store.CreateTask(r.Context(), accountID, req.Name, req.Description)
	if err != nil {
		log.Error().Err(err).Msg("create task")
		respondError(w, http.StatusInternalServerError, errInternal)
		return
	}

	a.publishJSON(tasksCreatedTopic, map[string]any{
		"task_id":    task.ID,
		"account_id": task.OwnerID,
	})
	respondJSON(w, http.StatusOK, task)
}

func (a *API) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	accountID, ok := AccountIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	task, err := a.store.UpdateTask(r.Context(), taskID, accountID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, errors.New("task not found"))
			return
		}
		log.Error().Err(err).Msg("update task")
		respondError(w, http.StatusInternalServerError, errInternal)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (a *API) handleListTasks(w http.ResponseWriter, r *http.Request) {
	accountID, ok := AccountIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	tasks, err := a.store.TasksWithEventsByOwner(r.Context(), accountID)
	if err != nil {
		log.Error().Err(err).Msg("list tasks")
		respondError(w, http.StatusInternalServerError, errInternal)
		return
	}

	if tasks == nil {
		tasks = []store.TaskWithEvents{}
	}
	respondJSON(w, http.StatusOK, tasks)
}

func (a *API) handleTaskWithEvents(w http.ResponseWriter, r *http.Request) {
	accountID, ok := AccountIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	task, err := a.store.TaskWithEvents(r.Context(), taskID, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, errors.New("task not found"))
			return
		}
		log.Error().Err(err).Msg("task with events")
		respondError(w, http.StatusInternalServerError, errInternal)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func parseTaskID(r *http.Request) (int64, error) {
	taskID, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil {
		return 0, errors.New("valid task id is required")
	}
	return taskID, nil
}
