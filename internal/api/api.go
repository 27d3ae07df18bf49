// Package api exposes the Time Bandit HTTP surface: account registration,
// cookie-based login, and session-gated task and event endpoints.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"timebandit/internal/store"
)

const (
	sessionCookieName = "time_bandit_auth_token_v1"

	tasksCreatedTopic  = "timebandit.tasks.created"
	eventsCreatedTopic = "timebandit.events.created"
)

// Store is the persistence surface the handlers depend on.
type Store interface {
	Ping(ctx context.Context) error
	CreateAccount(ctx context.Context, email, passwordHash string) (store.Account, error)
	AccountByEmail(ctx context.Context, email string) (store.Account, error)
	CreateSession(ctx context.Context, accountID int64) (string, error)
	AccountIDForToken(ctx context.Context, token string) (int64, error)
	CreateTask(ctx context.Context, ownerID int64, name, description string) (store.Task, error)
	UpdateTask(ctx context.Context, taskID, ownerID int64, name, description string) (store.Task, error)
	CreateEvent(ctx context.Context, ownerID, taskID int64, dateBegan time.Time, duration int64, notes string) (store.Event, error)
	TaskWithEvents(ctx context.Context, taskID, ownerID int64) (store.TaskWithEvents, error)
	TasksWithEventsByOwner(ctx context.Context, ownerID int64) ([]store.TaskWithEvents, error)
}

// Config controls runtime behaviour for the API handlers.
type Config struct {
	AllowedOrigins []string
	CookieSecure   bool
}

// API wires the store, optional message bus, and configuration for HTTP handlers.
type API struct {
	store  Store
	bus    *nats.Conn
	config Config
}

// New initialises the API layer. The bus may be nil; publishing is then a no-op.
func New(st Store, bus *nats.Conn, cfg Config) (*API, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	return &API{
		store:  st,
		bus:    bus,
		config: cfg,
	}, nil
}

// Routes constructs the chi router containing all API endpoints.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Cookie", "Origin"},
		AllowCredentials: true,
		MaxAge:           int((10 * time.Minute).Seconds()),
	}))
	r.Use(httprate.Limit(100, time.Minute))
	r.Use(a.recordMetrics)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Time Bandit"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := a.store.Ping(r.Context()); err != nil {
			log.Error().Err(err).Msg("readiness probe")
			respondError(w, http.StatusServiceUnavailable, errors.New("database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		// Registration and login take the brunt of credential stuffing.
		r.Use(httprate.LimitByIP(10, time.Minute))
		r.Post("/users/register", a.handleRegister)
		r.Post("/users/login", a.handleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(a.requireSession)
		r.Get("/auth", a.handleSession)
		r.Post("/tasks", a.handleCreateTask)
		r.Post("/tasks/add_task", a.handleCreateTask) // legacy route used by the shipped frontend
		r.Get("/tasks", a.handleListTasks)
		r.Get("/tasks/{taskID}", a.handleTaskWithEvents)
		r.Put("/tasks/{taskID}", a.handleUpdateTask)
		r.Post("/events/add_event", a.handleCreateEvent)
	})

	return r
}
