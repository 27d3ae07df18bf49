package store

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user. The password hash never leaves the server.
type Account struct {
	ID           int64     `json:"id" db:"id"`
	ExternalID   uuid.UUID `json:"external_id" db:"external_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
}

// Task is a unit of work owned by a single account.
type Task struct {
	ID          int64     `json:"id" db:"id"`
	ExternalID  uuid.UUID `json:"external_id" db:"external_id"`
	OwnerID     int64     `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedOn   time.Time `json:"created_on" db:"created_on"`
}

// Event records time spent against a task. Events are append-only.
type Event struct {
	ID         int64     `json:"id" db:"id"`
	ExternalID uuid.UUID `json:"external_id" db:"external_id"`
	OwnerID    int64     `json:"user_id" db:"user_id"`
	TaskID     int64     `json:"task_id" db:"task_id"`
	DateBegan  time.Time `json:"date_began" db:"date_began"`
	Duration   int64     `json:"duration" db:"duration"`
	Notes      string    `json:"notes" db:"notes"`
}

// TaskWithEvents is the composed read model of one task and all of its events.
// Events is always non-nil; a task without events carries an empty slice.
type TaskWithEvents struct {
	Task   Task    `json:"task"`
	Events []Event `json:"events"`
}
