package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"timebandit/internal/auth"
	"timebandit/internal/store"
)

// memStore is an in-memory Store used to exercise the HTTP surface without a
// database. It mirrors the relational semantics the postgres store relies on:
// unique emails, one session per account, and owner-scoped task lookups.
type memStore struct {
	mu               sync.Mutex
	pingErr          error
	nextID           int64
	accounts         map[string]store.Account
	sessions         map[string]int64
	sessionByAccount map[int64]string
	tasks            map[int64]store.Task
	events           []store.Event
}

func newMemStore() *memStore {
	return &memStore{
		accounts:         make(map[string]store.Account),
		sessions:         make(map[string]int64),
		sessionByAccount: make(map[int64]string),
		tasks:            make(map[int64]store.Task),
	}
}

func (m *memStore) Ping(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pingErr
}

func (m *memStore) setPingErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingErr = err
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateAccount(_ context.Context, email, passwordHash string) (store.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[email]; ok {
		return store.Account{}, store.ErrConflict
	}
	account := store.Account{
		ID:           m.id(),
		ExternalID:   uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	m.accounts[email] = account
	return account, nil
}

func (m *memStore) AccountByEmail(_ context.Context, email string) (store.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[email]
	if !ok {
		return store.Account{}, store.ErrNotFound
	}
	return account, nil
}

func (m *memStore) CreateSession(_ context.Context, accountID int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := auth.NewSessionToken()
	if err != nil {
		return "", err
	}
	if old, ok := m.sessionByAccount[accountID]; ok {
		delete(m.sessions, old)
	}
	m.sessions[token] = accountID
	m.sessionByAccount[accountID] = token
	return token, nil
}

func (m *memStore) AccountIDForToken(_ context.Context, token string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accountID, ok := m.sessions[token]
	if !ok {
		return 0, store.ErrNotFound
	}
	return accountID, nil
}

func (m *memStore) CreateTask(_ context.Context, ownerID int64, name, description string) (store.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task := store.Task{
		ID:          m.id(),
		ExternalID:  uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CreatedOn:   time.Now().UTC(),
	}
	m.tasks[task.ID] = task
	return task, nil
}

func (m *memStore) UpdateTask(_ context.Context, taskID, ownerID int64, name, description string) (store.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return store.Task{}, store.ErrNotFound
	}
	task.Name = name
	task.Description = description
	m.tasks[taskID] = task
	return task, nil
}

func (m *memStore) CreateEvent(_ context.Context, ownerID, taskID int64, dateBegan time.Time, duration int64, notes string) (store.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return store.Event{}, store.ErrNotFound
	}
	event := store.Event{
		ID:         m.id(),
		ExternalID: uuid.New(),
		OwnerID:    task.OwnerID,
		TaskID:     taskID,
		DateBegan:  dateBegan,
		Duration:   duration,
		Notes:      notes,
	}
	m.events = append(m.events, event)
	return event, nil
}

func (m *memStore) TaskWithEvents(_ context.Context, taskID, ownerID int64) (store.TaskWithEvents, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return store.TaskWithEvents{}, store.ErrNotFound
	}
	result := store.TaskWithEvents{Task: task, Events: []store.Event{}}
	for _, event := range m.events {
		if event.TaskID == taskID {
			result.Events = append(result.Events, event)
		}
	}
	return result, nil
}

func (m *memStore) TasksWithEventsByOwner(_ context.Context, ownerID int64) ([]store.TaskWithEvents, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var tasks []store.Task
	for _, task := range m.tasks {
		if task.OwnerID == ownerID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	result := make([]store.TaskWithEvents, 0, len(tasks))
	for _, task := range tasks {
		entry := store.TaskWithEvents{Task: task, Events: []store.Event{}}
		for _, event := range m.events {
			if event.TaskID == task.ID {
				entry.Events = append(entry.Events, event)
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

var _ Store = (*memStore)(nil)
