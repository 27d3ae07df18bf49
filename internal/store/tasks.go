package store

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"timebandit/internal/db"
)

// CreateTask inserts a task for the owner and returns the stored row,
// including the server-assigned id, external id, and creation timestamp.
func (s *Store) CreateTask(ctx context.Context, ownerID int64, name, description string) (Task, error) {
	var task Task
	err := db.Get(ctx, s.pool, &task,
		`INSERT INTO tasks (user_id, name, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, external_id, user_id, name, description, created_on`,
		ownerID, name, description,
	)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// UpdateTask rewrites name and description of the owner's task. The ownership
// check lives in the WHERE clause so lookup and mutation are one statement; a
// wrong id and a foreign task are indistinguishable and both yield ErrNotFound.
func (s *Store) UpdateTask(ctx context.Context, taskID, ownerID int64, name, description string) (Task, error) {
	var task Task
	err := db.Get(ctx, s.pool, &task,
		`UPDATE tasks
		 SET name = $1, description = $2
		 WHERE id = $3 AND user_id = $4
		 RETURNING id, external_id, user_id, name, description, created_on`,
		name, description, taskID, ownerID,
	)
	if err != nil {
		if pgxscan.NotFound(err) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// TasksByOwner lists the owner's tasks ordered by creation time.
func (s *Store) TasksByOwner(ctx context.Context, ownerID int64) ([]Task, error) {
	var tasks []Task
	err := db.Select(ctx, s.pool, &tasks,
		`SELECT id, external_id, user_id, name, description, created_on
		 FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_on, id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("tasks by owner: %w", err)
	}
	return tasks, nil
}

// TaskWithEvents fetches one of the owner's tasks together with all of its
// events. The two reads are not wrapped in a transaction; a concurrent write
// between them is an accepted inconsistency window.
func (s *Store) TaskWithEvents(ctx context.Context, taskID, ownerID int64) (TaskWithEvents, error) {
	var task Task
	err := db.Get(ctx, s.pool, &task,
		`SELECT id, external_id, user_id, name, description, created_on
		 FROM tasks
		 WHERE id = $1 AND user_id = $2`,
		taskID, ownerID,
	)
	if err != nil {
		if pgxscan.NotFound(err) {
			return TaskWithEvents{}, ErrNotFound
		}
		return TaskWithEvents{}, fmt.Errorf("task by id: %w", err)
	}

	var events []Event
	err = db.Select(ctx, s.pool, &events,
		`SELECT id, external_id, user_id, task_id, date_began, duration, notes
		 FROM events
		 WHERE task_id = $1
		 ORDER BY date_began, id`,
		taskID,
	)
	if err != nil {
		return TaskWithEvents{}, fmt.Errorf("events by task: %w", err)
	}

	if events == nil {
		events = []Event{}
	}
	return TaskWithEvents{Task: task, Events: events}, nil
}

// TasksWithEventsByOwner returns every task owned by the account, each paired
// with its events. Tasks and events are fetched in two owner-scoped queries
// and merged by task id, so a task with no events still appears with an empty
// slice and a task with many events appears exactly once.
func (s *Store) TasksWithEventsByOwner(ctx context.Context, ownerID int64) ([]TaskWithEvents, error) {
	tasks, err := s.TasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var events []Event
	err = db.Select(ctx, s.pool, &events,
		`SELECT e.id, e.external_id, e.user_id, e.task_id, e.date_began, e.duration, e.notes
		 FROM events e
		 JOIN tasks t ON t.id = e.task_id
		 WHERE t.user_id = $1
		 ORDER BY e.date_began, e.id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("events by owner: %w", err)
	}

	return groupTasksWithEvents(tasks, events), nil
}

// groupTasksWithEvents merges tasks and events by task id in O(tasks+events).
func groupTasksWithEvents(tasks []Task, events []Event) []TaskWithEvents {
	result := make([]TaskWithEvents, len(tasks))
	index := make(map[int64]int, len(tasks))
	for i, task := range tasks {
		result[i] = TaskWithEvents{Task: task, Events: []Event{}}
		index[task.ID] = i
	}
	for _, event := range events {
		i, ok := index[event.TaskID]
		if !ok {
			continue
		}
		result[i].Events = append(result[i].Events, event)
	}
	return result
}
