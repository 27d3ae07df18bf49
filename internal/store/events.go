package store

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"timebandit/internal/db"
)

// CreateEvent records time against one of the owner's tasks. The insert
// selects the task row scoped by owner, so an event can never be attached to
// a task the caller does not own; that case yields ErrNotFound.
func (s *Store) CreateEvent(ctx context.Context, ownerID, taskID int64, dateBegan time.Time, duration int64, notes string) (Event, error) {
	var event Event
	err := db.Get(ctx, s.pool, &event,
		`INSERT INTO events (user_id, task_id, date_began, duration, notes)
		 SELECT t.user_id, t.id, $3, $4, $5
		 FROM tasks t
		 WHERE t.id = $2 AND t.user_id = $1
		 RETURNING id, external_id, user_id, task_id, date_began, duration, notes`,
		ownerID, taskID, dateBegan, duration, notes,
	)
	if err != nil {
		if pgxscan.NotFound(err) {
			return Event{}, ErrNotFound
		}
		return Event{}, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}
