package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
)

// EventStore implements activity.EventStore using PostgreSQL.
// Events live in a single activity_events table keyed by activity_key;
// each append is a single durable INSERT.
type EventStore struct {
	conn *Connection
}

// NewEventStore creates a new EventStore.
func NewEventStore(conn *Connection) *EventStore {
	return &EventStore{conn: conn}
}

// Append persists one submission. The event timestamp is assigned by the
// database so insertion order yields non-decreasing timestamps.
func (s *EventStore) Append(ctx context.Context, activityKey string, userID activity.UserID, username string, count int64) (activity.Event, error) {
	if count <= 0 {
		return activity.Event{}, activity.ErrInvalidCount
	}

	event := activity.Event{
		ID:          uuid.New(),
		ActivityKey: activityKey,
		UserID:      userID,
		Username:    username,
		Count:       count,
	}

	err := s.conn.Pool().QueryRow(ctx, `
		INSERT INTO activity_events (id, activity_key, user_id, username, count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, event.ID, activityKey, int64(userID), username, count).Scan(&event.CreatedAt)
	if err != nil {
		return activity.Event{}, fmt.Errorf("%w: append event: %v", activity.ErrStorage, err)
	}

	return event, nil
}

// SumInRange returns the sum of counts within the inclusive window
// [from, to]. Zero time bounds leave the window open on that side, so a
// zero/zero range is the lifetime total.
func (s *EventStore) SumInRange(ctx context.Context, activityKey string, userID activity.UserID, from, to time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(count), 0)
		FROM activity_events
		WHERE activity_key = $1 AND user_id = $2
	`
	args := []any{activityKey, int64(userID)}

	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	var sum int64
	if err := s.conn.Pool().QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: sum events: %v", activity.ErrStorage, err)
	}
	return sum, nil
}

// DistinctUsers returns every user who has submitted any of the given
// activities, with the username taken from their most recent submission
// carrying a non-empty username.
func (s *EventStore) DistinctUsers(ctx context.Context, activityKeys []string) ([]activity.UserRef, error) {
	if len(activityKeys) == 0 {
		return nil, nil
	}

	rows, err := s.conn.Pool().Query(ctx, `
		SELECT e.user_id,
		       COALESCE((
		           SELECT n.username
		           FROM activity_events n
		           WHERE n.user_id = e.user_id
		             AND n.activity_key = ANY($1)
		             AND n.username <> ''
		           ORDER BY n.created_at DESC
		           LIMIT 1
		       ), '') AS username
		FROM activity_events e
		WHERE e.activity_key = ANY($1)
		GROUP BY e.user_id
	`, activityKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: distinct users: %v", activity.ErrStorage, err)
	}
	defer rows.Close()

	var users []activity.UserRef
	for rows.Next() {
		var (
			id       int64
			username string
		)
		if err := rows.Scan(&id, &username); err != nil {
			return nil, fmt.Errorf("%w: scan user: %v", activity.ErrStorage, err)
		}
		users = append(users, activity.UserRef{ID: activity.UserID(id), Username: username})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate users: %v", activity.ErrStorage, err)
	}

	return users, nil
}
