package activity

import (
	"context"
	"time"
)

// EventStore defines the interface for the append-only activity event log.
// Implemented by the infrastructure layer; the domain has no knowledge of
// the actual storage mechanism.
type EventStore interface {
	// Append durably persists a submission before returning. The store
	// assigns the event timestamp. Rejects count <= 0 with ErrInvalidCount
	// as a defensive invariant; range validation belongs to the caller.
	Append(ctx context.Context, activityKey string, userID UserID, username string, count int64) (Event, error)

	// SumInRange returns the sum of counts for a user/activity within the
	// inclusive time window [from, to], or 0 if no rows match. A zero
	// `from` or `to` leaves that side of the window unbounded.
	SumInRange(ctx context.Context, activityKey string, userID UserID, from, to time.Time) (int64, error)

	// DistinctUsers returns every user who has ever submitted any of the
	// given activities. The username comes from the most recent submission
	// with a non-empty username, if any.
	DistinctUsers(ctx context.Context, activityKeys []string) ([]UserRef, error)
}

// AchievementRepo defines the interface for achievement persistence.
type AchievementRepo interface {
	// InsertIfAbsent atomically inserts an achievement unless one already
	// exists for the same (user, activity, milestone) triple. Returns true
	// if the row was inserted, false if it already existed. The uniqueness
	// check must be a single atomic operation at the storage layer, not a
	// read-then-write.
	InsertIfAbsent(ctx context.Context, a Achievement) (bool, error)
}
