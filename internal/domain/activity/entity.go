// Package activity contains domain entities and business logic for
// tracking user-submitted activity counts and awarding milestone
// achievements. This is a pure domain layer with zero storage knowledge.
package activity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Domain errors for the activity package.
var (
	// User input errors - always recoverable, reported back to the submitter.
	ErrUnknownActivity  = errors.New("activity: unknown activity")
	ErrInvalidFormat    = errors.New("activity: count is not a number")
	ErrNonPositiveCount = errors.New("activity: count must be positive")
	ErrCountTooLarge    = errors.New("activity: count exceeds the per-submission maximum")

	// ErrInvalidCount is returned by the store when asked to append a
	// non-positive count.
	ErrInvalidCount = errors.New("activity: invalid count")

	// ErrStorage indicates the underlying persistence failed. Fatal to the
	// current request; never reported as partial success.
	ErrStorage = errors.New("activity: storage failure")
)

// UserID is the bot-assigned numeric identifier of a submitter.
type UserID int64

// IsValid checks if the user ID is valid.
func (u UserID) IsValid() bool {
	return u != 0
}

// Event is a single recorded activity submission. Events are append-only:
// once stored they are never mutated or deleted.
type Event struct {
	ID          uuid.UUID
	ActivityKey string
	UserID      UserID
	Username    string // may be empty, display falls back to a synthesized label
	Count       int64
	CreatedAt   time.Time // assigned by the store on append
}

// Achievement records the first crossing of a milestone by a user for an
// activity. At most one record per (user, activity, milestone) ever exists.
type Achievement struct {
	UserID      UserID
	Username    string // snapshot at time of award
	ActivityKey string
	Milestone   int64
	AwardedAt   time.Time
}

// UserRef identifies a user who has submitted at least one activity.
type UserRef struct {
	ID       UserID
	Username string
}

// Label returns the display name for the user: the username if known,
// otherwise a placeholder synthesized from the ID.
func (u UserRef) Label() string {
	if u.Username != "" {
		return u.Username
	}
	return fmt.Sprintf("ID%d", u.ID)
}

// Stats holds the aggregated counts for one user and one activity.
type Stats struct {
	Today int64
	Week  int64
	Total int64
}

// UserStats maps activity key to aggregated stats, one entry per catalog
// activity.
type UserStats map[string]Stats

// UserStatsEntry pairs a user with their full stats across all activities.
// No ordering is guaranteed; sorting is the caller's responsibility.
type UserStatsEntry struct {
	User  UserRef
	Stats UserStats
}
