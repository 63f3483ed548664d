package activity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memEventStore is an in-memory EventStore for tests.
type memEventStore struct {
	mu     sync.Mutex
	events []Event

	// clock supplies CreatedAt for appended events; defaults to time.Now.
	clock func() time.Time
}

func newMemEventStore() *memEventStore {
	return &memEventStore{clock: time.Now}
}

func (s *memEventStore) Append(ctx context.Context, activityKey string, userID UserID, username string, count int64) (Event, error) {
	if count <= 0 {
		return Event{}, ErrInvalidCount
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e := Event{
		ID:          uuid.New(),
		ActivityKey: activityKey,
		UserID:      userID,
		Username:    username,
		Count:       count,
		CreatedAt:   s.clock(),
	}
	s.events = append(s.events, e)
	return e, nil
}

func (s *memEventStore) SumInRange(ctx context.Context, activityKey string, userID UserID, from, to time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum int64
	for _, e := range s.events {
		if e.ActivityKey != activityKey || e.UserID != userID {
			continue
		}
		if !from.IsZero() && e.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.CreatedAt.After(to) {
			continue
		}
		sum += e.Count
	}
	return sum, nil
}

func (s *memEventStore) DistinctUsers(ctx context.Context, activityKeys []string) ([]UserRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make(map[string]bool, len(activityKeys))
	for _, k := range activityKeys {
		keys[k] = true
	}

	seen := make(map[UserID]bool)
	var users []UserRef
	for _, e := range s.events {
		if !keys[e.ActivityKey] || seen[e.UserID] {
			continue
		}
		seen[e.UserID] = true
		users = append(users, UserRef{ID: e.UserID, Username: e.Username})
	}
	return users, nil
}

// memAchievementRepo is an in-memory AchievementRepo with the same
// insert-if-absent atomicity as the real table constraint.
type memAchievementRepo struct {
	mu      sync.Mutex
	awarded map[string]Achievement
}

func newMemAchievementRepo() *memAchievementRepo {
	return &memAchievementRepo{awarded: make(map[string]Achievement)}
}

func (r *memAchievementRepo) InsertIfAbsent(ctx context.Context, a Achievement) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%d|%s|%d", a.UserID, a.ActivityKey, a.Milestone)
	if _, exists := r.awarded[key]; exists {
		return false, nil
	}
	r.awarded[key] = a
	return true, nil
}

func (r *memAchievementRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.awarded)
}
