package handler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/KapustinMaxim/beerbot/internal/application/command"
	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/presenter"
)

// memEventStore is an in-memory activity.EventStore.
type memEventStore struct {
	mu     sync.Mutex
	events []activity.Event
}

func (s *memEventStore) Append(ctx context.Context, activityKey string, userID activity.UserID, username string, count int64) (activity.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := activity.Event{
		ID:          uuid.New(),
		ActivityKey: activityKey,
		UserID:      userID,
		Username:    username,
		Count:       count,
		CreatedAt:   time.Now(),
	}
	s.events = append(s.events, e)
	return e, nil
}

func (s *memEventStore) SumInRange(ctx context.Context, activityKey string, userID activity.UserID, from, to time.Time) (int64, error) {
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

func (s *memEventStore) DistinctUsers(ctx context.Context, activityKeys []string) ([]activity.UserRef, error) {
	return nil, nil
}

// memAchievementRepo is an in-memory activity.AchievementRepo.
type memAchievementRepo struct {
	mu      sync.Mutex
	awarded map[string]bool
}

func (r *memAchievementRepo) InsertIfAbsent(ctx context.Context, a activity.Achievement) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.awarded == nil {
		r.awarded = make(map[string]bool)
	}
	key := fmt.Sprintf("%d|%s|%d", a.UserID, a.ActivityKey, a.Milestone)
	if r.awarded[key] {
		return false, nil
	}
	r.awarded[key] = true
	return true, nil
}

func newSubmitFixture(t *testing.T) *SubmitHandler {
	t.Helper()
	catalog, err := activity.NewCatalog(activity.Definition{
		Key:          "pushup",
		Name:         "Отжимания",
		GenitiveName: "анжуманий",
		Emoji:        "🔥",
		Milestones:   []int64{100},
		Messages:     map[int64]string{100: "Первая сотня!"},
	})
	assert.NoError(t, err)

	store := &memEventStore{}
	aggregator := activity.NewAggregator(catalog, store, time.UTC)
	tracker := activity.NewTracker(catalog, &memAchievementRepo{})
	submit := command.NewSubmitActivityHandler(catalog, store, aggregator, tracker, 10000)
	return NewSubmitHandler(submit, catalog, presenter.NewStatsPresenter(catalog))
}

func TestSubmitHandlerSuccess(t *testing.T) {
	h := newSubmitFixture(t)

	resp, err := h.Handle(context.Background(), Request{
		UserID: 1, Username: "alice", Command: "pushup", Args: "50",
	})
	assert.NoError(t, err)
	assert.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0], "✅ Записано 50 анжуманий!")
	assert.Contains(t, resp.Messages[0], "🔥 Отжимания: 50 | 50")
}

func TestSubmitHandlerAchievementMessages(t *testing.T) {
	h := newSubmitFixture(t)
	ctx := context.Background()

	resp, err := h.Handle(ctx, Request{UserID: 1, Command: "pushup", Args: "120"})
	assert.NoError(t, err)
	assert.Len(t, resp.Messages, 2)
	assert.Contains(t, resp.Messages[0], "✅ Записано 120")
	assert.Equal(t, "Первая сотня!", resp.Messages[1])

	// The same milestone is never announced again.
	resp, err = h.Handle(ctx, Request{UserID: 1, Command: "pushup", Args: "10"})
	assert.NoError(t, err)
	assert.Len(t, resp.Messages, 1)
}

func TestSubmitHandlerMissingArgs(t *testing.T) {
	h := newSubmitFixture(t)

	resp, err := h.Handle(context.Background(), Request{UserID: 1, Command: "pushup"})
	assert.NoError(t, err)
	assert.Contains(t, resp.Messages[0], "❌ Укажите количество анжуманий!")
	assert.Contains(t, resp.Messages[0], "/pushup 50")
}

func TestSubmitHandlerInvalidInput(t *testing.T) {
	h := newSubmitFixture(t)
	ctx := context.Background()

	resp, err := h.Handle(ctx, Request{UserID: 1, Command: "pushup", Args: "abc"})
	assert.NoError(t, err)
	assert.Contains(t, resp.Messages[0], "❌ Неверный формат!")

	resp, err = h.Handle(ctx, Request{UserID: 1, Command: "pushup", Args: "-3"})
	assert.NoError(t, err)
	assert.Contains(t, resp.Messages[0], "❌ Количество должно быть больше нуля!")

	resp, err = h.Handle(ctx, Request{UserID: 1, Command: "pushup", Args: "99999"})
	assert.NoError(t, err)
	assert.Contains(t, resp.Messages[0], "Максимум 10000 за раз")
}

func TestSubmitHandlerUnknownCommand(t *testing.T) {
	h := newSubmitFixture(t)

	resp, err := h.Handle(context.Background(), Request{UserID: 1, Command: "dance", Args: "5"})
	assert.NoError(t, err)
	assert.Contains(t, resp.Messages[0], "❌ Неизвестная активность: dance")
}
