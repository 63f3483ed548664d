package activity

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(Definition{
		Key:        "pushup",
		Name:       "Отжимания",
		Milestones: []int64{100, 250, 500, 1000, 2500},
		Messages: map[int64]string{
			100: "Первая сотня!",
			250: "Четверть тысячи!",
		},
	})
	assert.NoError(t, err)
	return c
}

func TestTrackerAwardsAllCrossedMilestones(t *testing.T) {
	repo := newMemAchievementRepo()
	tracker := NewTracker(testCatalog(t), repo)

	// A single big submission jumps several thresholds at once but never
	// touches the ones still ahead.
	crossed, err := tracker.Evaluate(context.Background(), 1, "alice", "pushup", 1200)
	assert.NoError(t, err)
	assert.Equal(t, []int64{100, 250, 500, 1000}, crossed)
	assert.Equal(t, 4, repo.count())
}

func TestTrackerAwardsEachMilestoneOnce(t *testing.T) {
	repo := newMemAchievementRepo()
	tracker := NewTracker(testCatalog(t), repo)
	ctx := context.Background()

	crossed, err := tracker.Evaluate(ctx, 1, "alice", "pushup", 105)
	assert.NoError(t, err)
	assert.Equal(t, []int64{100}, crossed)

	// The total grew but no new threshold was reached.
	crossed, err = tracker.Evaluate(ctx, 1, "alice", "pushup", 155)
	assert.NoError(t, err)
	assert.Empty(t, crossed)

	// Re-reporting the same total awards nothing.
	crossed, err = tracker.Evaluate(ctx, 1, "alice", "pushup", 155)
	assert.NoError(t, err)
	assert.Empty(t, crossed)

	assert.Equal(t, 1, repo.count())
}

func TestTrackerCrossingScenario(t *testing.T) {
	repo := newMemAchievementRepo()
	tracker := NewTracker(testCatalog(t), repo)
	ctx := context.Background()

	// 60, then 60+45=105 crosses 100, then 105+50=155 crosses nothing.
	crossed, err := tracker.Evaluate(ctx, 7, "bob", "pushup", 60)
	assert.NoError(t, err)
	assert.Empty(t, crossed)

	crossed, err = tracker.Evaluate(ctx, 7, "bob", "pushup", 105)
	assert.NoError(t, err)
	assert.Equal(t, []int64{100}, crossed)

	crossed, err = tracker.Evaluate(ctx, 7, "bob", "pushup", 155)
	assert.NoError(t, err)
	assert.Empty(t, crossed)
}

func TestTrackerSeparatesUsersAndActivities(t *testing.T) {
	c, err := NewCatalog(
		Definition{Key: "pushup", Milestones: []int64{100}},
		Definition{Key: "pullup", Milestones: []int64{100}},
	)
	assert.NoError(t, err)

	repo := newMemAchievementRepo()
	tracker := NewTracker(c, repo)
	ctx := context.Background()

	crossed, err := tracker.Evaluate(ctx, 1, "alice", "pushup", 100)
	assert.NoError(t, err)
	assert.Equal(t, []int64{100}, crossed)

	// Same threshold, different activity: its own achievement.
	crossed, err = tracker.Evaluate(ctx, 1, "alice", "pullup", 100)
	assert.NoError(t, err)
	assert.Equal(t, []int64{100}, crossed)

	// Same threshold, different user: its own achievement.
	crossed, err = tracker.Evaluate(ctx, 2, "bob", "pushup", 100)
	assert.NoError(t, err)
	assert.Equal(t, []int64{100}, crossed)

	assert.Equal(t, 3, repo.count())
}

func TestTrackerUnknownActivity(t *testing.T) {
	repo := newMemAchievementRepo()
	tracker := NewTracker(testCatalog(t), repo)

	crossed, err := tracker.Evaluate(context.Background(), 1, "alice", "unknown", 10000)
	assert.NoError(t, err)
	assert.Empty(t, crossed)
	assert.Equal(t, 0, repo.count())
}

func TestTrackerConcurrentCrossingAwardsOnce(t *testing.T) {
	repo := newMemAchievementRepo()
	tracker := NewTracker(testCatalog(t), repo)

	const workers = 16
	results := make([][]int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			crossed, err := tracker.Evaluate(context.Background(), 1, "alice", "pushup", 120)
			assert.NoError(t, err)
			results[i] = crossed
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, crossed := range results {
		if len(crossed) > 0 {
			assert.Equal(t, []int64{100}, crossed)
			winners++
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, repo.count())
}

func TestTrackerMessageFor(t *testing.T) {
	tracker := NewTracker(testCatalog(t), newMemAchievementRepo())

	assert.Equal(t, "Первая сотня!", tracker.MessageFor("pushup", 100))

	// Sparse map entries fall back to a generated default.
	assert.Contains(t, tracker.MessageFor("pushup", 500), "500")

	// Unknown activity gets the generic template.
	assert.Contains(t, tracker.MessageFor("dance", 42), "42")
}
