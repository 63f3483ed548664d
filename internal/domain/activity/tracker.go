package activity

import (
	"context"
	"fmt"
	"time"
)

// Tracker detects newly crossed milestones and records each exactly once
// per user lifetime. Deduplication relies entirely on the repository's
// atomic insert-if-absent, so concurrent submissions crossing the same
// threshold award it exactly once regardless of interleaving.
type Tracker struct {
	catalog *Catalog
	repo    AchievementRepo
	now     func() time.Time
}

// NewTracker creates a Tracker backed by the given catalog and repository.
func NewTracker(catalog *Catalog, repo AchievementRepo) *Tracker {
	return &Tracker{
		catalog: catalog,
		repo:    repo,
		now:     time.Now,
	}
}

// Evaluate walks the activity's milestones in ascending order and records
// every threshold the new lifetime total has reached that was not recorded
// before. Returns the newly crossed milestones in ascending order; an
// already-awarded milestone is skipped silently. A single submission that
// jumps several thresholds at once awards all of them in one call.
//
// An unknown activity key yields no milestones and no error: achievements
// are best-effort on top of the durable event log.
func (t *Tracker) Evaluate(ctx context.Context, userID UserID, username, activityKey string, newTotal int64) ([]int64, error) {
	def, ok := t.catalog.Lookup(activityKey)
	if !ok {
		return nil, nil
	}

	var crossed []int64
	for _, milestone := range def.Milestones {
		if newTotal < milestone {
			// Milestones are ascending, nothing further can be crossed.
			break
		}
		inserted, err := t.repo.InsertIfAbsent(ctx, Achievement{
			UserID:      userID,
			Username:    username,
			ActivityKey: activityKey,
			Milestone:   milestone,
			AwardedAt:   t.now(),
		})
		if err != nil {
			return nil, fmt.Errorf("evaluate %s milestone %d: %w", activityKey, milestone, err)
		}
		if inserted {
			crossed = append(crossed, milestone)
		}
	}
	return crossed, nil
}

// MessageFor returns the configured achievement message for a milestone,
// a generated default when the catalog entry is sparse, and a generic
// template for an unknown activity key. It never fails.
func (t *Tracker) MessageFor(activityKey string, milestone int64) string {
	def, ok := t.catalog.Lookup(activityKey)
	if !ok {
		return fmt.Sprintf("🎉 Достижение: %d %s!", milestone, activityKey)
	}
	if msg, ok := def.Messages[milestone]; ok {
		return msg
	}
	return fmt.Sprintf("🎉 Достижение разблокировано: %d %s!", milestone, activityKey)
}
