package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/KapustinMaxim/beerbot/pkg/timeutil"
)

// Aggregator computes today/week/lifetime totals from the event store.
// It performs no caching: every call reflects the store's current state,
// which gives read-after-write consistency within a single process.
type Aggregator struct {
	catalog *Catalog
	store   EventStore
	loc     *time.Location
	now     func() time.Time
}

// NewAggregator creates an Aggregator. Calendar windows (today, Monday-
// through-Sunday week) are computed in loc.
func NewAggregator(catalog *Catalog, store EventStore, loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{
		catalog: catalog,
		store:   store,
		loc:     loc,
		now:     time.Now,
	}
}

// ActivityStats returns the today/week/total sums for one user and one
// activity. The three reads are issued without a shared snapshot; a
// concurrent append showing up in one sub-total but not another is an
// accepted benign race.
func (a *Aggregator) ActivityStats(ctx context.Context, activityKey string, userID UserID) (Stats, error) {
	now := a.now()

	dayStart, dayEnd := timeutil.DayRange(now, a.loc)
	today, err := a.store.SumInRange(ctx, activityKey, userID, dayStart, dayEnd)
	if err != nil {
		return Stats{}, fmt.Errorf("aggregate today for %s: %w", activityKey, err)
	}

	weekStart, weekEnd := timeutil.WeekRange(now, a.loc)
	week, err := a.store.SumInRange(ctx, activityKey, userID, weekStart, weekEnd)
	if err != nil {
		return Stats{}, fmt.Errorf("aggregate week for %s: %w", activityKey, err)
	}

	total, err := a.store.SumInRange(ctx, activityKey, userID, time.Time{}, time.Time{})
	if err != nil {
		return Stats{}, fmt.Errorf("aggregate total for %s: %w", activityKey, err)
	}

	return Stats{Today: today, Week: week, Total: total}, nil
}

// UserStats returns the stats for every catalog activity, one entry per
// registered definition.
func (a *Aggregator) UserStats(ctx context.Context, userID UserID) (UserStats, error) {
	stats := make(UserStats, len(a.catalog.defs))
	for _, def := range a.catalog.All() {
		s, err := a.ActivityStats(ctx, def.Key, userID)
		if err != nil {
			return nil, err
		}
		stats[def.Key] = s
	}
	return stats, nil
}

// AllUserStats returns full stats for every user who has ever submitted
// any catalog activity. No ordering is guaranteed; ranking belongs to the
// caller.
func (a *Aggregator) AllUserStats(ctx context.Context) ([]UserStatsEntry, error) {
	users, err := a.store.DistinctUsers(ctx, a.catalog.Keys())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	entries := make([]UserStatsEntry, 0, len(users))
	for _, user := range users {
		stats, err := a.UserStats(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, UserStatsEntry{User: user, Stats: stats})
	}
	return entries, nil
}
