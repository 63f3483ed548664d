package query

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET LEADERBOARD QUERY
// Returns full stats for every user who has ever submitted an activity,
// ranked descending by the designated ranking activity's lifetime total.
// ══════════════════════════════════════════════════════════════════════════════

// LeaderboardCache is the narrow caching interface used by the leaderboard
// query. Implemented by the redis infrastructure; a nil cache disables
// caching entirely.
type LeaderboardCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// cacheKey is where the assembled (unranked) user stats are cached.
const cacheKey = "leaderboard:all"

// GetLeaderboardQuery contains the query parameters.
type GetLeaderboardQuery struct {
	// SkipCache forces a rebuild from the event store.
	SkipCache bool
}

// LeaderboardEntryDTO is one ranked row of the leaderboard.
type LeaderboardEntryDTO struct {
	// Rank is the position in the ranking, starting at 1.
	Rank int

	// UserID is the bot-assigned numeric user identifier.
	UserID activity.UserID

	// DisplayName is the username, or a synthesized ID label.
	DisplayName string

	// Stats holds the per-activity aggregates for this user.
	Stats activity.UserStats
}

// GetLeaderboardResult contains the ranked leaderboard.
type GetLeaderboardResult struct {
	Entries []LeaderboardEntryDTO

	// RankedBy is the activity key whose lifetime total orders the board.
	RankedBy string
}

// GetLeaderboardHandler handles the GetLeaderboardQuery.
type GetLeaderboardHandler struct {
	aggregator *activity.Aggregator
	cache      LeaderboardCache
	cacheTTL   time.Duration

	// rankKey designates the activity whose lifetime total orders the
	// leaderboard.
	rankKey string

	logger *slog.Logger
}

// NewGetLeaderboardHandler creates a new GetLeaderboardHandler. cache may
// be nil to disable caching.
func NewGetLeaderboardHandler(
	aggregator *activity.Aggregator,
	cache LeaderboardCache,
	cacheTTL time.Duration,
	rankKey string,
	logger *slog.Logger,
) *GetLeaderboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GetLeaderboardHandler{
		aggregator: aggregator,
		cache:      cache,
		cacheTTL:   cacheTTL,
		rankKey:    rankKey,
		logger:     logger,
	}
}

// Handle executes the query. The unranked stats are served from cache
// when warm; any cache failure falls back to a rebuild from the store.
func (h *GetLeaderboardHandler) Handle(ctx context.Context, q GetLeaderboardQuery) (*GetLeaderboardResult, error) {
	entries, err := h.loadEntries(ctx, q.SkipCache)
	if err != nil {
		return nil, fmt.Errorf("get_leaderboard: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ti := entries[i].Stats[h.rankKey].Total
		tj := entries[j].Stats[h.rankKey].Total
		if ti != tj {
			return ti > tj
		}
		return entries[i].User.Label() < entries[j].User.Label()
	})

	ranked := make([]LeaderboardEntryDTO, len(entries))
	for i, e := range entries {
		ranked[i] = LeaderboardEntryDTO{
			Rank:        i + 1,
			UserID:      e.User.ID,
			DisplayName: e.User.Label(),
			Stats:       e.Stats,
		}
	}

	return &GetLeaderboardResult{Entries: ranked, RankedBy: h.rankKey}, nil
}

func (h *GetLeaderboardHandler) loadEntries(ctx context.Context, skipCache bool) ([]activity.UserStatsEntry, error) {
	if h.cache != nil && !skipCache {
		var cached []activity.UserStatsEntry
		if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := h.aggregator.AllUserStats(ctx)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, cacheKey, entries, h.cacheTTL); err != nil {
			// The cache is an optimization; a write failure never fails
			// the query.
			h.logger.Warn("leaderboard cache write failed", "error", err)
		}
	}

	return entries, nil
}
