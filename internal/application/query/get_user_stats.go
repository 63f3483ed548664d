// Package query contains read operations following CQRS pattern.
// Queries never modify state - they only read and return data.
package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET USER STATS QUERY
// Returns today/week/lifetime totals for one user across every catalog
// activity.
// ══════════════════════════════════════════════════════════════════════════════

// GetUserStatsQuery contains the query parameters.
type GetUserStatsQuery struct {
	// UserID is the user whose stats are requested.
	UserID activity.UserID
}

// Validate checks the query parameters.
func (q GetUserStatsQuery) Validate() error {
	if !q.UserID.IsValid() {
		return errors.New("get_user_stats: user_id is required")
	}
	return nil
}

// GetUserStatsResult contains the aggregated stats.
type GetUserStatsResult struct {
	UserID activity.UserID
	Stats  activity.UserStats
}

// GetUserStatsHandler handles the GetUserStatsQuery.
type GetUserStatsHandler struct {
	aggregator *activity.Aggregator
}

// NewGetUserStatsHandler creates a new GetUserStatsHandler.
func NewGetUserStatsHandler(aggregator *activity.Aggregator) *GetUserStatsHandler {
	return &GetUserStatsHandler{aggregator: aggregator}
}

// Handle executes the query.
func (h *GetUserStatsHandler) Handle(ctx context.Context, q GetUserStatsQuery) (*GetUserStatsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	stats, err := h.aggregator.UserStats(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("get_user_stats: %w", err)
	}

	return &GetUserStatsResult{UserID: q.UserID, Stats: stats}, nil
}
