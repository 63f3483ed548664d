package handler

import (
	"context"

	"github.com/KapustinMaxim/beerbot/internal/application/query"
	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// STATS HANDLER
// Handles /stats - the submitter's own today/week/lifetime totals across
// every catalog activity.
// ══════════════════════════════════════════════════════════════════════════════

// StatsHandler handles the /stats command.
type StatsHandler struct {
	statsQuery *query.GetUserStatsHandler
	presenter  *presenter.StatsPresenter
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsQuery *query.GetUserStatsHandler, p *presenter.StatsPresenter) *StatsHandler {
	return &StatsHandler{
		statsQuery: statsQuery,
		presenter:  p,
	}
}

// Handle processes the /stats command.
func (h *StatsHandler) Handle(ctx context.Context, req Request) (*Response, error) {
	result, err := h.statsQuery.Handle(ctx, query.GetUserStatsQuery{
		UserID: activity.UserID(req.UserID),
	})
	if err != nil {
		return Text("❌ Произошла ошибка при получении статистики."), err
	}

	return Text(h.presenter.FormatUserStats(result.Stats, "📊 Ваша статистика")), nil
}
