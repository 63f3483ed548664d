package handler

import (
	"context"

	"github.com/KapustinMaxim/beerbot/internal/application/query"
	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// TOTAL HANDLER
// Handles /total - the all-users leaderboard ranked by the designated
// activity's lifetime total.
// ══════════════════════════════════════════════════════════════════════════════

// TotalHandler handles the /total command.
type TotalHandler struct {
	leaderboardQuery *query.GetLeaderboardHandler
	presenter        *presenter.StatsPresenter
}

// NewTotalHandler creates a new TotalHandler.
func NewTotalHandler(leaderboardQuery *query.GetLeaderboardHandler, p *presenter.StatsPresenter) *TotalHandler {
	return &TotalHandler{
		leaderboardQuery: leaderboardQuery,
		presenter:        p,
	}
}

// Handle processes the /total command.
func (h *TotalHandler) Handle(ctx context.Context, req Request) (*Response, error) {
	result, err := h.leaderboardQuery.Handle(ctx, query.GetLeaderboardQuery{})
	if err != nil {
		return Text("❌ Произошла ошибка при получении статистики."), err
	}

	return Text(h.presenter.FormatLeaderboard(result)), nil
}
