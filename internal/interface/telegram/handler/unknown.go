package handler

import (
	"context"
	"fmt"

	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
)

// ══════════════════════════════════════════════════════════════════════════════
// UNKNOWN COMMAND HANDLER
// Fallback for commands that match neither a catalog activity nor a
// built-in command.
// ══════════════════════════════════════════════════════════════════════════════

// UnknownHandler handles unrecognized commands.
type UnknownHandler struct {
	catalog *activity.Catalog
}

// NewUnknownHandler creates a new UnknownHandler.
func NewUnknownHandler(catalog *activity.Catalog) *UnknownHandler {
	return &UnknownHandler{catalog: catalog}
}

// Handle replies with the available command list.
func (h *UnknownHandler) Handle(ctx context.Context, req Request) (*Response, error) {
	if req.Command == "" {
		return Text("❌ Пустая команда! Используйте /start для просмотра доступных команд."), nil
	}

	text := fmt.Sprintf(`❌ Неизвестная команда: /%s

Доступные команды:
%s
• /stats - моя статистика
• /total - общая статистика
• /start - справка`, req.Command, CommandList(h.catalog))

	return Text(text), nil
}
