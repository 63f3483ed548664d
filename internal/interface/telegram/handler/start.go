package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
)

// ══════════════════════════════════════════════════════════════════════════════
// START HANDLER
// Handles /start - the welcome message with the command list, generated
// from the catalog so new activities show up without handler changes.
// ══════════════════════════════════════════════════════════════════════════════

// StartHandler handles the /start command.
type StartHandler struct {
	catalog *activity.Catalog
}

// NewStartHandler creates a new StartHandler.
func NewStartHandler(catalog *activity.Catalog) *StartHandler {
	return &StartHandler{catalog: catalog}
}

// CommandList renders one help line per catalog activity.
func CommandList(catalog *activity.Catalog) string {
	var sb strings.Builder
	for _, def := range catalog.All() {
		sb.WriteString(fmt.Sprintf("• /%s <число> - записать %s\n", def.Key, def.GenitiveName))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Handle processes the /start command.
func (h *StartHandler) Handle(ctx context.Context, req Request) (*Response, error) {
	text := fmt.Sprintf(`🏋️ Добро пожаловать в Супер-бот!

Доступные команды:
%s
• /stats - моя статистика
• /total - статистика всех пользователей

🏆 Система достижений активна для всех активностей!

📅 Статистика за неделю считается с понедельника по воскресенье

Пример: /pushup 50`, CommandList(h.catalog))

	return Text(text), nil
}
