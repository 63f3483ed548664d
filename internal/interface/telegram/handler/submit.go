package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/KapustinMaxim/beerbot/internal/application/command"
	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUBMIT HANDLER
// Handles per-activity submission commands (/pushup 50, /beer 500, ...).
// One instance serves every catalog activity; the command name selects the
// activity key.
// ══════════════════════════════════════════════════════════════════════════════

// SubmitHandler handles activity submission commands.
type SubmitHandler struct {
	submit    *command.SubmitActivityHandler
	catalog   *activity.Catalog
	presenter *presenter.StatsPresenter
}

// NewSubmitHandler creates a new SubmitHandler.
func NewSubmitHandler(
	submit *command.SubmitActivityHandler,
	catalog *activity.Catalog,
	p *presenter.StatsPresenter,
) *SubmitHandler {
	return &SubmitHandler{
		submit:    submit,
		catalog:   catalog,
		presenter: p,
	}
}

// Handle processes one submission command. Validation failures are
// reported back with actionable text and mutate nothing; a storage
// failure yields a generic notice plus the error for logging, never
// partial success.
func (h *SubmitHandler) Handle(ctx context.Context, req Request) (*Response, error) {
	def, ok := h.catalog.Lookup(req.Command)
	if !ok {
		return Text(fmt.Sprintf("❌ Неизвестная активность: %s", req.Command)), nil
	}

	if req.Args == "" {
		return Text(fmt.Sprintf("❌ Укажите количество %s!\nПример: /%s 50", def.GenitiveName, def.Key)), nil
	}

	result, err := h.submit.Handle(ctx, command.SubmitActivityCommand{
		UserID:      activity.UserID(req.UserID),
		Username:    req.Username,
		ActivityKey: def.Key,
		RawCount:    req.Args,
	})
	if err != nil {
		switch {
		case errors.Is(err, activity.ErrInvalidFormat):
			return Text(fmt.Sprintf("❌ Неверный формат! Введите число.\nПример: /%s 50", def.Key)), nil
		case errors.Is(err, activity.ErrNonPositiveCount):
			return Text("❌ Количество должно быть больше нуля!"), nil
		case errors.Is(err, activity.ErrCountTooLarge):
			return Text(fmt.Sprintf("❌ Слишком большое число! Максимум %d за раз.", h.submit.MaxCount())), nil
		case errors.Is(err, activity.ErrUnknownActivity):
			return Text(fmt.Sprintf("❌ Неизвестная активность: %s", req.Command)), nil
		default:
			return Text("❌ Произошла ошибка при записи данных."), err
		}
	}

	resp := &Response{
		Messages: []string{h.presenter.FormatSubmissionReply(def, result.Count, result.Stats)},
	}
	// One separate message per newly crossed milestone, ascending.
	resp.Messages = append(resp.Messages, result.Messages...)

	return resp, nil
}
