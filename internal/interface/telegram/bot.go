package telegram

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/KapustinMaxim/beerbot/internal/infrastructure/external/telegram"
	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/handler"
	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// BOT
// Long-polling lifecycle: fetch updates, parse commands, dispatch, reply.
// Each update is handled in its own goroutine, so submissions from
// different users proceed concurrently; correctness under concurrency is
// the storage layer's job.
// ══════════════════════════════════════════════════════════════════════════════

// BotConfig contains configuration for the bot.
type BotConfig struct {
	// MaxMessageLength is the reply segmentation limit.
	MaxMessageLength int

	// PollLimit is the maximum updates fetched per poll.
	PollLimit int

	// Logger for structured logging.
	Logger *slog.Logger
}

// DefaultBotConfig returns sensible defaults.
func DefaultBotConfig() BotConfig {
	return BotConfig{
		MaxMessageLength: presenter.DefaultMaxMessageLength,
		PollLimit:        100,
	}
}

// Bot runs the Telegram update loop.
type Bot struct {
	client *telegram.Client
	router *Router
	config BotConfig
	logger *slog.Logger

	offset int64
	wg     sync.WaitGroup
}

// NewBot creates a new Bot.
func NewBot(client *telegram.Client, router *Router, config BotConfig) *Bot {
	if config.MaxMessageLength <= 0 {
		config.MaxMessageLength = presenter.DefaultMaxMessageLength
	}
	if config.PollLimit <= 0 {
		config.PollLimit = 100
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Bot{
		client: client,
		router: router,
		config: config,
		logger: config.Logger,
	}
}

// Run polls for updates until the context is cancelled, then waits for
// in-flight handlers to finish.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("bot started, polling for updates")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("bot stopping, waiting for in-flight updates")
			b.wg.Wait()
			return ctx.Err()
		default:
		}

		updates, err := b.client.GetUpdates(ctx, b.offset, b.config.PollLimit)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				b.wg.Wait()
				return nil
			}
			b.logger.Error("failed to get updates", "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(5 * time.Second):
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= b.offset {
				b.offset = update.UpdateID + 1
			}

			b.wg.Add(1)
			go func(u telegram.Update) {
				defer b.wg.Done()
				b.handleUpdate(ctx, u)
			}(update)
		}
	}
}

// handleUpdate processes a single update end to end.
func (b *Bot) handleUpdate(ctx context.Context, update telegram.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return
	}
	if !telegram.IsCommand(msg) {
		// Plain text is ignored; the bot only speaks in commands.
		return
	}

	req := handler.Request{
		UserID:   msg.From.ID,
		Username: msg.From.Username,
		ChatID:   msg.Chat.ID,
		Command:  telegram.ExtractCommand(msg),
		Args:     telegram.ExtractCommandArgs(msg),
	}

	resp := b.router.Dispatch(ctx, req)
	if resp == nil {
		return
	}

	for _, message := range resp.Messages {
		for _, chunk := range presenter.SplitMessage(message, b.config.MaxMessageLength) {
			if _, err := b.client.SendText(ctx, req.ChatID, chunk); err != nil {
				b.logger.Error("failed to send reply",
					"chat_id", req.ChatID,
					"command", req.Command,
					"error", err,
				)
				return
			}
		}
	}
}
