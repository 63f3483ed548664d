// Package middleware contains Telegram bot middlewares for request
// processing.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/handler"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECOVERY MIDDLEWARE
// Catches panics in handlers so one bad update never kills the polling
// loop. Users get a friendly notice, the log gets the stack trace.
// ══════════════════════════════════════════════════════════════════════════════

// DefaultUserErrorMessage is sent to users when a panic is recovered.
const DefaultUserErrorMessage = "😔 Что-то пошло не так.\n" +
	"Попробуй ещё раз через несколько минут."

// HandlerFunc is the handler signature wrapped by middlewares.
type HandlerFunc func(ctx context.Context, req handler.Request) (*handler.Response, error)

// Recovery converts handler panics into error responses.
type Recovery struct {
	logger      *slog.Logger
	userMessage string
}

// NewRecovery creates a Recovery middleware.
func NewRecovery(logger *slog.Logger) *Recovery {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recovery{
		logger:      logger,
		userMessage: DefaultUserErrorMessage,
	}
}

// Wrap returns fn with panic recovery applied.
func (r *Recovery) Wrap(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, req handler.Request) (resp *handler.Response, err error) {
		defer func() {
			if p := recover(); p != nil {
				r.logger.Error("panic in handler",
					"command", req.Command,
					"user_id", req.UserID,
					"panic", fmt.Sprint(p),
					"stack", string(debug.Stack()),
				)
				resp = handler.Text(r.userMessage)
				err = nil
			}
		}()
		return fn(ctx, req)
	}
}
