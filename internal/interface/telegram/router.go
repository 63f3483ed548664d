// Package telegram implements the Telegram Bot interface for the
// activity engine: routing incoming commands to handlers and running the
// long-polling lifecycle.
package telegram

import (
	"context"
	"log/slog"

	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/handler"
	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/middleware"
)

// Handler is the interface command handlers implement to be registered
// with the router.
type Handler interface {
	Handle(ctx context.Context, req handler.Request) (*handler.Response, error)
}

// Router dispatches parsed commands to registered handlers.
type Router struct {
	handlers map[string]middleware.HandlerFunc
	unknown  middleware.HandlerFunc
	recovery *middleware.Recovery
	logger   *slog.Logger
}

// NewRouter creates a new Router.
func NewRouter(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		handlers: make(map[string]middleware.HandlerFunc),
		recovery: middleware.NewRecovery(logger),
		logger:   logger,
	}
}

// Register binds a command name (without the slash) to a handler.
func (r *Router) Register(command string, h Handler) {
	r.handlers[command] = r.recovery.Wrap(h.Handle)
}

// RegisterUnknown sets the fallback handler for unrecognized commands.
func (r *Router) RegisterUnknown(h Handler) {
	r.unknown = r.recovery.Wrap(h.Handle)
}

// Dispatch routes one command to its handler and returns the response to
// send. Handler errors are logged here; the returned response already
// carries the user-facing text for them.
func (r *Router) Dispatch(ctx context.Context, req handler.Request) *handler.Response {
	fn, ok := r.handlers[req.Command]
	if !ok {
		fn = r.unknown
	}
	if fn == nil {
		return nil
	}

	resp, err := fn(ctx, req)
	if err != nil {
		r.logger.Error("command failed",
			"command", req.Command,
			"user_id", req.UserID,
			"error", err,
		)
	}
	return resp
}
