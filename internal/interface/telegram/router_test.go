package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/handler"
	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/middleware"
)

type stubHandler struct {
	resp  *handler.Response
	err   error
	panic bool

	calls int
	last  handler.Request
}

func (s *stubHandler) Handle(ctx context.Context, req handler.Request) (*handler.Response, error) {
	s.calls++
	s.last = req
	if s.panic {
		panic("boom")
	}
	return s.resp, s.err
}

func TestRouterDispatchesToRegisteredHandler(t *testing.T) {
	r := NewRouter(nil)
	stats := &stubHandler{resp: handler.Text("stats here")}
	r.Register("stats", stats)

	resp := r.Dispatch(context.Background(), handler.Request{Command: "stats", UserID: 7})

	assert.Equal(t, 1, stats.calls)
	assert.Equal(t, int64(7), stats.last.UserID)
	assert.Equal(t, []string{"stats here"}, resp.Messages)
}

func TestRouterFallsBackToUnknown(t *testing.T) {
	r := NewRouter(nil)
	stats := &stubHandler{resp: handler.Text("stats here")}
	unknown := &stubHandler{resp: handler.Text("who?")}
	r.Register("stats", stats)
	r.RegisterUnknown(unknown)

	resp := r.Dispatch(context.Background(), handler.Request{Command: "dance"})

	assert.Equal(t, 0, stats.calls)
	assert.Equal(t, 1, unknown.calls)
	assert.Equal(t, []string{"who?"}, resp.Messages)
}

func TestRouterWithoutUnknownHandler(t *testing.T) {
	r := NewRouter(nil)

	resp := r.Dispatch(context.Background(), handler.Request{Command: "dance"})
	assert.Nil(t, resp)
}

func TestRouterReturnsResponseOnHandlerError(t *testing.T) {
	r := NewRouter(nil)
	// Handlers return their own user-facing text alongside the error.
	failing := &stubHandler{resp: handler.Text("❌ ошибка"), err: errors.New("db down")}
	r.Register("stats", failing)

	resp := r.Dispatch(context.Background(), handler.Request{Command: "stats"})
	assert.Equal(t, []string{"❌ ошибка"}, resp.Messages)
}

func TestRouterRecoversPanics(t *testing.T) {
	r := NewRouter(nil)
	r.Register("stats", &stubHandler{panic: true})

	resp := r.Dispatch(context.Background(), handler.Request{Command: "stats"})

	assert.NotNil(t, resp)
	assert.Equal(t, []string{middleware.DefaultUserErrorMessage}, resp.Messages)
}
