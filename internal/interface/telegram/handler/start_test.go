package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
)

func helpCatalog(t *testing.T) *activity.Catalog {
	t.Helper()
	c, err := activity.NewCatalog(
		activity.Definition{Key: "pushup", GenitiveName: "анжуманий"},
		activity.Definition{Key: "beer", GenitiveName: "мл. пива"},
	)
	assert.NoError(t, err)
	return c
}

func TestCommandList(t *testing.T) {
	list := CommandList(helpCatalog(t))
	assert.Equal(t, "• /pushup <число> - записать анжуманий\n• /beer <число> - записать мл. пива", list)
}

func TestStartHandler(t *testing.T) {
	h := NewStartHandler(helpCatalog(t))

	resp, err := h.Handle(context.Background(), Request{Command: "start"})
	assert.NoError(t, err)
	assert.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0], "Добро пожаловать")
	assert.Contains(t, resp.Messages[0], "/pushup <число>")
	assert.Contains(t, resp.Messages[0], "/stats - моя статистика")
	assert.Contains(t, resp.Messages[0], "/total - статистика всех пользователей")
}

func TestUnknownHandler(t *testing.T) {
	h := NewUnknownHandler(helpCatalog(t))
	ctx := context.Background()

	resp, err := h.Handle(ctx, Request{Command: "dance"})
	assert.NoError(t, err)
	assert.Contains(t, resp.Messages[0], "❌ Неизвестная команда: /dance")
	assert.Contains(t, resp.Messages[0], "/beer <число>")

	resp, err = h.Handle(ctx, Request{Command: ""})
	assert.NoError(t, err)
	assert.Contains(t, resp.Messages[0], "❌ Пустая команда!")
}
