package websocket

import (
	"context"

	"catalog-chatbot-be/internal/dto"
	"catalog-chatbot-be/internal/pkg/logger"
	"catalog-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// LiveHandler streams suggestion lists over a websocket: every text frame
// from the client is a live query, answered with the suggestion list for it.
// The surface is stateless; no session is consulted or mutated.
type LiveHandler struct {
	suggestions service.ISuggestionService
	logger      logger.ILogger
}

func NewLiveHandler(suggestions service.ISuggestionService, log logger.ILogger) *LiveHandler {
	return &LiveHandler{
		suggestions: suggestions,
		logger:      log,
	}
}

// UpgradeRequired gates the route to websocket upgrade requests.
func UpgradeRequired(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *LiveHandler) Serve() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		for {
			_, msg, err := c.ReadMessage()
			if err != nil {
				return
			}

			items, err := h.suggestions.Suggest(context.Background(), string(msg))
			if err != nil {
				h.logger.Warn("LiveSuggest", "Suggest failed for live query", map[string]interface{}{
					"query": string(msg),
					"error": err.Error(),
				})
				continue
			}

			if err := c.WriteJSON(dto.SuggestResponse{Results: items}); err != nil {
				return
			}
		}
	})
}
