package controller

import (
	"errors"

	"catalog-chatbot-be/internal/dto"
	"catalog-chatbot-be/internal/pkg/serverutils"
	"catalog-chatbot-be/internal/service"
	"catalog-chatbot-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
)

type ISuggestController interface {
	RegisterRoutes(r fiber.Router)
	Suggest(ctx *fiber.Ctx) error
	Action(ctx *fiber.Ctx) error
}

type suggestController struct {
	suggestionService service.ISuggestionService
	liveHandler       *websocket.LiveHandler
}

func NewSuggestController(suggestionService service.ISuggestionService, liveHandler *websocket.LiveHandler) ISuggestController {
	return &suggestController{
		suggestionService: suggestionService,
		liveHandler:       liveHandler,
	}
}

func (c *suggestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/suggest/v1")
	h.Get("/live", websocket.UpgradeRequired, c.liveHandler.Serve())
	h.Get("/", c.Suggest)
	h.Post("/action", c.Action)
}

func (c *suggestController) Suggest(ctx *fiber.Ctx) error {
	query := ctx.Query("q")

	results, err := c.suggestionService.Suggest(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success suggest", dto.SuggestResponse{Results: results}))
}

func (c *suggestController) Action(ctx *fiber.Ctx) error {
	var req dto.SuggestionActionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	reply, err := c.suggestionService.InvokeAction(ctx.Context(), req.UserId, req.ActionId)
	if err != nil {
		if errors.Is(err, service.ErrUnknownAction) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown action")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success invoke action", dto.ReplyResponse{Reply: reply}))
}
