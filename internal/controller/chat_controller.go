package controller

import (
	"catalog-chatbot-be/internal/dto"
	"catalog-chatbot-be/internal/pkg/serverutils"
	"catalog-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Command(ctx *fiber.Ctx) error
	Message(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type chatController struct {
	conversationService service.IConversationService
}

func NewChatController(conversationService service.IConversationService) IChatController {
	return &chatController{
		conversationService: conversationService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("/command", c.Command)
	h.Post("/message", c.Message)
	h.Post("/reset", c.Reset)
}

func (c *chatController) Command(ctx *fiber.Ctx) error {
	var req dto.CommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	reply, err := c.conversationService.HandleCommand(ctx.Context(), req.UserId, req.Command)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success handle command", dto.ReplyResponse{Reply: reply}))
}

func (c *chatController) Message(ctx *fiber.Ctx) error {
	var req dto.MessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	reply, err := c.conversationService.HandleMessage(ctx.Context(), req.UserId, req.Text)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success handle message", dto.ReplyResponse{Reply: reply}))
}

func (c *chatController) Reset(ctx *fiber.Ctx) error {
	var req dto.ResetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.conversationService.Reset(ctx.Context(), req.UserId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset conversation", nil))
}
