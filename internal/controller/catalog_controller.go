package controller

import (
	"catalog-chatbot-be/internal/dto"
	"catalog-chatbot-be/internal/pkg/serverutils"
	"catalog-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
}

type catalogController struct {
	consumerService service.IConsumerService
}

func NewCatalogController(consumerService service.IConsumerService) ICatalogController {
	return &catalogController{
		consumerService: consumerService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("/stats", c.Stats)
}

// Stats serves the consumer-maintained catalog count; no store round trip.
func (c *catalogController) Stats(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get catalog stats", dto.CatalogStatsResponse{
		ProductCount: c.consumerService.ProductCount(),
	}))
}
