package handler

import (
	"studysupport/internal/domain"
	"studysupport/internal/dto"
	"studysupport/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AskHandler handles question answering requests
type AskHandler struct {
	service service.AskService
}

func NewAskHandler(service service.AskService) *AskHandler {
	return &AskHandler{service: service}
}

// Ask handles POST /api/sessions/:id/ask
func (h *AskHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be valid JSON")
	}

	resp, err := h.service.Ask(c.Context(), c.Params("id"), req.Question)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// History handles GET /api/sessions/:id/history
func (h *AskHandler) History(c *fiber.Ctx) error {
	history, err := h.service.History(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"history": history})
}
