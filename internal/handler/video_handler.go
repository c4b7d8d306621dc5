package handler

import (
	"studysupport/internal/service"

	"github.com/gofiber/fiber/v2"
)

// VideoHandler handles video recommendation requests
type VideoHandler struct {
	service service.VideoService
}

func NewVideoHandler(service service.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

// Recommend handles GET /api/sessions/:id/videos
func (h *VideoHandler) Recommend(c *fiber.Ctx) error {
	resp, err := h.service.Recommend(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
