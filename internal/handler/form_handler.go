package handler

import (
	"studysupport/internal/domain"
	"studysupport/internal/dto"
	"studysupport/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FormHandler handles remote form export and grading requests
type FormHandler struct {
	service service.FormService
}

func NewFormHandler(service service.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// Create handles POST /api/sessions/:id/form
func (h *FormHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFormRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Request body must be valid JSON")
		}
	}

	resp, err := h.service.CreateForm(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Responses handles GET /api/forms/:formID/responses
func (h *FormHandler) Responses(c *fiber.Ctx) error {
	resp, err := h.service.GradedResponses(c.Context(), c.Params("formID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ResponsesCSV handles GET /api/forms/:formID/responses/csv
func (h *FormHandler) ResponsesCSV(c *fiber.Ctx) error {
	data, err := h.service.ResponsesCSV(c.Context(), c.Params("formID"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="responses.csv"`)
	return c.Send(data)
}
