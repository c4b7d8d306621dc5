package handler

import (
	"studysupport/internal/domain"
	"studysupport/internal/dto"
	"studysupport/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz generation and grading requests
type QuizHandler struct {
	service service.QuizService
}

func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// Generate handles POST /api/sessions/:id/quiz
func (h *QuizHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Request body must be valid JSON")
		}
	}

	resp, err := h.service.GenerateQuiz(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer handles POST /api/sessions/:id/quiz/answers
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be valid JSON")
	}

	resp, err := h.service.SubmitAnswer(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ExportPDF handles GET /api/sessions/:id/quiz/export
func (h *QuizHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.service.ExportPDF(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="quiz.pdf"`)
	return c.Send(data)
}
