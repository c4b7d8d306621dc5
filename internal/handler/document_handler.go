package handler

import (
	"io"

	"studysupport/internal/domain"
	"studysupport/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles document upload requests
type DocumentHandler struct {
	service service.DocumentService
}

func NewDocumentHandler(service service.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Upload handles POST /api/documents. The uploaded file arrives as the
// multipart field "file".
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("Multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInvalidInputError("Uploaded file could not be opened")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	resp, err := h.service.Upload(c.Context(), fileHeader.Filename, data)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
