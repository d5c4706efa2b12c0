package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campaign-service/internal/auth"
	"github.com/spec-kit/campaign-service/internal/service"
)

// ImagesHandler exposes image upload.
type ImagesHandler struct {
	images *service.ImageService
}

// NewImagesHandler constructs handler.
func NewImagesHandler(imageService *service.ImageService) *ImagesHandler {
	return &ImagesHandler{images: imageService}
}

// Upload handles POST /api/images as multipart/form-data with a "file" field.
func (h *ImagesHandler) Upload(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "file field required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "unreadable file")
	}
	defer file.Close()

	image, err := h.images.Upload(c.Context(), userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"id":  image.ID,
		"url": image.URL,
	}})
}
