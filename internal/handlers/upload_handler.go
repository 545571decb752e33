package handlers

import (
	"errors"

	"fyyur/internal/services"
	"fyyur/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	images services.ImageStore
	logger *logrus.Logger
}

// NewUploadHandler accepts a nil store when uploads are not configured.
func NewUploadHandler(images services.ImageStore, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		images: images,
		logger: logger,
	}
}

// GetPresignedURL returns a presigned PUT URL for a venue or artist image and
// the public URL to submit as its image_link.
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	if h.images == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Image uploads are not configured")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	contentType := c.Query("contentType", "image/jpeg")

	presignedURL, publicURL, err := h.images.GeneratePresignedURL(filename, contentType)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedImage) {
			return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Unsupported image type", fiber.Map{
				"allowed": services.ImageExtensions(),
			})
		}
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
