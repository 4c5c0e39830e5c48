package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"velour_backend/pkg/storage"
	"velour_backend/pkg/utils/image"
)

const MaxUploadSize = 5 * 1024 * 1024 // 5MB

// UploadImage handles POST /api/admin/upload-image. The file is re-encoded
// through the image processor and stored under images/events/ with a
// randomized, non-overwriting key.
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File must be an image",
		})
	}

	if file.Size > MaxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File size must be less than 5MB",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not read file",
		})
	}
	defer src.Close()

	buf, processedType, err := image.Process(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	objectKey := storage.NewObjectKey(storage.EventImagePrefix, image.Ext(processedType))

	if err := storage.Upload(objectKey, buf.Bytes(), processedType); err != nil {
		log.Printf("Upload error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload image",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"path":    objectKey,
		"url":     storage.PublicURL(objectKey),
	})
}
