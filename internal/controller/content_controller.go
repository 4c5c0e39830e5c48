package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"velour_backend/internal/model"
	"velour_backend/pkg/database"
	"velour_backend/pkg/storage"
)

// GetMenu returns the full menu, categories and items in display order.
func GetMenu(c *fiber.Ctx) error {
	var categories []model.MenuCategory
	if err := database.GetDB().Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("menu_items.sort_order asc")
	}).Order("sort_order asc").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch menu",
		})
	}

	return c.JSON(categories)
}

// GetGallery returns the gallery images in display order, with public URLs.
func GetGallery(c *fiber.Ctx) error {
	var images []model.GalleryImage
	if err := database.GetDB().Order("sort_order asc").Find(&images).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch gallery",
		})
	}

	type galleryResponse struct {
		ID    uint   `json:"id"`
		Path  string `json:"path"`
		URL   string `json:"url"`
		Alt   string `json:"alt"`
		Order int    `json:"order"`
	}

	response := make([]galleryResponse, 0, len(images))
	for _, img := range images {
		response = append(response, galleryResponse{
			ID:    img.ID,
			Path:  img.Path,
			URL:   storage.PublicURL(img.Path),
			Alt:   img.Alt,
			Order: img.Order,
		})
	}

	return c.JSON(response)
}
