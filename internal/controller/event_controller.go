package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"velour_backend/internal/model"
	"velour_backend/pkg/database"
)

type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Image       string `json:"image"` // storage path, already uploaded
	Category    string `json:"category"`
}

// ListEvents returns all events, newest first.
func ListEvents(c *fiber.Ctx) error {
	var events []model.Event
	if err := database.GetDB().Order("created_at desc").Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch events",
		})
	}

	return c.JSON(events)
}

func CreateEvent(c *fiber.Ctx) error {
	input := new(EventInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	// The image was uploaded in a separate request. There is no transaction
	// between the two: if this insert fails the blob stays behind.
	event := model.Event{
		Title:       input.Title,
		Date:        input.Date,
		Time:        input.Time,
		Description: input.Description,
		Image:       input.Image,
		Category:    input.Category,
	}

	if err := database.GetDB().Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create event",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func UpdateEvent(c *fiber.Ctx) error {
	var event model.Event
	if err := database.GetDB().First(&event, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch event",
		})
	}

	input := new(EventInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	event.Title = input.Title
	event.Date = input.Date
	event.Time = input.Time
	event.Description = input.Description
	event.Image = input.Image
	event.Category = input.Category

	if err := database.GetDB().Save(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update event",
		})
	}

	return c.JSON(event)
}

func DeleteEvent(c *fiber.Ctx) error {
	var event model.Event
	if err := database.GetDB().First(&event, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch event",
		})
	}

	if err := database.GetDB().Delete(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete event",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
