package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scribehq/scribe-backend/internal/services"
)

// GetPresets returns all attendee presets
func GetPresets(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		presets, err := svc.Presets.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"presets": presets,
		})
	}
}

// SavePreset creates or replaces an attendee preset
func SavePreset(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Name         string   `json:"name"`
			Participants []string `json:"participants"`
		}

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
		if req.Name == "" || len(req.Participants) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid data",
			})
		}

		if err := svc.Presets.Upsert(req.Name, req.Participants); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		presets, err := svc.Presets.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"presets": presets,
		})
	}
}

// DeletePreset removes an attendee preset
func DeletePreset(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		if err := svc.Presets.Delete(name); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"status": "success",
		})
	}
}
