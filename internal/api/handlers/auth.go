package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scribehq/scribe-backend/internal/services"
)

// GetAuthURL returns the Google OAuth consent URL for the operator to visit
func GetAuthURL(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := svc.Google.Auth().AuthURL()
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"url":        url,
			"authorized": svc.Google.Auth().HasToken(),
		})
	}
}

// SaveAuthCode exchanges the pasted authorization code for a cached token
func SaveAuthCode(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Code string `json:"code"`
		}

		if err := c.BodyParser(&req); err != nil || req.Code == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "authorization code is required",
			})
		}

		if err := svc.Google.Auth().SaveToken(c.Context(), req.Code); err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"status": "success",
		})
	}
}
