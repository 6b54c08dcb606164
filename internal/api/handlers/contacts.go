package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/scribehq/scribe-backend/internal/services"
)

// SearchContacts looks up Google Contacts by name query
func SearchContacts(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "query parameter q is required",
			})
		}

		client, err := svc.Google.Contacts(c.Context())
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		results, err := client.Search(c.Context(), query)
		if err != nil {
			// Contact search is best-effort assistance; report empty rather
			// than failing the attendee entry flow
			logrus.WithError(err).Warn("contact search failed")
			return c.JSON(fiber.Map{
				"results": []string{},
			})
		}

		return c.JSON(fiber.Map{
			"results": results,
		})
	}
}
