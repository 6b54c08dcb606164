package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scribehq/scribe-backend/internal/api/handlers"
	"github.com/scribehq/scribe-backend/internal/services"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, svc *services.Services) {
	// Summarization session
	app.Post("/reset", handlers.ResetSession(svc))
	app.Post("/summarize", handlers.SummarizeText(svc))
	app.Post("/analyze_audio", handlers.AnalyzeAudio(svc))

	// Calendar / Drive
	app.Get("/calendar/events", handlers.GetCalendarEvents(svc))
	app.Post("/save_minutes", handlers.SaveMinutes(svc))

	// Attendee presets
	app.Get("/presets", handlers.GetPresets(svc))
	app.Post("/presets", handlers.SavePreset(svc))
	app.Delete("/presets/:name", handlers.DeletePreset(svc))

	// Contacts
	app.Get("/contacts/search", handlers.SearchContacts(svc))

	// Google authorization
	app.Get("/auth/google/url", handlers.GetAuthURL(svc))
	app.Post("/auth/google/token", handlers.SaveAuthCode(svc))

	// Health check
	app.Get("/api/v1/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "scribe-backend",
			"gateway": svc.Gateway.Name(),
		})
	})
}
