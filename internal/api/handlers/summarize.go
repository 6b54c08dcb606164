package handlers

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/scribehq/scribe-backend/internal/services"
	"github.com/scribehq/scribe-backend/internal/summarizer"
)

// ResetSession clears the accumulated summary context
func ResetSession(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc.Session.Reset()
		return c.JSON(fiber.Map{
			"status": "Summary context reset",
		})
	}
}

// SummarizeText merges a transcript segment into the running minute
func SummarizeText(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Text         string   `json:"text"`
			MeetingTitle string   `json:"meeting_title"`
			UserNotes    []string `json:"user_notes"`
		}

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		result, err := svc.Session.SummarizeText(c.Context(), req.Text, req.MeetingTitle, req.UserNotes)
		if err != nil {
			// An empty segment is a no-op, not a failure: echo current state
			if errors.Is(err, summarizer.ErrEmptyInput) {
				return c.JSON(result)
			}
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(result)
	}
}

// AnalyzeAudio summarizes an uploaded audio chunk into the running minute
func AnalyzeAudio(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Audio file is required",
			})
		}

		meetingTitle := c.FormValue("meeting_title")

		// user_notes arrives as a JSON-encoded string array
		var notes []string
		if raw := c.FormValue("user_notes"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &notes); err != nil {
				logrus.WithError(err).Warn("failed to parse user_notes, ignoring")
				notes = nil
			}
		}

		tempPath := filepath.Join(os.TempDir(), "scribe_"+uuid.New().String()+filepath.Ext(fileHeader.Filename))
		if err := c.SaveFile(fileHeader, tempPath); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to store uploaded audio",
			})
		}
		defer os.Remove(tempPath)

		logrus.WithFields(logrus.Fields{
			"file":  fileHeader.Filename,
			"title": meetingTitle,
			"notes": len(notes),
		}).Info("processing audio chunk")

		result, err := svc.Session.SummarizeAudio(c.Context(), tempPath, meetingTitle, notes)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(result)
	}
}
