package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/scribehq/scribe-backend/internal/services"
)

// GetCalendarEvents returns upcoming events across all visible calendars
func GetCalendarEvents(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		maxResults := c.QueryInt("max_results", 10)

		client, err := svc.Google.Calendar(c.Context())
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		events, err := client.ListUpcomingEvents(c.Context(), int64(maxResults))
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": fmt.Sprintf("이벤트 조회 실패: %v", err),
			})
		}

		return c.JSON(fiber.Map{
			"events": events,
		})
	}
}

// SaveMinutes uploads the minute to Drive and optionally attaches it to a
// calendar event. An attach failure degrades to a warning, not an error.
func SaveMinutes(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Text         string `json:"text"`
			MeetingTitle string `json:"meeting_title"`
			EventID      string `json:"event_id"`
		}

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
		if req.Text == "" || req.MeetingTitle == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "text and meeting_title are required",
			})
		}

		// Timestamped filename so repeated saves don't collide
		now := time.Now()
		filename := fmt.Sprintf("[회의록] %s %s (%s)",
			now.Format("2006-01-02"), req.MeetingTitle, now.Format("15-04"))

		driveClient, err := svc.Google.Drive(c.Context())
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		file, err := driveClient.UploadDocument(c.Context(), filename, req.Text)
		if err != nil {
			logrus.WithError(err).Error("drive upload failed")
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Google Drive 업로드 실패",
			})
		}

		message := fmt.Sprintf("회의록이 저장되었습니다. (Drive)\n링크: %s", file.WebViewLink)

		if req.EventID != "" {
			calClient, err := svc.Google.Calendar(c.Context())
			if err == nil {
				_, err = calClient.AttachFile(c.Context(), req.EventID, file.ID, file.WebViewLink, filename)
			}
			if err != nil {
				logrus.WithError(err).Warn("calendar attach failed")
				message += fmt.Sprintf("\n\n캘린더 첨부 실패: %v", err)
			} else {
				message += "\n\n캘린더 일정에도 첨부되었습니다! 📅"
			}
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"message": message,
			"link":    file.WebViewLink,
		})
	}
}
