package calendar

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const minuteDocMimeType = "application/vnd.google-apps.document"

// Client wraps the Google Calendar API service
type Client struct {
	service *calendar.Service
}

// NewClient creates a Calendar client on an authenticated HTTP client
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	service, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	return &Client{service: service}, nil
}

// ListUpcomingEvents fetches upcoming events from every calendar visible to
// the account, merged and sorted by start time. Calendars that fail to list
// (subscription feeds often do) are skipped, not fatal.
func (c *Client) ListUpcomingEvents(ctx context.Context, maxResults int64) ([]Event, error) {
	calendarList, err := c.service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var all []Event

	for _, entry := range calendarList.Items {
		events, err := c.service.Events.List(entry.Id).
			Context(ctx).
			TimeMin(now).
			MaxResults(maxResults).
			SingleEvents(true).
			OrderBy("startTime").
			Do()
		if err != nil {
			logrus.WithError(err).WithField("calendar", entry.Summary).Warn("skipping calendar")
			continue
		}

		for _, item := range events.Items {
			all = append(all, convertEvent(item, entry.Summary))
		}
	}

	sortEventsByStart(all)
	if int64(len(all)) > maxResults {
		all = all[:maxResults]
	}
	return all, nil
}

// AttachFile appends a Drive file to an event on the primary calendar,
// preserving existing attachments. Returns the event's htmlLink.
func (c *Client) AttachFile(ctx context.Context, eventID, fileID, webLink, title string) (string, error) {
	event, err := c.service.Events.Get("primary", eventID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to fetch event: %w", err)
	}

	attachments := append(event.Attachments, &calendar.EventAttachment{
		FileUrl:  webLink,
		FileId:   fileID,
		MimeType: minuteDocMimeType,
		Title:    title,
	})

	updated, err := c.service.Events.Patch("primary", eventID, &calendar.Event{Attachments: attachments}).
		Context(ctx).
		SupportsAttachments(true).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to attach file to event: %w", err)
	}
	return updated.HtmlLink, nil
}

// convertEvent maps a raw API event to the typed Event, injecting the
// calendar name into the summary for context.
func convertEvent(item *calendar.Event, calendarName string) Event {
	// Cancelled occurrences of recurring events come back without a start.
	var start string
	if item.Start != nil {
		start = item.Start.DateTime
		if start == "" {
			start = item.Start.Date // all-day event
		}
	}

	summary := item.Summary
	if summary == "" {
		summary = "제목 없음"
	}
	if calendarName != "" {
		summary = fmt.Sprintf("[%s] %s", calendarName, summary)
	}

	attendees := make([]Attendee, 0, len(item.Attendees))
	for _, a := range item.Attendees {
		attendees = append(attendees, Attendee{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			ResponseStatus: a.ResponseStatus,
		})
	}

	return Event{
		Summary:      summary,
		Start:        start,
		Description:  item.Description,
		ID:           item.Id,
		Attendees:    attendees,
		CalendarName: calendarName,
	}
}

// sortEventsByStart orders events by their start timestamp. RFC3339
// datetimes and all-day dates both sort correctly as strings.
func sortEventsByStart(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start < events[j].Start
	})
}
