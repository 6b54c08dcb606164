package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	calendar "google.golang.org/api/calendar/v3"
)

func TestSortEventsByStart(t *testing.T) {
	events := []Event{
		{ID: "c", Start: "2026-09-02T10:00:00Z"},
		{ID: "a", Start: "2026-09-01"},
		{ID: "b", Start: "2026-09-01T15:30:00Z"},
	}

	sortEventsByStart(events)

	assert.Equal(t, "a", events[0].ID, "all-day event sorts by date")
	assert.Equal(t, "b", events[1].ID)
	assert.Equal(t, "c", events[2].ID)
}

func TestConvertEvent(t *testing.T) {
	item := &calendar.Event{
		Id:          "evt1",
		Summary:     "Weekly sync",
		Description: "agenda",
		Start:       &calendar.EventDateTime{DateTime: "2026-09-01T09:00:00Z"},
		Attendees: []*calendar.EventAttendee{
			{Email: "alice@example.com", DisplayName: "Alice", ResponseStatus: "accepted"},
		},
	}

	event := convertEvent(item, "Work")

	assert.Equal(t, "[Work] Weekly sync", event.Summary)
	assert.Equal(t, "2026-09-01T09:00:00Z", event.Start)
	assert.Equal(t, "Work", event.CalendarName)
	assert.Len(t, event.Attendees, 1)
	assert.Equal(t, "alice@example.com", event.Attendees[0].Email)
}

func TestConvertEvent_NilStart(t *testing.T) {
	item := &calendar.Event{Id: "evt3", Summary: "Cancelled occurrence"}

	var event Event
	assert.NotPanics(t, func() {
		event = convertEvent(item, "Work")
	})
	assert.Empty(t, event.Start)
	assert.Equal(t, "[Work] Cancelled occurrence", event.Summary)
}

func TestConvertEvent_Defaults(t *testing.T) {
	item := &calendar.Event{
		Id:    "evt2",
		Start: &calendar.EventDateTime{Date: "2026-09-05"},
	}

	event := convertEvent(item, "")

	assert.Equal(t, "제목 없음", event.Summary, "untitled events get the placeholder")
	assert.Equal(t, "2026-09-05", event.Start, "all-day events fall back to the date")
	assert.Empty(t, event.Attendees)
}
