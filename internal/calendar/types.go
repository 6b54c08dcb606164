package calendar

// Event is the subset of a calendar event the scribe client needs,
// tagged with the calendar it came from.
type Event struct {
	Summary      string     `json:"summary"`
	Start        string     `json:"start"`
	Description  string     `json:"description"`
	ID           string     `json:"id"`
	Attendees    []Attendee `json:"attendees"`
	CalendarName string     `json:"calendar_name"`
}

// Attendee represents an event participant
type Attendee struct {
	Email          string `json:"email"`
	DisplayName    string `json:"displayName,omitempty"`
	ResponseStatus string `json:"responseStatus,omitempty"`
}
