package domain

import "time"

// EventQuery is one events.list call against a calendar.
type EventQuery struct {
	CalendarID   string
	TimeMin      time.Time
	TimeMax      *time.Time
	MaxResults   int64
	SingleEvents bool
	OrderBy      string
}

// Event is the projection of a provider calendar event returned to the
// app. JSON names follow the Calendar API so the payload passes through
// unchanged for the fields we keep.
type Event struct {
	ID          string          `json:"id"`
	Status      string          `json:"status,omitempty"`
	HTMLLink    string          `json:"htmlLink,omitempty"`
	Summary     string          `json:"summary,omitempty"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Start       EventTime       `json:"start"`
	End         EventTime       `json:"end"`
	Attendees   []EventAttendee `json:"attendees,omitempty"`
	Organizer   *EventPerson    `json:"organizer,omitempty"`
	HangoutLink string          `json:"hangoutLink,omitempty"`
	Created     string          `json:"created,omitempty"`
	Updated     string          `json:"updated,omitempty"`
}

// EventTime carries either DateTime (timed events) or Date (all-day).
type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type EventAttendee struct {
	Email          string `json:"email,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
	ResponseStatus string `json:"responseStatus,omitempty"`
}

type EventPerson struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}
