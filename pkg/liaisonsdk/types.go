package liaisonsdk

import "time"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`

	// Fields maps each invalid input field to what is wrong with it. Only
	// set on validation failures.
	Fields map[string]string `json:"fields,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Identity string `json:"identity"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ============================================================================
// Google connection
// ============================================================================

type ConnectionStatusResponse struct {
	Connected bool `json:"connected"`
}

type DisconnectResponse struct {
	Success bool `json:"success"`
}

// ============================================================================
// Calendar
// ============================================================================

// Event is a calendar event as the Calendar API names its fields.
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

// EventTime has DateTime for timed events and Date for all-day events.
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

// ============================================================================
// Email
// ============================================================================

// SendEmailRequest sends Subject and Body to each recipient separately.
// ClientIDs add the email of each of the caller's clients; TemplateID fills
// Subject and Body when they are empty.
type SendEmailRequest struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject,omitempty"`
	Body       string   `json:"body,omitempty"`
	ClientIDs  []string `json:"client_ids,omitempty"`
	TemplateID string   `json:"template_id,omitempty"`
}

const (
	SendStatusSuccess = "success"
	SendStatusError   = "error"
)

type SendEmailResult struct {
	Recipient string `json:"recipient"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// SendEmailResponse has one result per recipient, in request order.
type SendEmailResponse struct {
	Results []SendEmailResult `json:"results"`
	Sent    int               `json:"sent"`
	Failed  int               `json:"failed"`
}

// ============================================================================
// Clients
// ============================================================================

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateClientRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// UpdateClientRequest changes only the fields that are set. An empty phone
// or notes clears it.
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

type ListClientsResponse struct {
	Clients []Client `json:"clients"`
}

// ============================================================================
// Templates
// ============================================================================

type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateTemplateRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type UpdateTemplateRequest struct {
	Name    *string `json:"name,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Body    *string `json:"body,omitempty"`
}

type ListTemplatesResponse struct {
	Templates []Template `json:"templates"`
}
