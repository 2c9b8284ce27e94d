package domain

// EmailMessage is one subject and body sent separately to each recipient.
type EmailMessage struct {
	To      []string
	Subject string
	Body    string
}

// SendRequest is an email batch as the app submits it. ClientIDs and
// TemplateID are resolved against the caller's own records.
type SendRequest struct {
	Recipients []string
	Subject    string
	Body       string
	ClientIDs  []string
	TemplateID string
}

type SendStatus string

const (
	SendSuccess SendStatus = "success"
	SendError   SendStatus = "error"
)

// SendOutcome is the result for one recipient.
type SendOutcome struct {
	Recipient string
	Status    SendStatus
	Error     string
}
