// Package mimex builds the single-part text/plain messages handed to the
// Gmail send API.
package mimex

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrHeaderInjection = errors.New("mimex: header value contains a line break")

// Message is one outgoing plain-text mail to a single recipient.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Build renders m as an RFC 2822 message. Lines are joined with a bare
// "\n"; the Gmail API normalises line endings on ingest. The subject is
// always RFC 2047 B-encoded so non-ASCII survives. The body is left as is.
func Build(m Message) (string, error) {
	if strings.ContainsAny(m.To, "\r\n") {
		return "", ErrHeaderInjection
	}

	lines := []string{
		"Content-Type: text/plain; charset=utf-8",
		"MIME-Version: 1.0",
		"To: " + m.To,
		"Subject: " + EncodeSubject(m.Subject),
		"",
		m.Body,
	}
	return strings.Join(lines, "\n"), nil
}

// EncodeSubject returns the RFC 2047 encoded-word for s.
func EncodeSubject(s string) string {
	return "=?utf-8?B?" + base64.StdEncoding.EncodeToString([]byte(s)) + "?="
}

// Raw builds m and encodes it the way users.messages.send expects its raw
// field: base64url without padding.
func Raw(m Message) (string, error) {
	msg, err := Build(m)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString([]byte(msg)), nil
}
