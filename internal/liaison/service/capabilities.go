package service

import (
	"context"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
)

// TokenExchanger talks to the provider's OAuth token endpoint.
type TokenExchanger interface {
	// AuthCodeURL is the consent page URL carrying state.
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (domain.ProviderToken, error)
	Refresh(ctx context.Context, refreshToken string) (domain.ProviderToken, error)
}

// CalendarDialer opens a calendar client acting with accessToken.
type CalendarDialer interface {
	DialCalendar(ctx context.Context, accessToken string) (CalendarReader, error)
}

type CalendarReader interface {
	ListEvents(ctx context.Context, q domain.EventQuery) ([]domain.Event, error)
}

// MailDialer opens a mail client acting with accessToken. One sender is
// reused for every recipient of a batch.
type MailDialer interface {
	DialMail(ctx context.Context, accessToken string) (MailSender, error)
}

type MailSender interface {
	// SendRaw sends an already encoded message (base64url, no padding).
	SendRaw(ctx context.Context, raw string) error
}

// AccessTokens yields a usable access token for a user. ConnectionService
// is the implementation.
type AccessTokens interface {
	EnsureFreshToken(ctx context.Context, userID string) (string, error)
}
