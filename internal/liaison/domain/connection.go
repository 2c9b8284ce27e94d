package domain

import "time"

// Connection is a user's delegated Google credential. There is at most one
// per user.
type Connection struct {
	ID           string
	UserID       string
	AccessToken  string
	RefreshToken *string    // absent when consent never granted offline access
	ExpiresAt    *time.Time // absent means unknown; treat as stale
	Scope        *string    // space-delimited, informational
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c Connection) HasRefreshToken() bool {
	return c.RefreshToken != nil && *c.RefreshToken != ""
}

// FreshAt reports whether the access token is still usable for at least
// buffer past now. An unknown expiry is never fresh.
func (c Connection) FreshAt(now time.Time, buffer time.Duration) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.After(now.Add(buffer))
}

// ConnectionFields is the complete credential written when a user
// (re)connects. Nil fields are stored as NULL.
type ConnectionFields struct {
	AccessToken  string
	RefreshToken *string
	ExpiresAt    *time.Time
	Scope        *string
}

// ConnectionUpdate is written after a refresh. AccessToken and ExpiresAt
// always replace the stored values; a nil RefreshToken or Scope keeps what
// is stored.
type ConnectionUpdate struct {
	AccessToken  string
	RefreshToken *string
	ExpiresAt    *time.Time
	Scope        *string
}
