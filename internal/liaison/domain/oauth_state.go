package domain

import "time"

// OAuthState binds a consent redirect to the user who started it. Only the
// fingerprint of the state value is stored.
type OAuthState struct {
	StateHash string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
