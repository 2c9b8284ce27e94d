package domain

import "time"

// ProviderToken is the result of a code exchange or refresh at the
// provider's token endpoint. Empty strings mean the field was omitted.
type ProviderToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time // nil when the response had no expires_in
	Scope        string
}
