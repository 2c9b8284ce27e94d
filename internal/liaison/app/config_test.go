package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_BASE_URL", "IDENTITY_MODE", "IDENTITY_HEADER", "IDENTITY_AUDIENCE",
		"DATABASE_FILE", "TOKEN_REFRESH_BUFFER", "EMAIL_SEND_CONCURRENCY",
		"OAUTH_STATE_TTL", "PORT", "HOUSEKEEPING_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "http://localhost:3000", cfg.AppBaseURL)
	require.Equal(t, "jwt", cfg.IdentityMode)
	require.Equal(t, "X-User-ID", cfg.IdentityHeader)
	require.Empty(t, cfg.IdentityAudience)
	require.Equal(t, "liaison.db", cfg.DatabaseFile)
	require.Equal(t, 5*time.Minute, cfg.TokenRefreshBuffer)
	require.Equal(t, 1, cfg.EmailSendConcurrency)
	require.Equal(t, 10*time.Minute, cfg.OAuthStateTTL)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("IDENTITY_MODE", "Header")
	t.Setenv("IDENTITY_AUDIENCE", " liaison , dashboard,,")
	t.Setenv("TOKEN_REFRESH_BUFFER", "90s")
	t.Setenv("OAUTH_STATE_TTL", "3")
	t.Setenv("EMAIL_SEND_CONCURRENCY", "4")
	t.Setenv("PORT", "not-a-port")

	cfg := LoadConfig()
	require.Equal(t, "header", cfg.IdentityMode)
	require.Equal(t, []string{"liaison", "dashboard"}, cfg.IdentityAudience)
	require.Equal(t, 90*time.Second, cfg.TokenRefreshBuffer)
	require.Equal(t, 3*time.Minute, cfg.OAuthStateTTL)
	require.Equal(t, 4, cfg.EmailSendConcurrency)
	require.Equal(t, 8080, cfg.Port)
}
