package liaison_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
)

// TestGoogleConnectLifecycle covers connect, use and disconnect for one
// user, and that another user never sees the connection.
func TestGoogleConnectLifecycle(t *testing.T) {
	google, baseURL := setupLiaison(t)
	client := newClient(baseURL, testUser)
	other := newClient(baseURL, "someone-else")

	connected, err := client.ConnectionStatus(t.Context())
	require.NoError(t, err)
	require.False(t, connected)

	landing := connectGoogle(t, client, testUser, "consent-code")
	require.Equal(t, "app.example.com", landing.Host)
	require.Equal(t, "/dashboard", landing.Path)
	require.Equal(t, "true", landing.Query().Get("google_connected"))

	forms := google.tokenForms()
	require.Len(t, forms, 1)
	require.Equal(t, "authorization_code", forms[0].Get("grant_type"))
	require.Equal(t, "consent-code", forms[0].Get("code"))

	connected, err = client.ConnectionStatus(t.Context())
	require.NoError(t, err)
	require.True(t, connected)

	connected, err = other.ConnectionStatus(t.Context())
	require.NoError(t, err)
	require.False(t, connected)

	require.NoError(t, client.Disconnect(t.Context()))

	connected, err = client.ConnectionStatus(t.Context())
	require.NoError(t, err)
	require.False(t, connected)

	_, err = client.ListEvents(t.Context(), nil, nil)
	requireAPIError(t, err, 403, liaisonsdk.ErrorCodeGoogleNotConnected)
}

func TestGoogleConnectFailedExchange(t *testing.T) {
	_, baseURL := setupLiaison(t)
	client := newClient(baseURL, testUser)

	landing := connectGoogle(t, client, testUser, "denied-code")
	require.Equal(t, "true", landing.Query().Get("google_error"))

	connected, err := client.ConnectionStatus(t.Context())
	require.NoError(t, err)
	require.False(t, connected)
}

func TestCalendarEventsThroughGoogle(t *testing.T) {
	_, baseURL := setupLiaison(t)
	client := newClient(baseURL, testUser)
	connectGoogle(t, client, testUser, "consent-code")

	events, err := client.ListEvents(t.Context(), nil, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)

	evt := events[0]
	require.Equal(t, "evt-1", evt.ID)
	require.Equal(t, "Site visit", evt.Summary)
	require.Equal(t, "2025-03-02T09:00:00Z", evt.Start.DateTime)
	require.Len(t, evt.Attendees, 1)
	require.Equal(t, "ada@example.com", evt.Attendees[0].Email)
}
