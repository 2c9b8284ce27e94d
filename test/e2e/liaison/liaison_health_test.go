package liaison_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/liaison/internal/liaison/app"
	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
)

func TestLivezEndpoint(t *testing.T) {
	_, baseURL := setupLiaison(t)
	client := liaisonsdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, app.BuildVersion, health.Version)
}

func TestReadyzEndpoint(t *testing.T) {
	_, baseURL := setupLiaison(t)
	client := liaisonsdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Identity)
}

func TestV1RoutesRequireIdentity(t *testing.T) {
	_, baseURL := setupLiaison(t)
	anonymous := liaisonsdk.NewSDKClient(baseURL)

	_, err := anonymous.ConnectionStatus(t.Context())
	requireAPIError(t, err, 401, liaisonsdk.ErrorCodeUnauthorized)

	_, err = anonymous.ListClients(t.Context())
	requireAPIError(t, err, 401, liaisonsdk.ErrorCodeUnauthorized)
}
