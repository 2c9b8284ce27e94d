package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/liaison/internal/liaison/service"
	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
)

func TestWriteServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not connected", service.ErrConnectionNotFound, http.StatusForbidden, liaisonsdk.ErrorCodeGoogleNotConnected},
		{"refresh unavailable", service.ErrRefreshUnavailable, http.StatusForbidden, liaisonsdk.ErrorCodeGoogleReconnectRequired},
		{"refresh failed", fmt.Errorf("%w: invalid_grant", service.ErrRefreshFailed), http.StatusForbidden, liaisonsdk.ErrorCodeGoogleReconnectRequired},
		{"dispatch failed", service.ErrDispatchFailed, http.StatusBadGateway, liaisonsdk.ErrorCodeDispatchFailed},
		{"refresh timed out", context.DeadlineExceeded, http.StatusBadGateway, liaisonsdk.ErrorCodeDispatchFailed},
		{"client missing", service.ErrClientNotFound, http.StatusNotFound, liaisonsdk.ErrorCodeNotFound},
		{"unknown", context.Canceled, http.StatusInternalServerError, liaisonsdk.ErrorCodeServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)

			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, tc.code, decode[liaisonsdk.ErrorResponse](t, rec).Error)
		})
	}
}
