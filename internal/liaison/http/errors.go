package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/liaison/internal/liaison/service"
	"github.com/aussiebroadwan/liaison/pkg/httpx"
	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
	"github.com/aussiebroadwan/liaison/pkg/slogx"
)

const maxBodyBytes = 1 << 20

// writeServiceError maps a service error onto the API's status codes.
// Anything unrecognised is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		(&liaisonsdk.APIError{
			StatusCode:  http.StatusBadRequest,
			Code:        liaisonsdk.ErrorCodeValidation,
			Description: "request validation failed",
			Fields:      verr.Fields,
		}).WriteError(w)

	case errors.Is(err, service.ErrConnectionNotFound):
		liaisonsdk.ErrGoogleNotConnected.WriteError(w)

	case errors.Is(err, service.ErrRefreshUnavailable),
		errors.Is(err, service.ErrRefreshFailed):
		liaisonsdk.ErrGoogleReconnectRequired.WriteError(w)

	case errors.Is(err, service.ErrDispatchFailed):
		liaisonsdk.ErrDispatchFailed.WriteError(w)

	// The shared token refresh ran out of time while this request was
	// still live: an upstream failure, not a broken credential.
	case errors.Is(err, context.DeadlineExceeded) && r.Context().Err() == nil:
		liaisonsdk.ErrDispatchFailed.WriteError(w)

	case errors.Is(err, service.ErrClientNotFound):
		liaisonsdk.NewAPIError(http.StatusNotFound, liaisonsdk.ErrorCodeNotFound, "client not found").WriteError(w)

	case errors.Is(err, service.ErrTemplateNotFound):
		liaisonsdk.NewAPIError(http.StatusNotFound, liaisonsdk.ErrorCodeNotFound, "template not found").WriteError(w)

	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		liaisonsdk.ErrServerError.WriteError(w)
	}
}

// decodeJSON reads a JSON body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		liaisonsdk.ErrInvalidJSON.WriteError(w)
		return false
	}
	return true
}

// userID returns the identity set by the identity middleware.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok || id == "" {
		httpx.WriteError(w, http.StatusUnauthorized, liaisonsdk.ErrorCodeUnauthorized, "missing identity")
		return "", false
	}
	return id, true
}
