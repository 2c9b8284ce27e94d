package liaisonsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/liaison/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest          = "invalid_request"
	ErrorCodeValidation              = "validation_error"
	ErrorCodeUnauthorized            = "unauthorized"
	ErrorCodeNotFound                = "not_found"
	ErrorCodeGoogleNotConnected      = "google_not_connected"
	ErrorCodeGoogleReconnectRequired = "google_reconnect_required"
	ErrorCodeDispatchFailed          = "dispatch_failed"
	ErrorCodeRateLimited             = "rate_limit_exceeded"
	ErrorCodeServerError             = "server_error"
)

// APIError is a failed request. Handlers write it; the client returns it.
type APIError struct {
	StatusCode  int               `json:"-"`
	Code        string            `json:"error"`
	Description string            `json:"error_description"`
	Fields      map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
		Fields:           e.Fields,
	})
}

func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Description: description}
}

var (
	ErrInvalidJSON = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "invalid JSON in request body",
	}

	ErrGoogleNotConnected = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeGoogleNotConnected,
		Description: "google account is not connected",
	}

	// ErrGoogleReconnectRequired means the stored credential can no longer
	// be refreshed and the user must consent again.
	ErrGoogleReconnectRequired = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeGoogleReconnectRequired,
		Description: "google access expired, reconnect the account",
	}

	ErrDispatchFailed = &APIError{
		StatusCode:  http.StatusBadGateway,
		Code:        ErrorCodeDispatchFailed,
		Description: "google api request failed",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Fields:      errResp.Fields,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
