package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrConnectionNotFound means the user never connected Google or has
	// disconnected.
	ErrConnectionNotFound = errors.New("google connection not found")

	// ErrRefreshUnavailable means the stored connection has no refresh
	// token; the user has to go through consent again.
	ErrRefreshUnavailable = errors.New("google connection has no refresh token")

	// ErrRefreshFailed wraps a failed token refresh. The stored
	// credential is left as it was.
	ErrRefreshFailed = errors.New("google token refresh failed")

	// ErrDispatchFailed wraps a provider API failure after a token was
	// obtained.
	ErrDispatchFailed = errors.New("google api call failed")

	ErrInvalidState       = errors.New("invalid or expired oauth state")
	ErrCodeExchangeFailed = errors.New("authorization code exchange failed")

	ErrClientNotFound   = errors.New("client not found")
	ErrTemplateNotFound = errors.New("template not found")

	ErrValidation = errors.New("validation failed")
)

// ValidationError lists the offending fields of a rejected input. It
// matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalidField(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
