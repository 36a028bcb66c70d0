package search

import (
	"context"
	"errors"
	"net/http"
)

// Sentinel errors for the provider failure taxonomy. Adapters wrap these
// with fmt.Errorf("...: %w", ...) so callers can classify with errors.Is.
var (
	// ErrMissingCredential means a required API key is not configured.
	// Surfaced at startup, never per request.
	ErrMissingCredential = errors.New("missing API credential")

	// ErrAuth means the provider rejected the configured credential.
	ErrAuth = errors.New("provider authentication failed")

	// ErrNetwork means the provider could not be reached or answered
	// with a server-side failure.
	ErrNetwork = errors.New("provider request failed")

	// ErrNoResults means the provider answered successfully but returned
	// nothing usable.
	ErrNoResults = errors.New("provider returned no results")
)

// ErrorFromStatus maps an HTTP status code from a provider API to the
// failure taxonomy. 2xx codes map to nil.
func ErrorFromStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrAuth
	default:
		return ErrNetwork
	}
}

// Classify reduces any provider error to a short kind usable as a display
// placeholder key: "auth", "empty" or "network".
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuth):
		return "auth"
	case errors.Is(err, ErrNoResults):
		return "empty"
	case errors.Is(err, context.DeadlineExceeded):
		return "network"
	default:
		return "network"
	}
}
