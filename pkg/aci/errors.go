package aci

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrMissingAPIKey means the client cannot be built without credentials.
	ErrMissingAPIKey = errors.New("aci: missing API key (set ACI_API_KEY or aci.api_key)")
	// ErrMalformedDefinition means a fetched definition lacks a required field.
	ErrMalformedDefinition = errors.New("aci: malformed function definition")
	// ErrInvalidArguments means a meta function was called with unusable arguments.
	ErrInvalidArguments = errors.New("aci: invalid function arguments")

	ErrBadRequest   = errors.New("aci: bad request")
	ErrUnauthorized = errors.New("aci: unauthorized")
	ErrForbidden    = errors.New("aci: forbidden")
	ErrNotFound     = errors.New("aci: not found")
	ErrRateLimited  = errors.New("aci: rate limited")
	ErrServer       = errors.New("aci: server error")
)

// APIError is a non-2xx response from the ACI platform.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("aci: http %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code onto a sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return ErrBadRequest
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.StatusCode >= 500:
		return ErrServer
	default:
		return nil
	}
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{StatusCode: status, Message: errorMessage(body)}
}

// errorMessage pulls a human readable message out of an error body.
func errorMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"error", "message", "detail"} {
			if res := gjson.GetBytes(body, path); res.Exists() && res.Type == gjson.String {
				if msg := strings.TrimSpace(res.String()); msg != "" {
					return msg
				}
			}
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "empty response"
	}
	return msg
}
