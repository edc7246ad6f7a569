package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents an error response from the server. Mensaje carries
// the server-provided message when the body had one.
type APIError struct {
	StatusCode int
	Mensaje    string
	Body       string
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Body:       string(body),
	}
	var envelope struct {
		Mensaje string `json:"mensaje"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.Mensaje != "":
			apiErr.Mensaje = envelope.Mensaje
		case envelope.Message != "":
			apiErr.Mensaje = envelope.Message
		case envelope.Error != "":
			apiErr.Mensaje = envelope.Error
		}
	}
	return apiErr
}

func (e *APIError) Error() string {
	if e.Mensaje != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Mensaje)
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

// DecodeError reports a response body that did not match the endpoint's schema.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ServerMessage returns the server-provided message from err, or the empty
// string when the error carries none.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Mensaje
	}
	return ""
}

// IsNotFound returns true if the error is a 404 Not Found error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized returns true if the error is a 401 Unauthorized error.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden returns true if the error is a 403 Forbidden error.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}

// IsPayloadTooLarge reports whether the server rejected an upload for size.
// Some deployments answer 413, others a 400 with a size complaint in the
// message, so both are recognized.
func IsPayloadTooLarge(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == http.StatusRequestEntityTooLarge {
		return true
	}
	msg := strings.ToLower(apiErr.Mensaje)
	return strings.Contains(msg, "demasiado grande") || strings.Contains(msg, "too large")
}
