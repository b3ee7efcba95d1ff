package nilu

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx HTTP response from the NILU API. The client
// does not retry; the caller decides whether to retry or degrade.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Status     string `json:"status"      yaml:"status"`
	Body       string `json:"body"        yaml:"body"`
	URL        string `json:"url"         yaml:"url"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Status, e.Body)
	}

	return fmt.Sprintf("API error %d (%s)", e.StatusCode, e.Status)
}

// ConnectivityError represents a transport-level failure: DNS resolution,
// connection refused, or timeout before a response was received.
type ConnectivityError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("connectivity error requesting %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// DecodeError represents a response body that could not be decoded as the
// expected JSON shape.
type DecodeError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("decoding response from %s: %v", e.URL, e.Err)
	}

	return fmt.Sprintf("decoding response: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrBaseURLRequired     = errors.New("base URL is required")
	ErrNoHostInURL         = errors.New("no host specified in URL")
	ErrFromTimeAfterToTime = errors.New("fromtime must not be after totime")
)

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsServerError checks if the error is a 5xx API error.
func IsServerError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}

	return false
}

// IsConnectivityError checks if the error is a transport-level failure.
func IsConnectivityError(err error) bool {
	connErr := &ConnectivityError{}

	return errors.As(err, &connErr)
}

// IsDecodeError checks if the error is a JSON decode failure.
func IsDecodeError(err error) bool {
	decErr := &DecodeError{}

	return errors.As(err, &decErr)
}
