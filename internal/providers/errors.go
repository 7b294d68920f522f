package providers

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrProviderUnavailable is returned when no backend is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RequestError is returned when the backend answers with a non-2xx status.
type RequestError struct {
	Resource   string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Resource, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Resource, e.StatusCode)
}

// IsNotFound reports whether the backend returned 404.
func (e *RequestError) IsNotFound() bool {
	return e != nil && e.StatusCode == http.StatusNotFound
}

// NetworkError is returned when the backend could not be reached or read.
type NetworkError struct {
	Resource string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Resource, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError is returned when a response body does not match the expected shape.
// It unwraps to a NetworkError so callers that only distinguish transport failures
// from status failures can treat it as one.
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return &NetworkError{Resource: e.Resource, Err: e.Err}
}

// AsRequestError attempts to unwrap an error into a RequestError.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// IsNotFound reports whether err carries a backend 404.
func IsNotFound(err error) bool {
	reqErr, ok := AsRequestError(err)
	return ok && reqErr.IsNotFound()
}

// Retryable reports whether a failed call may succeed when repeated: transport
// failures and 5xx responses are, client errors and decode failures are not.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if reqErr, ok := AsRequestError(err); ok {
		return reqErr.StatusCode >= http.StatusInternalServerError
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return false
	}
	if errors.Is(err, ErrProviderUnavailable) {
		return false
	}
	_, ok := AsNetworkError(err)
	return ok
}
