package pokeapi

import (
	"errors"
	"fmt"
)

// Common errors returned by the PokeAPI client.
var (
	// ErrNotFound indicates the upstream returned 404 for the resource.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited indicates the upstream returned 429.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("request timeout")

	// ErrConnection indicates the upstream could not be reached.
	ErrConnection = errors.New("connection failed")
)

// ErrorKind classifies an APIError.
type ErrorKind int

const (
	// KindGeneric covers unexpected HTTP statuses and connection failures.
	KindGeneric ErrorKind = iota
	// KindNotFound is a definitive 404 from the upstream.
	KindNotFound
	// KindRateLimited is a definitive 429 from the upstream.
	KindRateLimited
	// KindTimeout is a network-level timeout.
	KindTimeout
)

// String returns a human-readable kind label.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindTimeout:
		return "timeout"
	default:
		return "generic"
	}
}

// APIError represents a failed request against the PokeAPI.
// It carries the endpoint and status/body context so callers can render
// a useful message without re-issuing the request.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Endpoint   string
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("pokeapi: %s: not found", e.Endpoint)
	case KindRateLimited:
		return fmt.Sprintf("pokeapi: %s: rate limited", e.Endpoint)
	case KindTimeout:
		return fmt.Sprintf("pokeapi: %s: timeout", e.Endpoint)
	default:
		if e.StatusCode > 0 {
			return fmt.Sprintf("pokeapi: %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("pokeapi: %s: %v", e.Endpoint, e.Err)
	}
}

// Unwrap maps the error kind onto the package sentinel errors so callers
// can use errors.Is without inspecting the struct.
func (e *APIError) Unwrap() error {
	switch e.Kind {
	case KindNotFound:
		return ErrNotFound
	case KindRateLimited:
		return ErrRateLimited
	case KindTimeout:
		return ErrTimeout
	default:
		if e.Err != nil {
			return e.Err
		}
		return nil
	}
}

// DecodeError indicates a successful HTTP response whose payload does not
// match the expected entity shape. It is deliberately distinct from the
// HTTP error taxonomy and is never retried.
type DecodeError struct {
	Endpoint string
	Field    string
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("pokeapi: %s: invalid payload: field %q: %v", e.Endpoint, e.Field, e.Err)
	}
	return fmt.Sprintf("pokeapi: %s: invalid payload: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether the error is a definitive 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimited reports whether the error is a definitive 429.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsTimeout reports whether the error is a network-level timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsDecodeError reports whether the error is a payload validation failure.
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// Retryable reports whether a failed request may be re-attempted.
// Timeouts and connection-level failures are transient; 404, 429 and
// other HTTP statuses are definitive answers from the upstream.
func Retryable(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Kind {
	case KindTimeout:
		return true
	case KindGeneric:
		return apiErr.StatusCode == 0
	default:
		return false
	}
}
