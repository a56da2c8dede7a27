package app

import (
	"errors"
	"fmt"
	"time"
)

// ConfigError is returned when startup configuration is invalid. Fatal.
type ConfigError string

// Error implements error interface.
func (e ConfigError) Error() string {
	return "invalid configuration: " + string(e)
}

// IsConfigError checks if given error is caused by invalid configuration.
func IsConfigError(err error) bool {
	var ce ConfigError
	return errors.As(err, &ce)
}

// AuthError is returned when the API rejects the credential. Never retried.
type AuthError struct {
	StatusCode int
}

// Error implements error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("authorization rejected with status %d", e.StatusCode)
}

// IsAuthError checks if given error is caused by a rejected credential.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// RateLimitError is returned when the API reports an exhausted request quota.
// ResetAt is zero when the remote gave no reset time.
type RateLimitError struct {
	ResetAt time.Time
}

// Error implements error interface.
func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "rate limit exceeded"
	}
	return fmt.Sprintf("rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// IsRateLimitError checks if given error is caused by rate limiting.
func IsRateLimitError(err error) bool {
	var re *RateLimitError
	return errors.As(err, &re)
}

// NetworkError is a transient transport or server failure. Retried with
// bounded backoff. StatusCode is zero for connection-level failures.
type NetworkError struct {
	StatusCode int
	Err        error
}

// Error implements error interface.
func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network failure: %v", e.Err)
	}
	return fmt.Sprintf("got invalid http status code: %d", e.StatusCode)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError checks if given error is a transient network failure.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// DecodeError is returned for malformed response or snapshot bodies.
// Fatal for the affected resource type.
type DecodeError struct {
	Err error
}

// Error implements error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding body: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError checks if given error is caused by a malformed body.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// SchemaError signals an incompatible or corrupted snapshot: a required
// field is absent from every record of a resource type's file.
type SchemaError struct {
	Resource Resource
	Field    string
}

// Error implements error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: required field %q absent from every record", e.Resource, e.Field)
}

// IsSchemaError checks if given error is caused by an incompatible snapshot.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
