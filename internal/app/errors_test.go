package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsConfigError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsConfigError(stdErr))

	cErr := ConfigError("missing token")
	assert.True(t, IsConfigError(cErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", cErr)
	assert.True(t, IsConfigError(wrapperErr))
}

func TestIsAuthError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsAuthError(stdErr))

	aErr := &AuthError{StatusCode: 401}
	assert.True(t, IsAuthError(aErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", aErr)
	assert.True(t, IsAuthError(wrapperErr))
}

func TestIsRateLimitError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsRateLimitError(stdErr))

	rErr := &RateLimitError{ResetAt: time.Now()}
	assert.True(t, IsRateLimitError(rErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", rErr)
	assert.True(t, IsRateLimitError(wrapperErr))
}

func TestIsNetworkError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsNetworkError(stdErr))

	nErr := &NetworkError{StatusCode: 503}
	assert.True(t, IsNetworkError(nErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", nErr)
	assert.True(t, IsNetworkError(wrapperErr))

	// A wrapped cause stays reachable.
	cause := errors.New("connection refused")
	nErr = &NetworkError{Err: cause}
	assert.True(t, errors.Is(nErr, cause))
}

func TestIsDecodeError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsDecodeError(stdErr))

	dErr := &DecodeError{Err: errors.New("unexpected EOF")}
	assert.True(t, IsDecodeError(dErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", dErr)
	assert.True(t, IsDecodeError(wrapperErr))
}

func TestIsSchemaError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsSchemaError(stdErr))

	sErr := &SchemaError{Resource: ResourceContributors, Field: "commits"}
	assert.True(t, IsSchemaError(sErr))
	assert.Contains(t, sErr.Error(), "contributors")
	assert.Contains(t, sErr.Error(), "commits")

	wrapperErr := fmt.Errorf("wrapping message: %w", sErr)
	assert.True(t, IsSchemaError(wrapperErr))
}
