package exception_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tigerroll/greeter/internal/support/util/exception"

	"github.com/stretchr/testify/assert"
)

// Custom error type for testing message extraction of wrapped errors.
type customError struct {
	Msg string
}

func (e *customError) Error() string {
	return fmt.Sprintf("customError: %s", e.Msg)
}

func TestNewAppError(t *testing.T) {
	originalErr := errors.New("write to stdout failed")
	ae := exception.NewAppError("greeter", "failed to write greeting", originalErr)

	assert.Equal(t, "greeter", ae.Module)
	assert.Equal(t, "failed to write greeting", ae.Message)
	assert.Equal(t, originalErr, ae.Unwrap())
	assert.Contains(t, ae.Error(), "[greeter] failed to write greeting: write to stdout failed")
	assert.NotEmpty(t, ae.StackTrace)
}

func TestNewAppErrorWithoutOriginal(t *testing.T) {
	ae := exception.NewAppError("config", "missing configuration", nil)

	assert.Nil(t, ae.Unwrap())
	assert.Equal(t, "[config] missing configuration", ae.Error())
}

func TestNewAppErrorf(t *testing.T) {
	// Case 1: only message args
	ae1 := exception.NewAppErrorf("app", "tasklet %d failed", 2)
	assert.Nil(t, ae1.Unwrap())
	assert.Contains(t, ae1.Error(), "[app] tasklet 2 failed")

	// Case 2: trailing error is extracted and wrapped
	originalErr := errors.New("closed pipe")
	ae2 := exception.NewAppErrorf("greeter", "failed to write greeting for '%s'", "World", originalErr)
	assert.Equal(t, originalErr, ae2.Unwrap())
	assert.Contains(t, ae2.Error(), "[greeter] failed to write greeting for 'World': closed pipe")
}

func TestIsAppError(t *testing.T) {
	ae := exception.NewAppError("app", "boom", nil)
	assert.True(t, exception.IsAppError(ae))
	assert.True(t, exception.IsAppError(fmt.Errorf("wrapped: %w", ae)))
	assert.False(t, exception.IsAppError(errors.New("plain")))
	assert.False(t, exception.IsAppError(nil))
}

func TestIsUnknown(t *testing.T) {
	assert.True(t, exception.IsUnknown(exception.ErrUnknown))
	assert.True(t, exception.IsUnknown(fmt.Errorf("wrapped: %w", exception.ErrUnknown)))
	assert.False(t, exception.IsUnknown(errors.New("recognized")))
	assert.False(t, exception.IsUnknown(nil))
}

func TestExtractErrorMessage(t *testing.T) {
	assert.Equal(t, "", exception.ExtractErrorMessage(nil))

	// AppError yields the cleaner Message field.
	ae := exception.NewAppError("app", "run failed", errors.New("underlying"))
	assert.Equal(t, "run failed", exception.ExtractErrorMessage(ae))

	// Other errors yield their Error() string.
	ce := &customError{Msg: "no message field"}
	assert.Equal(t, "customError: no message field", exception.ExtractErrorMessage(ce))
}
