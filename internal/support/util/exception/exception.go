// Package exception provides the custom error type used across the greeter
// application. An AppError is a "recognized" failure: it always carries a
// human-readable message that the entry point can report before exiting.
package exception

import (
	"errors"
	"fmt"
	"runtime"
)

// AppError is the error type raised by application components.
// It holds the module where the error occurred, a message, the wrapped
// original error, and the stack trace captured at construction time.
type AppError struct {
	// Module indicates the module where the error occurred (e.g., "greeter", "config").
	Module string
	// Message is a concise description of the error.
	Message string
	// OriginalErr is the wrapped original error.
	OriginalErr error
	// StackTrace is the stack trace at the time of the error (for debugging).
	StackTrace string
}

// NewAppError creates a new AppError instance.
// module: The module where the error occurred.
// message: The error message.
// originalErr: The original error to wrap (may be nil).
func NewAppError(module, message string, originalErr error) *AppError {
	return &AppError{
		Module:      module,
		Message:     message,
		OriginalErr: originalErr,
		StackTrace:  captureStackTrace(),
	}
}

// NewAppErrorf creates a new AppError instance using a format string.
// If the last argument is an error it is extracted and wrapped as the
// original error; the remaining arguments feed fmt.Sprintf.
func NewAppErrorf(module, format string, a ...interface{}) *AppError {
	var originalErr error
	args := a
	if len(args) > 0 {
		if err, ok := args[len(args)-1].(error); ok {
			originalErr = err
			args = args[:len(args)-1]
		}
	}

	return &AppError{
		Module:      module,
		Message:     fmt.Sprintf(format, args...),
		OriginalErr: originalErr,
		StackTrace:  captureStackTrace(),
	}
}

// captureStackTrace records the calling goroutine's stack for debugging.
func captureStackTrace() string {
	buf := make([]byte, 2048)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}

// Error implements the error interface.
// It returns the error's module, message, and the string representation of
// the original error.
func (e *AppError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Module, e.Message, e.OriginalErr)
	}
	return fmt.Sprintf("[%s] %s", e.Module, e.Message)
}

// Unwrap returns the original error for errors.Unwrap.
func (e *AppError) Unwrap() error {
	return e.OriginalErr
}

// IsAppError determines if the given error is of type AppError.
func IsAppError(err error) bool {
	if err == nil {
		return false
	}
	var ae *AppError
	return errors.As(err, &ae)
}

// ErrUnknown is the sentinel for an "unrecognized" failure: one that carries
// no usable message, such as a recovered non-error panic value. The entry
// point reports it as "Unknown error occurred".
var ErrUnknown = errors.New("unknown error")

// IsUnknown determines if an error represents an unrecognized failure.
func IsUnknown(err error) bool {
	return errors.Is(err, ErrUnknown)
}

// ExtractErrorMessage extracts the error message string from an error.
// For AppError, it returns the cleaner Message field.
// Otherwise, it returns the standard Error() string.
func ExtractErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
