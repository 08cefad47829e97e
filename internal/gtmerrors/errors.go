// Package gtmerrors defines stable error codes for every failure mode
// of a comparison run.
package gtmerrors

import (
	"errors"
	"fmt"
)

// Code represents a stable error code
type Code string

const (
	// AccountNotFound indicates no account matches the requested name
	AccountNotFound Code = "ACCOUNT_NOT_FOUND"
	// ContainerNotFound indicates no container matches the requested name
	ContainerNotFound Code = "CONTAINER_NOT_FOUND"
	// WorkspaceMissing indicates the container has no workspace at all
	WorkspaceMissing Code = "WORKSPACE_MISSING"
	// AuthFailed indicates credentials could not be loaded or exchanged
	AuthFailed Code = "AUTH_FAILED"
	// ConfigInvalid indicates the configuration failed validation
	ConfigInvalid Code = "CONFIG_INVALID"
)

// Error is an error carrying a stable code and an optional cause
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New creates an Error with the given code, message and cause
func New(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf returns the code carried by err, or "" if err carries none
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsNotFound reports whether err is a name-resolution failure.
// These are terminal for the comparison run and never retried.
func IsNotFound(err error) bool {
	code := CodeOf(err)
	return code == AccountNotFound || code == ContainerNotFound
}

// IsConfiguration reports whether err is a configuration failure
func IsConfiguration(err error) bool {
	code := CodeOf(err)
	return code == WorkspaceMissing || code == ConfigInvalid
}
