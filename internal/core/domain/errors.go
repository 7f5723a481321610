// Package domain defines the core domain models for tag overrides.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
//
// Codes have the form TO-<AREA>-<NNNN>, where the first digit of the
// number mirrors the HTTP status class a verifier would answer with.
type DomainError struct {
	Code    string // Error code (e.g., "TO-REQ-4001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithDetailsf is WithDetails with fmt.Sprintf formatting.
func (e *DomainError) WithDetailsf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Request Errors (REQ)
// ============================================================================

var (
	// ErrAppNameMissing indicates no application name was given.
	ErrAppNameMissing = NewDomainError("TO-REQ-4001", "app name not specified")

	// ErrTagNameMissing indicates no tag name was given.
	ErrTagNameMissing = NewDomainError("TO-REQ-4002", "tag name not specified")

	// ErrExpiryInvalid indicates the expiry is not a non-negative integer.
	ErrExpiryInvalid = NewDomainError("TO-REQ-4003", "expiry is not a valid unix time")

	// ErrExpiryConflict indicates both an absolute and a relative expiry were given.
	ErrExpiryConflict = NewDomainError("TO-REQ-4004", "expiry and ttl are mutually exclusive")

	// ErrExpiryOverflow indicates the expiry does not fit in 64 bits of milliseconds.
	ErrExpiryOverflow = NewDomainError("TO-REQ-4005", "expiry out of range")

	// ErrTooManyArgs indicates extra positional arguments.
	ErrTooManyArgs = NewDomainError("TO-REQ-4006", "too many arguments")
)

// ============================================================================
// Secret Errors (SEC)
// ============================================================================

var (
	// ErrSecretMissing indicates no secret source was configured.
	ErrSecretMissing = NewDomainError("TO-SEC-4001", "secret file not specified")

	// ErrSecretUnreadable indicates the secret source could not be read.
	ErrSecretUnreadable = NewDomainError("TO-SEC-4002", "secret file unreadable")

	// ErrSecretEmpty indicates the secret source contained no bytes.
	ErrSecretEmpty = NewDomainError("TO-SEC-4003", "secret is empty")

	// ErrNoTerminal indicates an interactive prompt was needed without a terminal.
	ErrNoTerminal = NewDomainError("TO-SEC-4004", "no terminal available for secret prompt")
)

// ============================================================================
// Configuration Errors (CFG)
// ============================================================================

var (
	// ErrConfigInvalid indicates the loaded configuration failed validation.
	ErrConfigInvalid = NewDomainError("TO-CFG-4001", "invalid configuration")

	// ErrConfigLoad indicates a configuration source could not be loaded.
	ErrConfigLoad = NewDomainError("TO-CFG-4002", "configuration load failed")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewDomainError("TO-SYS-5000", "internal error")
)
