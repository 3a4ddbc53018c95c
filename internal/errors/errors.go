package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Gateway errors (GW-001 to GW-099)
	ErrCodeUnauthenticated  ErrorCode = "GW-001"
	ErrCodeTransportTimeout ErrorCode = "GW-002"
	ErrCodeNetworkFailure   ErrorCode = "GW-003"
	ErrCodeServerError      ErrorCode = "GW-004"
	ErrCodeResponseDecode   ErrorCode = "GW-005"
	ErrCodeRequestEncode    ErrorCode = "GW-006"

	// Session store errors (SESSION-001 to SESSION-099)
	ErrCodeSessionLoad  ErrorCode = "SESSION-001"
	ErrCodeSessionSave  ErrorCode = "SESSION-002"
	ErrCodeSessionClear ErrorCode = "SESSION-003"

	// Route errors (ROUTE-001 to ROUTE-099)
	ErrCodeRouteUnknown ErrorCode = "ROUTE-001"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigLoad    ErrorCode = "CONFIG-001"
	ErrCodeConfigSave    ErrorCode = "CONFIG-002"
	ErrCodeConfigInvalid ErrorCode = "CONFIG-003"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
)

// BenchlinkError represents an enhanced error with code, suggestions, and documentation
type BenchlinkError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *BenchlinkError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *BenchlinkError) Unwrap() error {
	return e.Cause
}

// New creates a new BenchlinkError
func New(code ErrorCode, message string) *BenchlinkError {
	return &BenchlinkError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new BenchlinkError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *BenchlinkError {
	return &BenchlinkError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *BenchlinkError) WithSuggestion(suggestion string) *BenchlinkError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *BenchlinkError) WithSuggestions(suggestions ...string) *BenchlinkError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *BenchlinkError) WithDocs(url string) *BenchlinkError {
	e.DocsURL = url
	return e
}

// HasCode reports whether err (or any error it wraps) carries the given code.
func HasCode(err error, code ErrorCode) bool {
	var be *BenchlinkError
	for errors.As(err, &be) {
		if be.Code == code {
			return true
		}
		err = be.Cause
		be = nil
		if err == nil {
			return false
		}
	}
	return false
}

// IsUnauthenticated reports whether err was classified as a 401 response.
func IsUnauthenticated(err error) bool {
	return HasCode(err, ErrCodeUnauthenticated)
}

// IsStorageFailure reports whether err came from the durable session storage.
func IsStorageFailure(err error) bool {
	return HasCode(err, ErrCodeSessionLoad) ||
		HasCode(err, ErrCodeSessionSave) ||
		HasCode(err, ErrCodeSessionClear)
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates an error for commands that require authentication
func NewNotLoggedInError() *BenchlinkError {
	return New(ErrCodeUnauthenticated, "not logged in").
		WithSuggestion("Run 'benchlink login' to authenticate").
		WithSuggestion("Run 'benchlink whoami' to check the current session")
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *BenchlinkError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewConfigInvalidError creates a config validation error
func NewConfigInvalidError(details string) *BenchlinkError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", details)).
		WithSuggestion("Check ~/.benchlink/config.yaml for syntax errors").
		WithSuggestion("Run 'benchlink config show' to see the effective configuration")
}
