package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Ingestion errors
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	CodeDecodeError       ErrorCode = "DECODE_ERROR"

	// Session errors
	CodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	CodeNoDocument      ErrorCode = "NO_DOCUMENT"

	// External collaborator errors
	CodeExternalService     ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeMalformedGeneration ErrorCode = "MALFORMED_GENERATION"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithContext attaches a key/value pair rendered in the error response details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Helper constructors for common errors

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Session not found: %s", sessionID), nil)
}

func NewUnsupportedFormatError(filename string) *DomainError {
	return NewError(CodeUnsupportedFormat, fmt.Sprintf("Unsupported file format: %s", filename), nil)
}

func NewDecodeError(filename string, cause error) *DomainError {
	return NewError(CodeDecodeError, fmt.Sprintf("Could not decode file: %s", filename), cause)
}

// NewExternalServiceError wraps a failed call to one of the hosted
// collaborators (model, index, forms, video search).
func NewExternalServiceError(service string, cause error) *DomainError {
	return NewError(CodeExternalService, fmt.Sprintf("%s service call failed", service), cause)
}

// NewMalformedGenerationError reports model output that could not be parsed
// into any well-formed quiz question. The caller may retry.
func NewMalformedGenerationError(attempts int) *DomainError {
	e := NewError(CodeMalformedGeneration, "Model output could not be parsed as a quiz; please retry", nil)
	return e.WithContext("attempts", attempts)
}
