package errors

import (
	"fmt"
)

// ParseError reports a configuration document that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError for the document at path.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError names a configuration field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UsageError signals a programmer-facing contract violation, such as building
// a component without the collaborator it requires.
type UsageError struct {
	Component string
	Requires  string
}

// NewUsageError constructs a UsageError for component missing its required collaborator.
func NewUsageError(component, requires string) error {
	return &UsageError{Component: component, Requires: requires}
}

func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Requires == "" {
		return fmt.Sprintf("usage error: %s", e.Component)
	}
	return fmt.Sprintf("usage error: %s must be used with a %s", e.Component, e.Requires)
}
