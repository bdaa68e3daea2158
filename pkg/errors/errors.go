package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
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

// ValidationError captures malformed or insufficient input. It fails fast,
// before any network call is made.
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

// ConnectionError means no session could be established with a target. It is
// terminal for that target only and never aborts the rest of a batch.
type ConnectionError struct {
	Target string
	Err    error
}

// NewConnectionError constructs a ConnectionError for the given target.
func NewConnectionError(target string, err error) error {
	return &ConnectionError{Target: target, Err: err}
}

func (e *ConnectionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("connection error [%s]: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("connection error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ConnectionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ReadError means a state query failed after a successful connection. It is
// distinct from the queried object being absent.
type ReadError struct {
	Target string
	Err    error
}

// NewReadError constructs a ReadError for the given target.
func NewReadError(target string, err error) error {
	return &ReadError{Target: target, Err: err}
}

func (e *ReadError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("read error [%s]: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("read error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ReadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MutationError means the side-effecting change failed. The batch continues
// and no automatic retry is attempted.
type MutationError struct {
	Target   string
	Mutation string
	Err      error
}

// NewMutationError constructs a MutationError.
func NewMutationError(target, mutation string, err error) error {
	return &MutationError{Target: target, Mutation: mutation, Err: err}
}

func (e *MutationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Mutation != "" {
		return fmt.Sprintf("mutation error [%s] %s: %v", e.Target, e.Mutation, e.Err)
	}
	return fmt.Sprintf("mutation error [%s]: %v", e.Target, e.Err)
}

// Unwrap exposes the underlying error.
func (e *MutationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CascadeError means the dependent-service restart failed. The already
// applied mutation is not rolled back.
type CascadeError struct {
	Target  string
	Service string
	Err     error
}

// NewCascadeError constructs a CascadeError.
func NewCascadeError(target, service string, err error) error {
	return &CascadeError{Target: target, Service: service, Err: err}
}

func (e *CascadeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Service != "" {
		return fmt.Sprintf("cascade error [%s] service %s: %v", e.Target, e.Service, e.Err)
	}
	return fmt.Sprintf("cascade error [%s]: %v", e.Target, e.Err)
}

// Unwrap exposes the underlying error.
func (e *CascadeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
