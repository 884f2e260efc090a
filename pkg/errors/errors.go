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

// ValidationError captures settings, flag and share-code validation issues.
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

// DecodeError reports that a serialized vector document could not be turned
// back into a drawable image. Exports fail with it instead of producing a
// blank raster.
type DecodeError struct {
	Err error
}

// NewDecodeError constructs a DecodeError.
func NewDecodeError(err error) error {
	return &DecodeError{Err: err}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return "decode error: vector document could not be decoded"
	}
	return fmt.Sprintf("decode error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExportError represents a failure in one of the non-decode export stages.
type ExportError struct {
	Stage string
	Err   error
}

// NewExportError constructs an ExportError for the given stage.
func NewExportError(stage string, err error) error {
	return &ExportError{Stage: stage, Err: err}
}

func (e *ExportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage != "" {
		return fmt.Sprintf("export error [%s]: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("export error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ExportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
