// Package parsererror defines the error taxonomy shared by the parsers,
// generators and the conversion façade.
//
// Parsers never return errors for malformed input; they degrade to an
// "Unknown" structure instead. Generators fail fast with MissingFieldError,
// and the façade reports UnsupportedTypeError when no generator is
// registered for a type. Callers match on the sentinels with errors.Is.
package parsererror

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMandatoryField is matched by every MissingFieldError.
	ErrMissingMandatoryField = errors.New("missing mandatory field")

	// ErrUnsupportedType is matched by every UnsupportedTypeError.
	ErrUnsupportedType = errors.New("unsupported message type")
)

// MissingFieldError reports that a generator precondition failed before any
// output was produced.
type MissingFieldError struct {
	Generator string
	Field     string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Generator, ErrMissingMandatoryField, e.Field)
}

// Is reports whether target is ErrMissingMandatoryField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingMandatoryField
}

// UnsupportedTypeError reports a type for which no generator is registered.
type UnsupportedTypeError struct {
	Direction string
	Type      string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: %s: type could not be determined", e.Direction, ErrUnsupportedType)
	}
	return fmt.Sprintf("%s: %s: %s", e.Direction, ErrUnsupportedType, e.Type)
}

// Is reports whether target is ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// ParseError represents a field whose content could not be interpreted while
// generating output, for example a statement balance that is too short.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure on an input file.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an input file that is neither a FIN message
// nor an ISO 20022 document.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
