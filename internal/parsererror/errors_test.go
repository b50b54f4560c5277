package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Generator: "pacs.008", Field: ":20:"}

	assert.Equal(t, "pacs.008: missing mandatory field: :20:", err.Error())
	assert.True(t, errors.Is(err, ErrMissingMandatoryField))
	assert.False(t, errors.Is(err, ErrUnsupportedType))

	wrapped := fmt.Errorf("convert: %w", err)
	var target *MissingFieldError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, ":20:", target.Field)
	assert.True(t, errors.Is(wrapped, ErrMissingMandatoryField))
}

func TestUnsupportedTypeError(t *testing.T) {
	tests := []struct {
		name     string
		err      *UnsupportedTypeError
		expected string
	}{
		{
			name:     "with type",
			err:      &UnsupportedTypeError{Direction: "MX to MT", Type: "unknown.001.001.01"},
			expected: "MX to MT: unsupported message type: unknown.001.001.01",
		},
		{
			name:     "undetermined type",
			err:      &UnsupportedTypeError{Direction: "MX to MT"},
			expected: "MX to MT: unsupported message type: type could not be determined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrUnsupportedType))
		})
	}
}

func TestParseError(t *testing.T) {
	inner := errors.New("balance shorter than 10 characters")
	err := &ParseError{Parser: "camt.053", Field: "60F", Value: "C23", Err: inner}

	assert.Equal(t, "camt.053: failed to parse 60F='C23': balance shorter than 10 characters", err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "in.fin", Reason: "empty file"}
	assert.Equal(t, "validation failed for in.fin: empty file", err.Error())
}

func TestInvalidFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InvalidFormatError
		expected string
	}{
		{
			name:     "without snippet",
			err:      &InvalidFormatError{FilePath: "a.txt", ExpectedFormat: "MT or MX", Msg: "unrecognised content"},
			expected: "invalid format in file 'a.txt': unrecognised content. Expected: MT or MX",
		},
		{
			name:     "with snippet",
			err:      &InvalidFormatError{FilePath: "a.txt", ExpectedFormat: "MT or MX", Msg: "unrecognised content", ActualContentSnippet: "hello"},
			expected: "invalid format in file 'a.txt': unrecognised content. Expected: MT or MX. Content snippet: 'hello'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
