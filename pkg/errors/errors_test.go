package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("alpaca.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "alpaca.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "alpaca.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("alpaca.yaml", 0, stdErrors.New("boom"))
	require.Equal(t, "parse error: alpaca.yaml: boom", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("Eyes", "unknown option \"cyclops\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "Eyes", validationErr.Field)
	require.Equal(t, "validation error: Eyes: unknown option \"cyclops\"", err.Error())
}

func TestDecodeErrorIsDistinct(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("XML syntax error on line 3")
	err := NewDecodeError(underlying)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.True(t, stdErrors.Is(err, underlying))

	var exportErr *ExportError
	require.False(t, stdErrors.As(err, &exportErr))
}

func TestExportErrorIncludesStage(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewExportError("write", underlying)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	require.Equal(t, "write", exportErr.Stage)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[write]")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var decodeErr *DecodeError
	var exportErr *ExportError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, decodeErr.Error())
	require.Empty(t, exportErr.Error())
	require.Nil(t, decodeErr.Unwrap())
}
