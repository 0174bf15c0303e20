package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed")
	err := NewParseError("wisp.yaml", 4, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "wisp.yaml", parseErr.Path)
	require.Equal(t, 4, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: wisp.yaml:4: mapping values are not allowed", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.yaml: no such file", err.Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("toasts.max", "must be at least 1", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "toasts.max", validationErr.Field)
	require.Equal(t, "validation error: toasts.max: must be at least 1", err.Error())
}

func TestUsageErrorNamesProvider(t *testing.T) {
	t.Parallel()

	err := NewUsageError("toast provider", "toast queue")

	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	require.Equal(t, "usage error: toast provider must be used with a toast queue", err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var usageErr *UsageError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, usageErr.Error())
	require.NoError(t, parseErr.Unwrap())
}
