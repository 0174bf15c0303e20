package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wisperrors "github.com/wisp-ui/wisp/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wisp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestToastCommandRendersToast(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "toast", "--title", "Saved", "--description", "All stored", "--variant", "success", "--action", "Undo")
	require.NoError(t, err)
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Saved")
	assert.Contains(t, out, "All stored")
	assert.Contains(t, out, "[Undo]")
}

func TestToastCommandRejectsUnknownVariant(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "toast", "--title", "x", "--variant", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variant")
}

func TestToastCommandRequiresContent(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "toast")
	require.Error(t, err)
}

func TestToastCommandVerboseLogsEvents(t *testing.T) {
	t.Parallel()

	_, logs, err := execute(t, "--verbose", "toast", "--title", "Logged")
	require.NoError(t, err)
	assert.Contains(t, logs, "toast event")
	assert.Contains(t, logs, "toast.enqueued")
	assert.Contains(t, logs, "toast.cleared", "closing the queue clears the toast")
}

func TestThemeCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: dark")
	assert.Contains(t, out, "primary")
	assert.Contains(t, out, "Warning")
}

func TestThemeCommandUsesConfiguredTheme(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "version: \"1.0\"\ntheme: light\ntoasts:\n  position: top-left\n")
	out, _, err := execute(t, "--config", path, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: light")
}

func TestThemeCommandUnknownTheme(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "theme", "neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available")
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := writeConfig(t, "version: \"1.0\"\ntoasts:\n  position: bottom-right\n  max: 3\n")
	out, _, err := execute(t, "config", "validate", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "bottom-right")

	invalid := writeConfig(t, "version: \"1.0\"\ntoasts:\n  position: centre\n")
	_, _, err = execute(t, "config", "validate", invalid)
	var validationErr *wisperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "toasts.position", validationErr.Field)
}

func TestConfigDefaultRoundTrips(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "config", "default")
	require.NoError(t, err)
	assert.Contains(t, out, "position: top-right")

	path := writeConfig(t, out)
	_, _, err = execute(t, "config", "validate", path)
	require.NoError(t, err)
}

func TestBadConfigFailsCommands(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "version: [\n")
	_, _, err := execute(t, "--config", path, "toast", "--title", "x")
	var parseErr *wisperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
