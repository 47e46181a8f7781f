package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/arcs/internal/catalog"
)

func TestValidate_Valid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "quadrants.cue", `package arcs

interval: quad1: {lo: 0, hi: "pi/2"}
interval: quad23: {lo: "pi/2", hi: "-pi/2"}
`)
	writeFile(t, dir, "special.cue", `package arcs

interval: none: {empty: true}
`)

	out, _, err := execute(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog valid: 3 interval(s) in 2 file(s)")

	out, _, err = execute(t, "validate", dir, "--format", "json")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	data := resp.Data.(map[string]any)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, []any{"none", "quad1", "quad23"}, data["intervals"])
}

func TestValidate_InvalidEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.cue", `package arcs

interval: ok: {lo: 0, hi: 1}
interval: toowide: {lo: 0, hi: 4}
interval: garbled: {point: "north"}
`)

	out, _, err := execute(t, "validate", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Validation failed")
	assert.Contains(t, out, catalog.ErrCodeOutOfRange)
	assert.Contains(t, out, catalog.ErrCodeBadAngle)
	assert.Contains(t, out, "bad.cue:")

	out, _, err = execute(t, "validate", dir, "--format", "json")
	require.Error(t, err)
	resp := decodeResponse(t, out)
	assert.Equal(t, "error", resp.Status)
	errs := resp.Data.(map[string]any)["errors"].([]any)
	assert.Len(t, errs, 2)
}

func TestValidate_MissingDirectory(t *testing.T) {
	out, _, err := execute(t, "validate", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error ["+catalog.ErrCodeNotFound+"]")
}

func TestValidate_NoFiles(t *testing.T) {
	out, _, err := execute(t, "validate", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, catalog.ErrCodeNoFiles)
}
