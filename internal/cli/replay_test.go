package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/s1"
)

func TestReplay_MissingDatabase(t *testing.T) {
	_, _, err := execute(t, "replay", "some-run")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--db is required")
}

func TestReplay_UnknownRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "arcs.db")
	recordEval(t, db, "length", "a=0:1")

	_, _, err := execute(t, "replay", "--db", db, "no-such-run")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "run not found")
}

func TestReplay_Reproduces(t *testing.T) {
	db := filepath.Join(t.TempDir(), "arcs.db")
	runID := recordEval(t, db, "union", "a=0:1", "b=2:3")
	for _, args := range [][]string{
		{"contains", "a=3:-3", "p=pi"},
		{"expanded", "a=0:1", "margin=0.5"},
		{"hausdorff", "a=0:2", "b=0:1"},
	} {
		_, _, err := execute(t, append([]string{"eval", "--db", db, "--run", runID}, args...)...)
		require.NoError(t, err)
	}

	out, _, err := execute(t, "replay", "--db", db, runID)
	require.NoError(t, err)
	assert.Contains(t, out, "4 evaluation(s)")
	assert.Contains(t, out, "All evaluations reproduced")

	out, _, err = execute(t, "replay", "--db", db, "--format", "json", runID)
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(4), data["evaluations"])
	assert.Nil(t, data["mismatches"])
}

func TestReplay_Diverged(t *testing.T) {
	db := filepath.Join(t.TempDir(), "arcs.db")
	runID := recordEval(t, db, "length", "a=0:1")

	// Record an evaluation whose stored result is wrong.
	st, err := openStore(&RootOptions{Database: db})
	require.NoError(t, err)
	args := ir.IRObject{"a": ir.IntervalValue(s1.MustInterval(0, 2))}
	ev, err := ir.NewEvaluation(runID, 2, "length", args, ir.IRObject{"value": ir.IRString("3")})
	require.NoError(t, err)
	require.NoError(t, st.WriteEvaluation(t.Context(), ev))
	require.NoError(t, st.Close())

	out, _, err := execute(t, "replay", "--db", db, runID)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "seq 2 length: result hash differs")
	assert.Contains(t, out, "1 evaluation(s) diverged")

	out, _, err = execute(t, "replay", "--db", db, "--format", "json", runID)
	require.Error(t, err)
	resp := decodeResponse(t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeReplay, resp.Error.Code)
}
