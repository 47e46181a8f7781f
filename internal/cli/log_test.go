package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_EmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "arcs.db")

	st, err := openStore(&RootOptions{Database: db})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, _, err := execute(t, "log", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No runs found")

	out, _, err = execute(t, "log", "--db", db, "--format", "json")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	assert.Equal(t, []any{}, resp.Data)
}

func TestLog_ListRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "arcs.db")
	first := recordEval(t, db, "--label", "first", "length", "a=0:1")
	second := recordEval(t, db, "--label", "second", "center", "a=0:1")

	out, _, err := execute(t, "log", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, first)
	assert.Contains(t, out, second)
	assert.Less(t, strings.Index(out, first), strings.Index(out, second), "runs are listed in creation order")

	out, _, err = execute(t, "log", "--db", db, "--format", "json")
	require.NoError(t, err)
	runs := decodeResponse(t, out).Data.([]any)
	require.Len(t, runs, 2)
	assert.Equal(t, "first", runs[0].(map[string]any)["label"])
	assert.Equal(t, float64(1), runs[0].(map[string]any)["evaluations"])
}

func TestLog_ShowRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "arcs.db")
	runID := recordEval(t, db, "union", "a=0:1", "b=2:3")
	_, _, err := execute(t, "eval", "--db", db, "--run", runID, "contains", "a=0:1", "p=0.5")
	require.NoError(t, err)

	out, _, err := execute(t, "log", "--db", db, runID)
	require.NoError(t, err)
	assert.Contains(t, out, "2 evaluation(s)")
	assert.Contains(t, out, "[1] union a=0:1 b=2:3 = [0, 3]")
	assert.Contains(t, out, "[2] contains a=0:1 p=0.5 = true")

	out, _, err = execute(t, "log", "--db", db, runID, "--op", "contains", "--format", "json")
	require.NoError(t, err)
	data := decodeResponse(t, out).Data.(map[string]any)
	evs := data["evaluations"].([]any)
	require.Len(t, evs, 1)
	assert.Equal(t, "contains", evs[0].(map[string]any)["op"])

	_, _, err = execute(t, "log", "--db", db, "no-such-run")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
