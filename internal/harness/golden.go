package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/arcs/internal/ir"
)

// Snapshot builds the canonical golden document for a result:
//
//	{"run_id", "scenario", "trace": [{"args", "op", "result", "result_hash", "seq"}]}
//
// Evaluation IDs are left out; they are derived from the other fields.
func Snapshot(scenarioName string, result *Result) ([]byte, error) {
	trace := make(ir.IRArray, len(result.Trace))
	for i, ev := range result.Trace {
		trace[i] = ir.IRObject{
			"seq":         ir.IRInt(ev.Seq),
			"op":          ir.IRString(ev.Op),
			"args":        ev.Args,
			"result":      ev.Result,
			"result_hash": ir.IRString(ev.ResultHash),
		}
	}
	return ir.MarshalCanonical(ir.IRObject{
		"scenario": ir.IRString(scenarioName),
		"run_id":   ir.IRString(result.RunID),
		"trace":    trace,
	})
}

// RunWithGolden runs a scenario and compares its trace with
// testdata/golden/{scenario.Name}.golden. The scenario's own expectations are
// checked as well.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario, opts ...Option) (*Result, error) {
	t.Helper()

	result, err := Run(scenario, nil, opts...)
	if err != nil {
		return nil, err
	}
	for _, msg := range result.Errors {
		t.Errorf("%s: %s", scenario.Name, msg)
	}
	return result, AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result's trace with its golden file.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
