package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/roach88/arcs/internal/catalog"
	"github.com/roach88/arcs/internal/eval"
	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/s1"
	"github.com/roach88/arcs/internal/store"
	"github.com/roach88/arcs/internal/testutil"
)

// Harness evaluates one scenario against a fresh in-memory store with a
// deterministic clock and run id.
type Harness struct {
	store     *store.Store
	evaluator *eval.Evaluator
	resolve   resolver
	logger    *slog.Logger
}

// Option configures Run.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger for step-level output. Logs are discarded by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Run executes a scenario and returns its result. Names in cat are visible
// to the scenario; scenario intervals shadow them. cat may be nil.
//
// A non-nil error means the scenario could not be run at all. Failed
// expectations and assertions are reported in Result.Errors.
func Run(scenario *Scenario, cat *catalog.Catalog, opts ...Option) (*Result, error) {
	cfg := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	local := catalog.New()
	for name, def := range scenario.Intervals {
		i, err := def.Interval()
		if err != nil {
			return nil, fmt.Errorf("interval %s: %w", name, err)
		}
		if err := local.Add(name, i); err != nil {
			return nil, err
		}
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	var ids []string
	if scenario.RunID != "" {
		ids = append(ids, scenario.RunID)
	}
	runID := testutil.NewFixedRunIDs(ids...).Generate()
	ctx := context.Background()
	if err := st.WriteRun(ctx, ir.Run{
		ID:          runID,
		Label:       scenario.Name,
		IRVersion:   ir.IRVersion,
		ArcsVersion: ir.ArcsVersion,
	}); err != nil {
		return nil, fmt.Errorf("failed to write run: %w", err)
	}

	h := &Harness{
		store: st,
		evaluator: eval.New(runID,
			eval.WithRecorder(st),
			eval.WithClock(testutil.NewDeterministicClock()),
			eval.WithLogger(cfg.logger)),
		resolve: resolver{names: catalog.Overlay(cat, local)},
		logger:  cfg.logger,
	}

	result := NewResult(scenario.Name, runID)
	if err := h.executeSteps(ctx, scenario.Steps, result); err != nil {
		return nil, err
	}

	for _, msg := range h.evaluateAssertions(ctx, scenario.Assertions, result) {
		result.AddError(msg)
	}

	trace, err := st.ReadEvaluations(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}
	result.Trace = trace
	return result, nil
}

// executeSteps evaluates each step and checks its expect clause.
func (h *Harness) executeSteps(ctx context.Context, steps []Step, result *Result) error {
	for i, step := range steps {
		outcome := StepOutcome{Index: i, ID: step.ID, Op: step.Op}

		args, err := h.resolve.args(step.Args)
		if err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}

		ev, evalErr := h.evaluator.Evaluate(ctx, step.Op, args)
		if evalErr != nil {
			if eval.CodeOf(evalErr) == "" {
				// Not an evaluation error: the store or context failed.
				return fmt.Errorf("steps[%d]: %w", i, evalErr)
			}
			outcome.Error = evalErr.Error()
		} else {
			outcome.Seq = ev.Seq
			outcome.Result = ev.Result
			outcome.Hash = ev.ResultHash
		}
		result.Steps = append(result.Steps, outcome)

		if step.Expect != nil {
			if msg := h.checkExpect(step.Expect, evalErr, ev.Result); msg != "" {
				result.AddError(fmt.Sprintf("steps[%d] %s: %s", i, step.Op, msg))
			}
		}

		h.logger.Info("step completed",
			"step", i,
			"op", step.Op,
			"seq", outcome.Seq,
			"error", outcome.Error,
		)
	}
	return nil
}

// checkExpect compares an outcome with an exact expectation and returns a
// failure message, or "" when it matches.
func (h *Harness) checkExpect(exp *Expect, evalErr error, got ir.IRObject) string {
	if exp.Error != "" {
		if evalErr == nil {
			return fmt.Sprintf("expected error %s, got result %s", exp.Error, describe(got))
		}
		if code := eval.CodeOf(evalErr); string(code) != exp.Error {
			return fmt.Sprintf("expected error %s, got %s", exp.Error, code)
		}
		return ""
	}
	if evalErr != nil {
		return fmt.Sprintf("unexpected error: %v", evalErr)
	}

	switch {
	case exp.Interval != nil:
		want, err := h.resolve.interval(exp.Interval)
		if err != nil {
			return fmt.Sprintf("bad expected interval: %v", err)
		}
		gotI, err := resultInterval(got)
		if err != nil {
			return err.Error()
		}
		if !gotI.Equal(want) {
			return fmt.Sprintf("expected interval %v, got %v", want, gotI)
		}
	case exp.Value != nil:
		want, err := angle(exp.Value)
		if err != nil {
			return fmt.Sprintf("bad expected value: %v", err)
		}
		gotV, err := resultValue(got)
		if err != nil {
			return err.Error()
		}
		if gotV != want && !(math.IsNaN(gotV) && math.IsNaN(want)) {
			return fmt.Sprintf("expected value %v, got %v", want, gotV)
		}
	case exp.Bool != nil:
		b, ok := got["bool"].(ir.IRBool)
		if !ok {
			return fmt.Sprintf("expected bool result, got %s", describe(got))
		}
		if bool(b) != *exp.Bool {
			return fmt.Sprintf("expected %t, got %t", *exp.Bool, bool(b))
		}
	}
	return ""
}

func resultInterval(obj ir.IRObject) (s1.Interval, error) {
	v, ok := obj["interval"]
	if !ok {
		return s1.Interval{}, fmt.Errorf("expected interval result, got %s", describe(obj))
	}
	return ir.ToInterval(v)
}

func resultValue(obj ir.IRObject) (float64, error) {
	v, ok := obj["value"]
	if !ok {
		return 0, fmt.Errorf("expected value result, got %s", describe(obj))
	}
	return ir.AngleOf(v)
}

func describe(obj ir.IRObject) string {
	data, err := ir.MarshalCanonical(obj)
	if err != nil {
		return fmt.Sprintf("%v", obj)
	}
	return string(data)
}
