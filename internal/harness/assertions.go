package harness

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/roach88/arcs/internal/s1"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // assertion type
	Expected string // human-readable expected outcome
	Actual   string // human-readable actual outcome
	Steps    []StepOutcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nSteps:\n")
	for _, o := range e.Steps {
		switch {
		case o.Error != "":
			fmt.Fprintf(&buf, "  [%d] %s error %s\n", o.Index, o.Op, o.Error)
		default:
			fmt.Fprintf(&buf, "  [%d] %s seq=%d %s\n", o.Index, o.Op, o.Seq, describe(o.Result))
		}
	}
	return buf.String()
}

// evaluateAssertions checks every assertion and returns one message per
// failure.
func (h *Harness) evaluateAssertions(ctx context.Context, assertions []Assertion, result *Result) []string {
	var failures []string
	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertResultEquals:
			err = assertResultEquals(result, a)
		case AssertResultApprox:
			err = h.assertResultApprox(result, a)
		case AssertOpCount:
			err = h.assertOpCount(ctx, result, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			failures = append(failures, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return failures
}

// assertResultEquals checks that every listed step succeeded with the same
// result hash.
func assertResultEquals(result *Result, a Assertion) error {
	var first StepOutcome
	for n, id := range a.Steps {
		o, ok := result.outcome(id)
		if !ok || o.Error != "" {
			return &AssertionError{
				Type:     AssertResultEquals,
				Expected: fmt.Sprintf("step %s to succeed", id),
				Actual:   "no result",
				Steps:    result.Steps,
			}
		}
		if n == 0 {
			first = o
			continue
		}
		if o.Hash != first.Hash {
			return &AssertionError{
				Type:     AssertResultEquals,
				Expected: fmt.Sprintf("%s = %s", first.ID, describe(first.Result)),
				Actual:   fmt.Sprintf("%s = %s", o.ID, describe(o.Result)),
				Steps:    result.Steps,
			}
		}
	}
	return nil
}

// assertResultApprox checks a step's result against an expectation within
// max_error. Intervals are compared with ApproxEquals.
func (h *Harness) assertResultApprox(result *Result, a Assertion) error {
	maxError := s1.DefaultMaxError
	if a.MaxError != nil {
		maxError = *a.MaxError
	}

	o, ok := result.outcome(a.Step)
	if !ok || o.Error != "" {
		return &AssertionError{
			Type:     AssertResultApprox,
			Expected: fmt.Sprintf("step %s to succeed", a.Step),
			Actual:   "no result",
			Steps:    result.Steps,
		}
	}

	if a.Expect.Interval != nil {
		want, err := h.resolve.interval(a.Expect.Interval)
		if err != nil {
			return fmt.Errorf("bad expected interval: %w", err)
		}
		got, err := resultInterval(o.Result)
		if err != nil {
			return err
		}
		if !got.ApproxEquals(want, maxError) {
			return &AssertionError{
				Type:     AssertResultApprox,
				Expected: fmt.Sprintf("%v within %g", want, maxError),
				Actual:   got.String(),
				Steps:    result.Steps,
			}
		}
		return nil
	}

	want, err := angle(a.Expect.Value)
	if err != nil {
		return fmt.Errorf("bad expected value: %w", err)
	}
	got, err := resultValue(o.Result)
	if err != nil {
		return err
	}
	if !(math.Abs(got-want) <= maxError) {
		return &AssertionError{
			Type:     AssertResultApprox,
			Expected: fmt.Sprintf("%v within %g", want, maxError),
			Actual:   fmt.Sprintf("%v", got),
			Steps:    result.Steps,
		}
	}
	return nil
}

// assertOpCount checks how many evaluations of an operation were recorded.
// Failed steps record nothing and are not counted.
func (h *Harness) assertOpCount(ctx context.Context, result *Result, a Assertion) error {
	counts, err := h.store.CountByOp(ctx, result.RunID)
	if err != nil {
		return fmt.Errorf("count evaluations: %w", err)
	}
	if got := counts[a.Op]; got != *a.Count {
		return &AssertionError{
			Type:     AssertOpCount,
			Expected: fmt.Sprintf("%d evaluations of %s", *a.Count, a.Op),
			Actual:   fmt.Sprintf("%d", got),
			Steps:    result.Steps,
		}
	}
	return nil
}
