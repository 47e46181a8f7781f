package eval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/s1"
)

// Recorder persists evaluations. *store.Store implements it.
type Recorder interface {
	WriteEvaluation(ctx context.Context, ev ir.Evaluation) error
}

// Sequencer issues strictly increasing sequence numbers. *Clock and
// testutil.DeterministicClock implement it.
type Sequencer interface {
	Next() int64
}

// Evaluator applies operations on behalf of a single run.
//
// Each successful call to Evaluate takes the next clock value as its
// sequence number. Evaluate may be called from several goroutines, but
// records are then numbered in whatever order the calls reach the clock.
type Evaluator struct {
	runID    string
	clock    Sequencer
	recorder Recorder
	logger   *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRecorder appends every successful evaluation to r.
func WithRecorder(r Recorder) Option {
	return func(e *Evaluator) { e.recorder = r }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}

// WithClock replaces the evaluator's clock, for example to resume a run.
func WithClock(c Sequencer) Option {
	return func(e *Evaluator) { e.clock = c }
}

// New creates an evaluator for runID.
func New(runID string, opts ...Option) *Evaluator {
	e := &Evaluator{
		runID:  runID,
		clock:  NewClock(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunID returns the run this evaluator stamps on its records.
func (e *Evaluator) RunID() string { return e.runID }

// Evaluate applies op to args, records the evaluation and returns it.
// On error nothing is recorded and no sequence number is consumed.
func (e *Evaluator) Evaluate(ctx context.Context, op string, args ir.IRObject) (ir.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return ir.Evaluation{}, err
	}
	if args == nil {
		args = ir.IRObject{}
	}

	result, err := Apply(op, args)
	if err != nil {
		e.logger.Debug("evaluation rejected", "run_id", e.runID, "op", op, "error", err)
		return ir.Evaluation{}, err
	}

	seq := e.clock.Next()
	ev, err := ir.NewEvaluation(e.runID, seq, op, args, result)
	if err != nil {
		return ir.Evaluation{}, fmt.Errorf("build evaluation record: %w", err)
	}

	if e.recorder != nil {
		if err := e.recorder.WriteEvaluation(ctx, ev); err != nil {
			return ir.Evaluation{}, fmt.Errorf("record evaluation seq=%d: %w", seq, err)
		}
	}

	e.logger.Debug("evaluated",
		"run_id", e.runID,
		"seq", seq,
		"op", op,
		"result_hash", ev.ResultHash[:12])
	return ev, nil
}

// Apply evaluates op on args without recording anything.
func Apply(op string, args ir.IRObject) (result ir.IRObject, err error) {
	o, ok := registry[op]
	if !ok {
		return nil, &Error{Code: ErrCodeUnknownOp, Op: op, Message: "no such operation"}
	}

	v, err := decodeArgs(op, o.Params, args)
	if err != nil {
		return nil, err
	}

	// With the s1debug build tag, precondition failures inside s1 panic with
	// a *ContractError. Surface those as errors at this boundary.
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*s1.ContractError)
			if !ok {
				panic(r)
			}
			result = nil
			err = &Error{Code: ErrCodeContract, Op: op, Message: ce.Error(), Err: ce}
		}
	}()

	return o.apply(v)
}
