package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/arcs/internal/catalog"
	"github.com/roach88/arcs/internal/eval"
	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/s1"
	"github.com/roach88/arcs/internal/store"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Catalog string // catalog directory for $name arguments
	RunID   string // resume an existing run instead of starting one
	Label   string // label for a new run
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <op> [name=value...]",
		Short: "Evaluate one operation",
		Long: `Evaluate one interval operation and print its result.

Interval arguments are written lo:hi, "empty", "full" or $name (with
--catalog). Angle arguments are decimals or pi, -pi, pi/N, -pi/N.

With --db the evaluation is recorded under a new run, or appended to the
run named by --run.

Exit codes:
  0 - Evaluated
  1 - The operation rejected its arguments
  2 - Command error (bad syntax, missing database, etc.)

Examples:
  arcs eval union a=0:1 b=2:3
  arcs eval contains a=3:-3 p=pi
  arcs eval project a=empty p=0
  arcs eval --db ./arcs.db --catalog ./catalog length a=$q1`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd.Context(), opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "catalog directory for $name arguments")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "append to an existing run (requires --db)")
	cmd.Flags().StringVar(&opts.Label, "label", "cli", "label for a new run")

	return cmd
}

func runEval(ctx context.Context, opts *EvalOptions, op string, kvs []string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	cat, err := loadCatalog(opts.Catalog)
	if err != nil {
		return err
	}

	args, err := parseArgs(op, kvs, cat)
	if err != nil {
		_ = formatter.Error(ErrCodeUsage, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	}

	evalOpts := []eval.Option{eval.WithLogger(logger)}
	runID := opts.RunID

	if opts.Database != "" {
		st, err := openStore(opts.RootOptions)
		if err != nil {
			return err
		}
		defer st.Close()

		clock, id, err := prepareRun(ctx, st, opts)
		if err != nil {
			return err
		}
		runID = id
		evalOpts = append(evalOpts, eval.WithRecorder(st), eval.WithClock(clock))
	} else if runID != "" {
		return NewExitError(ExitCommandError, "--run requires --db")
	} else {
		runID = eval.UUIDv7Generator{}.Generate()
	}

	ev, err := eval.New(runID, evalOpts...).Evaluate(ctx, op, args)
	if err != nil {
		var ee *eval.Error
		if errors.As(err, &ee) {
			_ = formatter.Error(string(ee.Code), ee.Error(), nil)
			return WrapExitError(ExitFailure, "evaluation failed", err)
		}
		return WrapExitError(ExitCommandError, "evaluation failed", err)
	}

	if opts.Format == formatJSON {
		return formatter.JSON(CLIResponse{Status: "ok", Data: ev, RunID: runID})
	}
	formatter.Textf("%s", describeResult(ev.Result))
	formatter.VerboseLog("run=%s seq=%d id=%s", ev.RunID, ev.Seq, ev.ID)
	return nil
}

// prepareRun returns the clock and run id for a recorded evaluation: a new
// run, or the run named by --run resumed after its last sequence number.
func prepareRun(ctx context.Context, st *store.Store, opts *EvalOptions) (eval.Sequencer, string, error) {
	if opts.RunID != "" {
		rs, err := st.ReadRun(ctx, opts.RunID)
		if errors.Is(err, store.ErrRunNotFound) {
			return nil, "", NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", opts.RunID))
		}
		if err != nil {
			return nil, "", WrapExitError(ExitCommandError, "failed to read run", err)
		}
		return eval.NewClockAt(rs.LastSeq), rs.ID, nil
	}

	run := ir.Run{
		ID:          eval.UUIDv7Generator{}.Generate(),
		Label:       opts.Label,
		IRVersion:   ir.IRVersion,
		ArcsVersion: ir.ArcsVersion,
	}
	if err := st.WriteRun(ctx, run); err != nil {
		return nil, "", WrapExitError(ExitCommandError, "failed to write run", err)
	}
	return eval.NewClock(), run.ID, nil
}

// parseArgs turns name=value pairs into IR arguments, decoding each value
// by the kind of the parameter it names. Names the operation does not take
// are passed through as strings so the evaluator reports them.
func parseArgs(op string, kvs []string, cat *catalog.Catalog) (ir.IRObject, error) {
	kinds := make(map[string]eval.ParamKind)
	if info, ok := eval.Lookup(op); ok {
		for _, p := range info.Params {
			kinds[p.Name] = p.Kind
		}
	}

	args := ir.IRObject{}
	for _, kv := range kvs {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("argument %q: expected name=value", kv)
		}
		if _, dup := args[name]; dup {
			return nil, fmt.Errorf("argument %q given twice", name)
		}

		switch kinds[name] {
		case eval.KindInterval:
			i, err := parseInterval(value, cat)
			if err != nil {
				return nil, fmt.Errorf("argument %s: %w", name, err)
			}
			args[name] = ir.IntervalValue(i)
		case eval.KindPoint, eval.KindReal:
			x, err := ir.ParseAngle(value)
			if err != nil {
				return nil, fmt.Errorf("argument %s: %w", name, err)
			}
			args[name] = ir.Angle(x)
		default:
			args[name] = ir.IRString(value)
		}
	}
	return args, nil
}

// parseInterval reads lo:hi, empty, full or $name.
func parseInterval(s string, cat *catalog.Catalog) (s1.Interval, error) {
	switch s {
	case "empty":
		return s1.EmptyInterval(), nil
	case "full":
		return s1.FullInterval(), nil
	}
	if name, ok := strings.CutPrefix(s, "$"); ok {
		i, found := cat.Get(name)
		if !found {
			return s1.Interval{}, fmt.Errorf("unknown interval $%s", name)
		}
		return i, nil
	}

	loS, hiS, ok := strings.Cut(s, ":")
	if !ok {
		return s1.Interval{}, fmt.Errorf("interval %q: expected lo:hi, empty, full or $name", s)
	}
	lo, err := ir.ParseAngle(loS)
	if err != nil {
		return s1.Interval{}, err
	}
	hi, err := ir.ParseAngle(hiS)
	if err != nil {
		return s1.Interval{}, err
	}
	return s1.NewInterval(lo, hi)
}

// describeResult renders a result object for text output, keeping the
// recorded decimal form of every angle.
func describeResult(result ir.IRObject) string {
	if obj, ok := result["interval"].(ir.IRObject); ok {
		return fmt.Sprintf("[%s, %s]", obj["lo"], obj["hi"])
	}
	if v, ok := result["value"].(ir.IRString); ok {
		return string(v)
	}
	if b, ok := result["bool"].(ir.IRBool); ok {
		return fmt.Sprintf("%t", bool(b))
	}
	data, _ := ir.MarshalCanonical(result)
	return string(data)
}
