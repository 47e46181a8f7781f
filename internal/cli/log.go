package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/store"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions
	Op string // optional - filter to one operation
}

// RunLog is the evaluation log of one run.
type RunLog struct {
	Run         store.RunSummary `json:"run"`
	Evaluations []ir.Evaluation  `json:"evaluations"`
}

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log [run-id]",
		Short: "List recorded runs or the evaluations of one run",
		Long: `Without an argument, list every recorded run in creation order.
With a run id, list that run's evaluations in sequence order.

Examples:
  arcs log --db ./arcs.db
  arcs log --db ./arcs.db 0192f7a4-...
  arcs log --db ./arcs.db 0192f7a4-... --op union --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if len(args) == 0 {
				return runListRuns(ctx, opts, cmd)
			}
			return runShowRun(ctx, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Op, "op", "", "show only evaluations of this operation")

	return cmd
}

func runListRuns(ctx context.Context, opts *LogOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	if opts.Format == formatJSON {
		return formatter.Success(runs)
	}
	if len(runs) == 0 {
		formatter.Textf("No runs found in database.")
		return nil
	}
	for _, r := range runs {
		formatter.Textf("%s  %-16s %d evaluation(s)", r.ID, r.Label, r.Evaluations)
	}
	return nil
}

func runShowRun(ctx context.Context, opts *LogOptions, runID string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.ReadRun(ctx, runID)
	if errors.Is(err, store.ErrRunNotFound) {
		return NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", runID))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}

	evs, err := st.ReadEvaluations(ctx, runID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read evaluations", err)
	}
	if opts.Op != "" {
		filtered := []ir.Evaluation{}
		for _, ev := range evs {
			if ev.Op == opts.Op {
				filtered = append(filtered, ev)
			}
		}
		evs = filtered
	}

	if opts.Format == formatJSON {
		return formatter.Success(RunLog{Run: run, Evaluations: evs})
	}

	formatter.Textf("Run %s (%s), %d evaluation(s)", run.ID, run.Label, run.Evaluations)
	for _, ev := range evs {
		formatter.Textf("  [%d] %s %s = %s", ev.Seq, ev.Op, describeArgs(ev.Args), describeResult(ev.Result))
		formatter.VerboseLog("      id=%s result_hash=%s", ev.ID, ev.ResultHash)
	}
	return nil
}

// describeArgs renders arguments as name=value pairs in canonical key order.
func describeArgs(args ir.IRObject) string {
	var out string
	for i, k := range args.SortedKeys() {
		if i > 0 {
			out += " "
		}
		switch v := args[k].(type) {
		case ir.IRObject:
			out += fmt.Sprintf("%s=%s:%s", k, v["lo"], v["hi"])
		case ir.IRString:
			out += k + "=" + string(v)
		default:
			out += fmt.Sprintf("%s=%v", k, v)
		}
	}
	return out
}
