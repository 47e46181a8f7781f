package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/arcs/internal/eval"
	"github.com/roach88/arcs/internal/store"
)

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <run-id>",
		Short: "Re-evaluate a recorded run and verify determinism",
		Long: `Re-evaluate every recorded evaluation of a run and compare the
recomputed result hashes with the recorded ones.

Exit codes:
  0 - Every evaluation reproduced
  1 - One or more evaluations diverged
  2 - Command error (database not found, unknown run, etc.)

Examples:
  arcs replay --db ./arcs.db 0192f7a4-...
  arcs replay --db ./arcs.db 0192f7a4-... --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context(), rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runReplay(ctx context.Context, opts *RootOptions, runID string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts, cmd)

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	if _, err := st.ReadRun(ctx, runID); err != nil {
		if errors.Is(err, store.ErrRunNotFound) {
			_ = formatter.Error(ErrCodeReplay, fmt.Sprintf("run not found: %s", runID), nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", runID))
		}
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}

	result, err := eval.Replay(ctx, st, runID, newLogger(opts, cmd.ErrOrStderr()))
	if err != nil {
		return WrapExitError(ExitCommandError, "replay failed", err)
	}

	if opts.Format == formatJSON {
		resp := CLIResponse{Status: "ok", Data: result, RunID: runID}
		if !result.OK() {
			resp.Status = "error"
			resp.Error = &CLIError{
				Code:    ErrCodeReplay,
				Message: fmt.Sprintf("%d evaluation(s) diverged", len(result.Mismatches)),
			}
		}
		if err := formatter.JSON(resp); err != nil {
			return err
		}
	} else {
		outputReplayText(formatter, result)
	}

	if !result.OK() {
		return NewExitError(ExitFailure, "replay diverged")
	}
	return nil
}

func outputReplayText(f *OutputFormatter, result eval.ReplayResult) {
	f.Textf("Replay: run %s, %d evaluation(s)", result.RunID, result.Evaluations)
	for _, m := range result.Mismatches {
		f.Textf("✗ seq %d %s: %s", m.Seq, m.Op, m.Reason)
		if m.Recorded != "" || m.Replayed != "" {
			f.Textf("  recorded: %s", m.Recorded)
			f.Textf("  replayed: %s", m.Replayed)
		}
	}
	if result.OK() {
		f.Textf("✓ All evaluations reproduced")
		return
	}
	f.Textf("✗ %d evaluation(s) diverged", len(result.Mismatches))
}
