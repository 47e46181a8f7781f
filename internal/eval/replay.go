package eval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/arcs/internal/ir"
)

// Source reads back the evaluations of a run in seq order.
// *store.Store implements it.
type Source interface {
	ReadEvaluations(ctx context.Context, runID string) ([]ir.Evaluation, error)
}

// Mismatch describes one recorded evaluation that did not reproduce.
type Mismatch struct {
	Seq      int64  `json:"seq"`
	Op       string `json:"op"`
	Reason   string `json:"reason"`
	Recorded string `json:"recorded,omitempty"`
	Replayed string `json:"replayed,omitempty"`
}

// ReplayResult summarizes a replay.
type ReplayResult struct {
	RunID       string     `json:"run_id"`
	Evaluations int        `json:"evaluations"`
	Mismatches  []Mismatch `json:"mismatches,omitempty"`
}

// OK reports whether every evaluation reproduced.
func (r ReplayResult) OK() bool { return len(r.Mismatches) == 0 }

// Replay re-applies every recorded evaluation of runID and compares each
// recomputed result hash with the recorded one. It also checks that the
// record's ID still matches its content.
//
// A run that does not reproduce is reported through Mismatches, not as an
// error; the error return is reserved for failures reading the source.
func Replay(ctx context.Context, src Source, runID string, logger *slog.Logger) (ReplayResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	evs, err := src.ReadEvaluations(ctx, runID)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("read evaluations for run %s: %w", runID, err)
	}

	res := ReplayResult{RunID: runID, Evaluations: len(evs)}
	var lastSeq int64
	for _, ev := range evs {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if ev.Seq <= lastSeq {
			res.Mismatches = append(res.Mismatches, Mismatch{
				Seq: ev.Seq, Op: ev.Op,
				Reason: fmt.Sprintf("seq not increasing after %d", lastSeq),
			})
		}
		lastSeq = ev.Seq

		wantID, err := ir.EvaluationID(ev.RunID, ev.Op, ev.Args, ev.Seq)
		if err != nil || wantID != ev.ID {
			res.Mismatches = append(res.Mismatches, Mismatch{
				Seq: ev.Seq, Op: ev.Op, Reason: "evaluation id does not match record content",
				Recorded: ev.ID, Replayed: wantID,
			})
			continue
		}

		result, err := Apply(ev.Op, ev.Args)
		if err != nil {
			res.Mismatches = append(res.Mismatches, Mismatch{
				Seq: ev.Seq, Op: ev.Op, Reason: err.Error(), Recorded: ev.ResultHash,
			})
			continue
		}
		got, err := ir.ResultHash(result)
		if err != nil {
			return res, fmt.Errorf("hash replayed result seq=%d: %w", ev.Seq, err)
		}
		if got != ev.ResultHash {
			res.Mismatches = append(res.Mismatches, Mismatch{
				Seq: ev.Seq, Op: ev.Op, Reason: "result hash differs",
				Recorded: ev.ResultHash, Replayed: got,
			})
		}
	}

	logger.Info("replay finished",
		"run_id", runID,
		"evaluations", res.Evaluations,
		"mismatches", len(res.Mismatches))
	return res, nil
}
