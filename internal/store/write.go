package store

import (
	"context"
	"fmt"

	"github.com/roach88/arcs/internal/ir"
)

// WriteRun inserts a run. The run's created_seq is one past the highest in
// the database. Writing an existing run id is a no-op.
func (s *Store) WriteRun(ctx context.Context, run ir.Run) error {
	if run.ID == "" {
		return fmt.Errorf("write run: empty id")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, label, ir_version, arcs_version, created_seq)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(created_seq), 0) + 1 FROM runs))
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Label,
		run.IRVersion,
		run.ArcsVersion,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// WriteEvaluation appends an evaluation. The id is content-addressed, so
// rewriting the same evaluation is silently ignored. A different evaluation
// at an occupied (run_id, seq) violates the UNIQUE constraint and is
// returned as an error. The run must already exist.
func (s *Store) WriteEvaluation(ctx context.Context, ev ir.Evaluation) error {
	argsJSON, err := marshalObject("args", ev.Args)
	if err != nil {
		return fmt.Errorf("write evaluation: %w", err)
	}
	resultJSON, err := marshalObject("result", ev.Result)
	if err != nil {
		return fmt.Errorf("write evaluation: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO evaluations (id, run_id, seq, op, args, result, result_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		ev.ID,
		ev.RunID,
		ev.Seq,
		ev.Op,
		argsJSON,
		resultJSON,
		ev.ResultHash,
	)
	if err != nil {
		return fmt.Errorf("write evaluation seq=%d: %w", ev.Seq, err)
	}
	return nil
}
