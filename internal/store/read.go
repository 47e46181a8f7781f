package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/arcs/internal/ir"
)

// ErrRunNotFound is returned by ReadRun for an unknown id.
var ErrRunNotFound = errors.New("run not found")

// RunSummary is a run plus the number of evaluations recorded for it.
type RunSummary struct {
	ir.Run
	CreatedSeq  int64 `json:"created_seq"`
	Evaluations int   `json:"evaluations"`
	LastSeq     int64 `json:"last_seq"`
}

// ReadRun returns the run with the given id, or an error wrapping
// ErrRunNotFound.
func (s *Store) ReadRun(ctx context.Context, id string) (RunSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT r.id, r.label, r.ir_version, r.arcs_version, r.created_seq,
		       COUNT(e.id), COALESCE(MAX(e.seq), 0)
		FROM runs r
		LEFT JOIN evaluations e ON e.run_id = r.id
		WHERE r.id = ?
		GROUP BY r.id
	`, id)

	rs, err := scanRunSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunSummary{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return RunSummary{}, fmt.Errorf("read run %s: %w", id, err)
	}
	return rs, nil
}

// ListRuns returns every run ordered by created_seq.
// Returns an empty slice (not nil) when there are none.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.label, r.ir_version, r.arcs_version, r.created_seq,
		       COUNT(e.id), COALESCE(MAX(e.seq), 0)
		FROM runs r
		LEFT JOIN evaluations e ON e.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_seq ASC, r.id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		rs, err := scanRunSummary(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadEvaluations returns the evaluations of a run in seq order.
// Returns an empty slice (not nil) for a run with no evaluations.
func (s *Store) ReadEvaluations(ctx context.Context, runID string) ([]ir.Evaluation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, seq, op, args, result, result_hash
		FROM evaluations
		WHERE run_id = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	evs := []ir.Evaluation{}
	for rows.Next() {
		ev, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		evs = append(evs, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluations: %w", err)
	}
	return evs, nil
}

// CountByOp returns how many evaluations of each operation a run holds.
func (s *Store) CountByOp(ctx context.Context, runID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT op, COUNT(*)
		FROM evaluations
		WHERE run_id = ?
		GROUP BY op
		ORDER BY op COLLATE BINARY ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query op counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var op string
		var n int
		if err := rows.Scan(&op, &n); err != nil {
			return nil, fmt.Errorf("scan op count: %w", err)
		}
		counts[op] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate op counts: %w", err)
	}
	return counts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRunSummary(sc scanner) (RunSummary, error) {
	var rs RunSummary
	err := sc.Scan(
		&rs.ID,
		&rs.Label,
		&rs.IRVersion,
		&rs.ArcsVersion,
		&rs.CreatedSeq,
		&rs.Evaluations,
		&rs.LastSeq,
	)
	if err != nil {
		return RunSummary{}, err
	}
	return rs, nil
}

func scanEvaluation(sc scanner) (ir.Evaluation, error) {
	var ev ir.Evaluation
	var argsJSON, resultJSON string
	err := sc.Scan(
		&ev.ID,
		&ev.RunID,
		&ev.Seq,
		&ev.Op,
		&argsJSON,
		&resultJSON,
		&ev.ResultHash,
	)
	if err != nil {
		return ir.Evaluation{}, fmt.Errorf("scan evaluation: %w", err)
	}

	if ev.Args, err = unmarshalObject("args", argsJSON); err != nil {
		return ir.Evaluation{}, err
	}
	if ev.Result, err = unmarshalObject("result", resultJSON); err != nil {
		return ir.Evaluation{}, err
	}
	return ev, nil
}
