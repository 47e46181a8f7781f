package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/s1"
)

// createTestStore opens a fresh file-backed store for one test.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestRun(t *testing.T, s *Store, id string) {
	t.Helper()
	run := ir.Run{ID: id, Label: "test " + id, IRVersion: ir.IRVersion, ArcsVersion: ir.ArcsVersion}
	if err := s.WriteRun(context.Background(), run); err != nil {
		t.Fatalf("WriteRun(%s) failed: %v", id, err)
	}
}

// createTestEvaluation builds a complete record for a union of two intervals.
func createTestEvaluation(t *testing.T, runID string, seq int64, lo float64) ir.Evaluation {
	t.Helper()
	a := s1.MustInterval(lo, lo+0.5)
	b := s1.MustInterval(-1, 0)
	args := ir.IRObject{"a": ir.IntervalValue(a), "b": ir.IntervalValue(b)}
	result := ir.IRObject{"interval": ir.IntervalValue(a.Union(b))}

	ev, err := ir.NewEvaluation(runID, seq, "union", args, result)
	if err != nil {
		t.Fatalf("NewEvaluation failed: %v", err)
	}
	return ev
}
