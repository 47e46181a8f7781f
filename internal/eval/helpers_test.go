package eval

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/roach88/arcs/internal/ir"
	"github.com/roach88/arcs/internal/s1"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func iv(lo, hi float64) ir.IRObject {
	return ir.IntervalValue(s1.MustInterval(lo, hi))
}

// memLog is an in-memory Recorder and Source.
type memLog struct {
	mu   sync.Mutex
	evs  []ir.Evaluation
	fail error
}

func (m *memLog) WriteEvaluation(_ context.Context, ev ir.Evaluation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.evs = append(m.evs, ev)
	return nil
}

func (m *memLog) ReadEvaluations(_ context.Context, runID string) ([]ir.Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	var out []ir.Evaluation
	for _, ev := range m.evs {
		if ev.RunID == runID {
			out = append(out, ev)
		}
	}
	return out, nil
}

var errBoom = errors.New("boom")
