package testutil

import (
	"fmt"
	"sync"
)

// DefaultRunID is used when a scenario does not name its run.
const DefaultRunID = "test-run-default"

// FixedRunIDs returns predetermined run ids in order. It satisfies
// eval.RunIDGenerator.
//
// Safe for concurrent use.
type FixedRunIDs struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedRunIDs creates a generator over ids. With no ids it returns
// DefaultRunID forever.
func NewFixedRunIDs(ids ...string) *FixedRunIDs {
	return &FixedRunIDs{ids: ids}
}

// Generate returns the next id. It panics once a non-empty list is
// exhausted, which means a test created more runs than it declared.
func (g *FixedRunIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.ids) == 0 {
		return DefaultRunID
	}
	if g.idx >= len(g.ids) {
		panic(fmt.Sprintf("FixedRunIDs: all %d ids consumed", len(g.ids)))
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
