package vars

import (
	"sync"

	"github.com/google/uuid"
)

// ExecutionIDGenerator produces execution identifiers for auto-mode
// callers that do not already have one (shell pipelines starting a new
// chain of steps).
type ExecutionIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 execution identifiers.
//
// UUIDv7 embeds a timestamp in the most significant bits, so record
// files created in auto mode list in creation order.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined execution identifiers for testing.
//
// Tests can provide a known sequence of identifiers and assert exact
// record paths and output.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined identifier.
//
// Panics when all identifiers are consumed - fail-fast for test
// misconfiguration.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all execution ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
