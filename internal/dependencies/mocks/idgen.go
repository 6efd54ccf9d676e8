package mocks

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mcoot/recruitment-api/internal/dependencies/idgen"
)

// MockIDGenerator is a mock implementation of idgen.Generator for testing.
// It is safe for concurrent use, since handlers call it from many goroutines.
type MockIDGenerator struct {
	mu sync.Mutex

	// results is a queue of identifiers to return from NewID
	results []uuid.UUID
	index   int
}

// Ensure MockIDGenerator implements Generator
var _ idgen.Generator = (*MockIDGenerator)(nil)

// NewMockIDGenerator creates a MockIDGenerator preloaded with the given ids
func NewMockIDGenerator(ids ...uuid.UUID) *MockIDGenerator {
	return &MockIDGenerator{results: ids}
}

// NewID returns the next queued id, or a random one once the queue is drained
func (g *MockIDGenerator) NewID() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.index >= len(g.results) {
		return uuid.New()
	}
	result := g.results[g.index]
	g.index++
	return result
}

// Queue adds ids to the result queue
func (g *MockIDGenerator) Queue(ids ...uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.results = append(g.results, ids...)
}

// Calls returns how many queued ids have been consumed
func (g *MockIDGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.index
}

// Reset clears all queued results
func (g *MockIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.results = nil
	g.index = 0
}
