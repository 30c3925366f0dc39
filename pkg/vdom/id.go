package vdom

import (
	"fmt"
	"sync"
)

// IDGenerator hands out unique node ids. Ids look like "v1", "v2", ... and
// are never reused for the generator's lifetime.
type IDGenerator struct {
	mu      sync.Mutex
	counter uint64
}

// NewIDGenerator creates a generator starting at "v1".
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next id.
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("v%d", g.counter)
}

// defaultIDs backs NewNode. A process-wide counter keeps ids unique across
// every tree revision a process ever computes.
var defaultIDs = NewIDGenerator()

// NextID returns the next id from the process-wide generator.
func NextID() string {
	return defaultIDs.Next()
}
