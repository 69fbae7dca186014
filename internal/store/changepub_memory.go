package store

import "sync"

// MemoryPublisher stores changes in-memory for tests.
type MemoryPublisher struct {
	mu      sync.Mutex
	changes []Change
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (p *MemoryPublisher) Publish(c Change) {
	p.mu.Lock()
	p.changes = append(p.changes, c)
	p.mu.Unlock()
}

func (p *MemoryPublisher) Changes() []Change {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Change, len(p.changes))
	copy(out, p.changes)
	return out
}
