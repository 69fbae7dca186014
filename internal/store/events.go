package store

// Change describes one committed write.
// Minimal and stable: key + value plus the store-wide revision of the write.
type Change struct {
	Key   string
	Value any
	Rev   uint64
}

// ChangePublisher receives changes from the store. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type ChangePublisher interface {
	Publish(Change)
}

// noopPublisher is the default; it drops changes.
type noopPublisher struct{}

func (noopPublisher) Publish(Change) {}
