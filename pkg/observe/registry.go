package observe

import "sync"

// entry pairs a registration id with its callback. Slice order is
// registration order and defines notification order.
type entry[T any] struct {
	id uint64
	fn func(T)
}

// registry is the ordered subscriber list shared by Event and Property.
// Ids come from a monotonic counter starting at 1 and are never reused
// within a registry's lifetime.
type registry[T any] struct {
	mu      sync.Mutex
	nextID  uint64
	entries []entry[T]
}

func (r *registry[T]) register(fn func(T)) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, entry[T]{id: id, fn: fn})
	return id
}

// remove is idempotent; removing an unknown or already-removed id is a no-op.
func (r *registry[T]) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *registry[T]) alive(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].id == id {
			return true
		}
	}
	return false
}

func (r *registry[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *registry[T]) snapshot() []entry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make([]entry[T], len(r.entries))
	copy(snap, r.entries)
	return snap
}

// notify invokes every live callback in registration order with v.
//
// The entry list is snapshotted up front and the lock released before any
// callback runs. Each snapshot entry is re-checked for liveness at its turn
// so a callback released mid-pass does not fire.
func (r *registry[T]) notify(v T) {
	r.notifyExcept(v, 0)
}

// notifyExcept is notify minus the callback registered under excluded.
// Ids start at 1, so 0 excludes nothing.
func (r *registry[T]) notifyExcept(v T, excluded uint64) {
	for _, e := range r.snapshot() {
		if e.id == excluded || !r.alive(e.id) {
			continue
		}
		e.fn(v)
	}
}
