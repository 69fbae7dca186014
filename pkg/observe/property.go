package observe

import "sync"

// Property is an observable mutable value. Every Set stores the new value
// and then notifies all hooked callbacks with it before Set returns. No
// equality check is performed: setting the same value twice notifies twice.
//
// Hooking a Property does not replay the current value; callbacks fire only
// on future writes. Call Get first when the current value is needed.
type Property[T any] struct {
	mu    sync.Mutex
	value T
	subs  registry[T]
}

// NewProperty returns a Property holding initial, with no subscribers.
func NewProperty[T any](initial T) *Property[T] {
	return &Property[T]{value: initial}
}

// Get returns the current value without side effects.
func (p *Property[T]) Get() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Set stores v, then notifies every hooked callback with v in registration
// order. The value mutex is released before callbacks run, so under
// concurrent writers a second Set may begin before this call's
// notifications finish; every notification still carries the value of an
// actual write.
func (p *Property[T]) Set(v T) {
	p.mu.Lock()
	p.value = v
	p.mu.Unlock()
	p.subs.notify(v)
}

// Update applies fn to the current value under the value mutex, stores the
// result, notifies subscribers with it, and returns it. fn must not call
// back into the Property.
func (p *Property[T]) Update(fn func(T) T) T {
	p.mu.Lock()
	v := fn(p.value)
	p.value = v
	p.mu.Unlock()
	p.subs.notify(v)
	return v
}

// Hook registers a change listener and returns its handle. fn is not
// invoked with the current value; only future Sets fire it.
func (p *Property[T]) Hook(fn func(T)) *Hook {
	id := p.subs.register(fn)
	return &Hook{remove: func() { p.subs.remove(id) }}
}

// Len reports the number of registered hooks, bindings included.
func (p *Property[T]) Len() int {
	return p.subs.len()
}

// Bind registers a two-way binding. fn observes writes made by others,
// while writes made through the returned Binding notify every callback
// except fn, so a binding never echoes its own writes back to itself.
func (p *Property[T]) Bind(fn func(T)) *Binding[T] {
	id := p.subs.register(fn)
	return &Binding[T]{prop: p, id: id}
}

// Binding is a read-write subscription to a Property. See Property.Bind.
type Binding[T any] struct {
	prop *Property[T]
	id   uint64
}

// Get returns the property's current value.
func (b *Binding[T]) Get() T {
	return b.prop.Get()
}

// Set stores v and notifies all callbacks except this binding's own.
func (b *Binding[T]) Set(v T) {
	p := b.prop
	p.mu.Lock()
	p.value = v
	p.mu.Unlock()
	p.subs.notifyExcept(v, b.id)
}

// Release removes the binding's callback. Idempotent and nil-safe; the
// binding may still Get and Set afterwards, it just no longer observes
// other writers.
func (b *Binding[T]) Release() {
	if b == nil || b.prop == nil {
		return
	}
	b.prop.subs.remove(b.id)
}
