package observe

// Event is a fire-and-forget notification carrying a payload of type T.
// It retains no payload between emissions.
type Event[T any] struct {
	subs registry[T]
}

// NewEvent returns an Event with no subscribers.
func NewEvent[T any]() *Event[T] {
	return &Event[T]{}
}

// Hook registers fn to run on every future Emit and returns its handle.
func (e *Event[T]) Hook(fn func(T)) *Hook {
	id := e.subs.register(fn)
	return &Hook{remove: func() { e.subs.remove(id) }}
}

// Emit synchronously invokes all currently hooked callbacks with v, in
// registration order. See the package doc for the snapshot and
// failure-propagation contract.
func (e *Event[T]) Emit(v T) {
	e.subs.notify(v)
}

// Len reports the number of registered hooks.
func (e *Event[T]) Len() int {
	return e.subs.len()
}
