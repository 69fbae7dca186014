package observe

// Hook is the handle for one registration on an Event or Property. It is
// owned by the subscriber that created it; releasing it stops future
// notifications for that callback.
type Hook struct {
	remove func()
}

// Release unregisters the callback. Safe to call any number of times, on a
// nil Hook, and after the owning Event/Property is gone.
func (h *Hook) Release() {
	if h == nil || h.remove == nil {
		return
	}
	h.remove()
}

// Leak detaches the handle so the callback stays registered for the
// lifetime of the Event/Property. Release becomes a no-op afterwards.
func (h *Hook) Leak() {
	if h != nil {
		h.remove = nil
	}
}
