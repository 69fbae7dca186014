package types

// ValueResponse is the payload for GET /state/{key}.
type ValueResponse struct {
	// Key of the property.
	Key string `json:"key"`
	// Current value.
	Value any `json:"value"`
	// Store revision at read time.
	Rev uint64 `json:"rev"`
}

// StateResponse is the payload for GET /state: a snapshot of all keys.
type StateResponse struct {
	State map[string]any `json:"state"`
	Rev   uint64         `json:"rev"`
}

// SetRequest is the body for PUT /state/{key}.
type SetRequest struct {
	Value any `json:"value"`
}

// ChangeEvent is one committed write, as streamed by GET /watch.
type ChangeEvent struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
	// Monotonic store-wide revision assigned to this write.
	Rev uint64 `json:"rev"`
}

// StatusResponse summarizes the store for /status.
type StatusResponse struct {
	// Number of keys in the store.
	Keys int `json:"keys"`
	// Total hooks registered across all properties and the change feed.
	Hooks int `json:"hooks"`
	// Current store-wide revision (0 = nothing written since start).
	Rev uint64 `json:"rev"`
	// Whether the store is accepting writes.
	Ready bool `json:"ready"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	Error string `json:"error"`
	// HTTP status code.
	Code int `json:"code"`
}
