// Package store owns the daemon's named property state. It is structured
// into small files by concern:
//
//   - store.go: core Store type, constructor, read/write/watch methods.
//   - config.go: Config and package defaults; NewWithConfig applies defaults.
//   - events.go: Change type and the ChangePublisher seam.
//   - changepub_memory.go: in-memory publisher used by tests.
//   - errors.go: error types and helpers (IsUnknownKey).
//   - metrics.go: prometheus collectors.
//
// Each key maps to an observe.Property[any]; a store-wide
// observe.Event[Change] mirrors every committed write for feed-style
// consumers (SSE watchers, publishers). Per-key hooks and feed hooks fire
// synchronously on the writer's goroutine, in registration order, per the
// observe package contract.
//
// External packages should treat this package as the state-ownership layer
// and use public methods only (New/NewWithConfig, Get, Set, Watch, Status).
package store
