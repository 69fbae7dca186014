// Package observe provides the reactive primitives propd is built on:
// Event (fire-and-forget notification with payload) and Property
// (observable mutable value). Both share one subscriber registry model
// and one delivery contract:
//
//   - Callbacks run synchronously, in registration order, on the
//     goroutine that calls Emit/Set.
//   - Notification passes use snapshot semantics: hooks added during a
//     pass are not invoked in that same pass; hooks released during a
//     pass are skipped if they have not run yet.
//   - The registry lock is never held while a callback executes, so a
//     callback may hook, release, emit, or set reentrantly on the same
//     instance without deadlocking.
//   - A panicking callback aborts the rest of its pass and unwinds to
//     the Emit/Set caller; the registry is left intact for future
//     passes.
//
// All types are safe for concurrent use. A Hook or Binding is owned by
// a single subscriber; Release is idempotent and nil-safe, so dropping
// a handle twice (or after the owning Event/Property is gone) is never
// an error.
package observe
