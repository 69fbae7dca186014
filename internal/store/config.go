package store

import "github.com/rs/zerolog"

// Config holds construction parameters for a Store.
// Zero values mean "unspecified" and are replaced by defaults in NewWithConfig.
type Config struct {
	// Seed is the initial key/value state. Seeding does not count as a
	// write: no hooks fire and the revision stays at zero.
	Seed map[string]any
	// Publisher receives every committed change; nil means drop.
	Publisher ChangePublisher
	// Logger used for per-write debug logging; nil disables it.
	Logger *zerolog.Logger
}
