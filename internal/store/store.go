package store

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"propd/pkg/observe"
	"propd/pkg/types"
)

type Store struct {
	mu    sync.RWMutex
	props map[string]*observe.Property[any]
	rev   uint64
	feed  *observe.Event[Change]
	pub   ChangePublisher
	log   zerolog.Logger
}

// New constructs a Store seeded with the given initial state.
func New(seed map[string]any) *Store {
	// Delegate to NewWithConfig to centralize defaults
	return NewWithConfig(Config{Seed: seed})
}

func NewWithConfig(cfg Config) *Store {
	s := &Store{
		props: make(map[string]*observe.Property[any], len(cfg.Seed)),
		feed:  observe.NewEvent[Change](),
		pub:   cfg.Publisher,
		log:   zerolog.Nop(),
	}
	if s.pub == nil {
		s.pub = noopPublisher{}
	}
	if cfg.Logger != nil {
		s.log = *cfg.Logger
	}
	for k, v := range cfg.Seed {
		s.props[k] = observe.NewProperty[any](v)
	}
	return s
}

// SetPublisher installs the change publisher (nil resets to drop).
func (s *Store) SetPublisher(p ChangePublisher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		p = noopPublisher{}
	}
	s.pub = p
}

// Get returns the current value of key.
func (s *Store) Get(key string) (any, error) {
	s.mu.RLock()
	p, ok := s.props[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownKey(key)
	}
	return p.Get(), nil
}

// Set commits value under key, creating the property on first write, and
// returns the committed change. Per-key hooks fire first, then the
// store-wide feed, then the publisher, all synchronously on the caller's
// goroutine. Revisions are assigned under the store lock, so they are
// totally ordered even when notification passes of concurrent writers
// interleave.
func (s *Store) Set(key string, value any) Change {
	s.mu.Lock()
	p, ok := s.props[key]
	if !ok {
		p = observe.NewProperty[any](nil)
		s.props[key] = p
	}
	s.rev++
	c := Change{Key: key, Value: value, Rev: s.rev}
	pub := s.pub
	hooks := p.Len() + s.feed.Len()
	s.mu.Unlock()

	p.Set(value)
	s.feed.Emit(c)
	pub.Publish(c)

	setsTotal.Inc()
	notificationsTotal.Add(float64(hooks))
	revision.Set(float64(c.Rev))
	s.log.Debug().Str("key", key).Uint64("rev", c.Rev).Msg("set")
	return c
}

// Keys returns all keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.props))
	for k := range s.props {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Snapshot returns a copy of the full state plus the revision it was taken at.
func (s *Store) Snapshot() (map[string]any, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.props))
	for k, p := range s.props {
		out[k] = p.Get()
	}
	return out, s.rev
}

// Rev returns the current store-wide revision.
func (s *Store) Rev() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rev
}

// Watch hooks fn into the store-wide change feed. fn runs synchronously on
// every future Set; release the returned hook to stop.
func (s *Store) Watch(fn func(Change)) *observe.Hook {
	h := s.feed.Hook(fn)
	hooksActive.Set(float64(s.totalHooks()))
	return h
}

// WatchKey hooks fn to one existing key. Unknown keys are an error so a
// watcher cannot silently wait on a name that is never written.
func (s *Store) WatchKey(key string, fn func(any)) (*observe.Hook, error) {
	s.mu.RLock()
	p, ok := s.props[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownKey(key)
	}
	h := p.Hook(fn)
	hooksActive.Set(float64(s.totalHooks()))
	return h, nil
}

func (s *Store) totalHooks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := s.feed.Len()
	for _, p := range s.props {
		n += p.Len()
	}
	return n
}

// Ready reports whether the store accepts writes. Always true today; kept
// as the readiness seam for the HTTP layer.
func (s *Store) Ready() bool { return true }

// Status builds a detailed status response for /status.
func (s *Store) Status() types.StatusResponse {
	hooks := s.totalHooks()
	hooksActive.Set(float64(hooks))
	s.mu.RLock()
	defer s.mu.RUnlock()
	return types.StatusResponse{
		Keys:  len(s.props),
		Hooks: hooks,
		Rev:   s.rev,
		Ready: true,
	}
}
