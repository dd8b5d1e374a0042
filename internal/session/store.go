// Package session keeps per-visitor state in memory for the life of a session.
package session

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// Store holds one value per session id and drops values idle longer than ttl.
// It is safe for concurrent use.
type Store[T any] struct {
	mu      sync.Mutex
	items   map[string]*entry[T]
	factory func(id string) T
	ttl     time.Duration
	now     func() time.Time
	onEvict func(id string, value T)
	inUse   func(value T) bool
}

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithClock overrides time.Now, for tests.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(s *Store[T]) { s.now = now }
}

// WithEvict registers fn to run for every value removed by Sweep or Delete.
func WithEvict[T any](fn func(id string, value T)) Option[T] {
	return func(s *Store[T]) { s.onEvict = fn }
}

// WithInUse registers fn to report values that are still in use, such as a
// workspace with an open stream. Sweep keeps them and treats them as active.
func WithInUse[T any](fn func(value T) bool) Option[T] {
	return func(s *Store[T]) { s.inUse = fn }
}

// NewStore creates a store that builds missing values with factory.
// A ttl of zero disables expiry.
func NewStore[T any](ttl time.Duration, factory func(id string) T, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		items:   make(map[string]*entry[T]),
		factory: factory,
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value for id, creating it on first use, and marks it active.
func (s *Store[T]) Get(id string) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		e = &entry[T]{value: s.factory(id)}
		s.items[id] = e
	}
	e.lastSeen = s.now()
	return e.value
}

// Touch marks id active without creating it. It reports whether id exists.
func (s *Store[T]) Touch(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if ok {
		e.lastSeen = s.now()
	}
	return ok
}

// Peek returns the value for id without creating or touching it.
func (s *Store[T]) Peek(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Delete removes id.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	e, ok := s.items[id]
	delete(s.items, id)
	s.mu.Unlock()
	if ok && s.onEvict != nil {
		s.onEvict(id, e.value)
	}
}

// Len returns the number of live sessions.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sweep removes sessions idle for longer than the ttl and returns how many were removed.
func (s *Store[T]) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	now := s.now()
	cutoff := now.Add(-s.ttl)
	s.mu.Lock()
	var evicted []*entry[T]
	var ids []string
	for id, e := range s.items {
		if !e.lastSeen.Before(cutoff) {
			continue
		}
		if s.inUse != nil && s.inUse(e.value) {
			e.lastSeen = now
			continue
		}
		evicted = append(evicted, e)
		ids = append(ids, id)
		delete(s.items, id)
	}
	s.mu.Unlock()
	if s.onEvict != nil {
		for i, e := range evicted {
			s.onEvict(ids[i], e.value)
		}
	}
	return len(evicted)
}

// Run sweeps every interval until ctx is done.
func (s *Store[T]) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
