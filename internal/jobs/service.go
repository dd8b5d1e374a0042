package jobs

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Listing is a loaded set of postings. Fallback marks the built-in list.
type Listing struct {
	Jobs     []Job `json:"jobs"`
	Fallback bool  `json:"fallback"`
}

// Source loads the full posting list.
type Source interface {
	Load(ctx context.Context) (Listing, error)
}

// Result is a filtered listing ready to display.
type Result struct {
	Query    Query  `json:"query"`
	Cards    []Card `json:"cards"`
	Total    int    `json:"total"`
	Message  string `json:"message,omitempty"`
	Fallback bool   `json:"fallback"`
}

// Defaults for NewService.
const (
	DefaultLoadTimeout = 15 * time.Second
	DefaultFallbackTTL = 5 * time.Second
)

// Service caches the listing for ttl and filters it per request. Concurrent
// loads after expiry share a single call to the source. A fallback listing is
// kept only for fallbackTTL so a recovered source is picked up quickly.
type Service struct {
	source      Source
	ttl         time.Duration
	fallbackTTL time.Duration
	loadTimeout time.Duration
	now         func() time.Time

	group    singleflight.Group
	mu       sync.RWMutex
	cached   *Listing
	loadedAt time.Time
}

// NewService wraps source. A zero ttl loads once and keeps the result.
func NewService(source Source, ttl time.Duration) *Service {
	return &Service{
		source:      source,
		ttl:         ttl,
		fallbackTTL: DefaultFallbackTTL,
		loadTimeout: DefaultLoadTimeout,
		now:         time.Now,
	}
}

func (s *Service) fresh(l *Listing, loadedAt time.Time) bool {
	if l == nil {
		return false
	}
	age := s.now().Sub(loadedAt)
	if l.Fallback {
		return age < s.fallbackTTL
	}
	return s.ttl <= 0 || age < s.ttl
}

// Listing returns the cached listing, loading it when missing or expired.
// The shared load runs detached from ctx. A cancelled caller stops waiting
// and gets ctx.Err().
func (s *Service) Listing(ctx context.Context) (Listing, error) {
	s.mu.RLock()
	cached, loadedAt := s.cached, s.loadedAt
	s.mu.RUnlock()
	if s.fresh(cached, loadedAt) {
		return *cached, nil
	}

	ch := s.group.DoChan("listing", func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()
		listing, err := s.source.Load(loadCtx)
		if err != nil {
			return Listing{}, err
		}
		s.mu.Lock()
		s.cached = &listing
		s.loadedAt = s.now()
		s.mu.Unlock()
		return listing, nil
	})
	select {
	case <-ctx.Done():
		return Listing{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Listing{}, res.Err
		}
		return res.Val.(Listing), nil
	}
}

// Invalidate drops the cached listing.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// Search filters the listing with q.
func (s *Service) Search(ctx context.Context, q Query) (Result, error) {
	listing, err := s.Listing(ctx)
	if err != nil {
		return Result{}, err
	}
	matched := Filter(listing.Jobs, q)
	res := Result{
		Query:    q,
		Cards:    Cards(matched),
		Total:    len(matched),
		Fallback: listing.Fallback,
	}
	if len(matched) == 0 {
		res.Message = NoJobsMessage
	}
	return res, nil
}
