package postings

import (
	"context"
	"sort"
	"sync"

	"careerhub/internal/jobs"
)

// MemoryRepo keeps postings in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[int]jobs.Job
}

// NewMemoryRepo constructs a MemoryRepo holding seed.
func NewMemoryRepo(seed []jobs.Job) *MemoryRepo {
	r := &MemoryRepo{byID: make(map[int]jobs.Job, len(seed))}
	for _, j := range seed {
		r.byID[j.ID] = j
	}
	return r
}

// Put adds or replaces a posting.
func (r *MemoryRepo) Put(j jobs.Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[j.ID] = j
}

// List returns all postings ordered by id.
func (r *MemoryRepo) List(ctx context.Context) ([]jobs.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]jobs.Job, 0, len(r.byID))
	for _, j := range r.byID {
		j.Skills = append([]string(nil), j.Skills...)
		out = append(out, j)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
