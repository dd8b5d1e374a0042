package messages

import (
	"context"
	"sync"
)

// MemoryRepo keeps messages in insertion order.
type MemoryRepo struct {
	mu   sync.RWMutex
	msgs []Message
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, cloneMessage(msg))
	return nil
}

// List returns messages newest first.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Message{}
	for i := len(r.msgs) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, cloneMessage(r.msgs[i]))
	}
	return out, nil
}

func cloneMessage(m Message) Message {
	fields := make(map[string]string, len(m.Fields))
	for k, v := range m.Fields {
		fields[k] = v
	}
	m.Fields = fields
	return m
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

var _ Repo = (*MemoryRepo)(nil)
