package generatedresumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores generated resumes in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu        sync.RWMutex
	byID      map[string]GeneratedResume
	bySession map[string][]GeneratedResume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:      make(map[string]GeneratedResume),
		bySession: make(map[string][]GeneratedResume),
	}
}

// Create stores the generated resume.
func (r *MemoryRepo) Create(ctx context.Context, resume GeneratedResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[resume.ID] = resume
	r.bySession[resume.SessionID] = append(r.bySession[resume.SessionID], resume)
	return nil
}

// GetByID returns a generated resume by ID for a session.
func (r *MemoryRepo) GetByID(ctx context.Context, sessionID, generatedResumeID string) (GeneratedResume, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedResume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.byID[generatedResumeID]
	if !ok {
		return GeneratedResume{}, ErrNotFound
	}
	if resume.SessionID != sessionID {
		return GeneratedResume{}, ErrForbidden
	}
	return resume, nil
}

// ListBySession returns generated resumes for a session, newest first, with limit/offset.
func (r *MemoryRepo) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]GeneratedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	sessionResumes := r.bySession[sessionID]
	r.mu.RUnlock()

	if len(sessionResumes) == 0 || offset >= len(sessionResumes) {
		return []GeneratedResume{}, nil
	}

	resumes := make([]GeneratedResume, len(sessionResumes))
	copy(resumes, sessionResumes)
	sort.Slice(resumes, func(i, j int) bool {
		return resumes[i].CreatedAt.After(resumes[j].CreatedAt)
	})

	end := len(resumes)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return resumes[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
