package generatedresumes

import "context"

// Repo defines persistence operations for generated resumes.
type Repo interface {
	Create(ctx context.Context, resume GeneratedResume) error
	GetByID(ctx context.Context, sessionID, generatedResumeID string) (GeneratedResume, error)
	ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]GeneratedResume, error)
}
