package generatedresumes

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"careerhub/internal/resume"
	"careerhub/internal/shared/storage/object"
	"careerhub/internal/shared/telemetry"
)

// FileName is the name generated resumes are stored and downloaded under.
const FileName = "resume.pdf"

// Service contains business logic for generated resumes.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
	Now   func() time.Time
}

// Generate renders doc, stores the PDF under the session and records it.
func (s *Service) Generate(ctx context.Context, sessionID string, doc *resume.Document) (GeneratedResume, []byte, error) {
	if strings.TrimSpace(sessionID) == "" || doc == nil {
		return GeneratedResume{}, nil, ErrInvalidInput
	}
	if s.Repo == nil || s.Store == nil {
		return GeneratedResume{}, nil, errors.New("missing dependencies")
	}

	data, err := RenderPDF(doc)
	if err != nil {
		return GeneratedResume{}, nil, err
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, sessionID, FileName, bytes.NewReader(data))
	if err != nil {
		return GeneratedResume{}, nil, err
	}

	rec := GeneratedResume{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		OwnerName:  strings.TrimSpace(doc.Personal.Name),
		StorageKey: storageKey,
		MimeType:   mimeType,
		SizeBytes:  size,
		CreatedAt:  s.now(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return GeneratedResume{}, nil, err
	}

	telemetry.Info("generated_resume.created", map[string]any{
		"id":         rec.ID,
		"session_id": sessionID,
		"size_bytes": size,
	})
	return rec, data, nil
}

// Get returns a generated resume by ID for a session.
func (s *Service) Get(ctx context.Context, sessionID, generatedResumeID string) (GeneratedResume, error) {
	if sessionID == "" || generatedResumeID == "" {
		return GeneratedResume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, sessionID, generatedResumeID)
}

// Open returns the stored PDF for a generated resume.
func (s *Service) Open(ctx context.Context, sessionID, generatedResumeID string) (GeneratedResume, io.ReadCloser, error) {
	rec, err := s.Get(ctx, sessionID, generatedResumeID)
	if err != nil {
		return GeneratedResume{}, nil, err
	}
	rc, err := s.Store.Open(ctx, rec.StorageKey)
	if err != nil {
		return GeneratedResume{}, nil, err
	}
	return rec, rc, nil
}

// List returns generated resumes for a session ordered newest-first.
func (s *Service) List(ctx context.Context, sessionID string, limit, offset int) ([]GeneratedResume, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListBySession(ctx, sessionID, limit, offset)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
