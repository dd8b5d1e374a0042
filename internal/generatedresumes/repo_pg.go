package generatedresumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a generated resume.
func (r *PGRepo) Create(ctx context.Context, resume GeneratedResume) error {
	const query = `
INSERT INTO generated_resumes (
    id, session_id, owner_name, storage_key, mime_type, size_bytes, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.SessionID,
		resume.OwnerName,
		resume.StorageKey,
		resume.MimeType,
		resume.SizeBytes,
		resume.CreatedAt,
	)
	return err
}

// GetByID returns a generated resume by ID for a session.
func (r *PGRepo) GetByID(ctx context.Context, sessionID, generatedResumeID string) (GeneratedResume, error) {
	const query = `
SELECT id, session_id, owner_name, storage_key, mime_type, size_bytes, created_at
FROM generated_resumes
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var resume GeneratedResume
	err := r.DB.QueryRowContext(ctx, query, generatedResumeID).Scan(
		&resume.ID,
		&resume.SessionID,
		&resume.OwnerName,
		&resume.StorageKey,
		&resume.MimeType,
		&resume.SizeBytes,
		&resume.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GeneratedResume{}, ErrNotFound
		}
		return GeneratedResume{}, err
	}
	if resume.SessionID != sessionID {
		return GeneratedResume{}, ErrForbidden
	}
	return resume, nil
}

// ListBySession lists generated resumes ordered newest-first.
func (r *PGRepo) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]GeneratedResume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, session_id, owner_name, storage_key, mime_type, size_bytes, created_at
FROM generated_resumes
WHERE session_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GeneratedResume{}
	for rows.Next() {
		var resume GeneratedResume
		if err := rows.Scan(
			&resume.ID,
			&resume.SessionID,
			&resume.OwnerName,
			&resume.StorageKey,
			&resume.MimeType,
			&resume.SizeBytes,
			&resume.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
