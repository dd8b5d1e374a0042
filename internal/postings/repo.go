// Package postings serves the job listing for the reference API.
package postings

import (
	"context"

	"careerhub/internal/jobs"
)

// Repo lists active job postings.
type Repo interface {
	List(ctx context.Context) ([]jobs.Job, error)
}
