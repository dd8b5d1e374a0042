package postings

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"careerhub/internal/jobs"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// List returns active postings ordered by id.
func (r *PGRepo) List(ctx context.Context) ([]jobs.Job, error) {
	const query = `
SELECT id, title, company, location, type, salary, posted_label, match_score, description, skills
FROM job_postings
WHERE archived_at IS NULL
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []jobs.Job{}
	for rows.Next() {
		var (
			j      jobs.Job
			skills []byte
		)
		if err := rows.Scan(
			&j.ID,
			&j.Title,
			&j.Company,
			&j.Location,
			&j.Type,
			&j.Salary,
			&j.PostedDate,
			&j.MatchScore,
			&j.Description,
			&skills,
		); err != nil {
			return nil, err
		}
		if len(skills) > 0 {
			if err := json.Unmarshal(skills, &j.Skills); err != nil {
				return nil, fmt.Errorf("decode skills for posting %d: %w", j.ID, err)
			}
		}
		if j.Skills == nil {
			j.Skills = []string{}
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
