package messages

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a message; fields are stored as JSONB.
func (r *PGRepo) Create(ctx context.Context, msg Message) error {
	fields, err := json.Marshal(msg.Fields)
	if err != nil {
		return fmt.Errorf("encode message fields: %w", err)
	}
	const query = `
INSERT INTO contact_messages (id, session_id, fields, created_at)
VALUES ($1, $2, $3, $4)`
	_, err = r.DB.ExecContext(ctx, query, msg.ID, msg.SessionID, fields, msg.CreatedAt)
	return err
}

// List returns messages ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Message, error) {
	limit, offset = clampPage(limit, offset)
	const query = `
SELECT id, session_id, fields, created_at
FROM contact_messages
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Message{}
	for rows.Next() {
		var (
			msg    Message
			fields []byte
		)
		if err := rows.Scan(&msg.ID, &msg.SessionID, &fields, &msg.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(fields, &msg.Fields); err != nil {
			return nil, fmt.Errorf("decode fields of message %s: %w", msg.ID, err)
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
