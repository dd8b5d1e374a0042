package messages

import "context"

// Repo persists contact messages.
type Repo interface {
	Create(ctx context.Context, msg Message) error
	List(ctx context.Context, limit, offset int) ([]Message, error)
}
