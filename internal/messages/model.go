package messages

import (
	"errors"
	"time"
)

// ErrInvalidInput is returned when a message has no usable fields.
var ErrInvalidInput = errors.New("invalid input")

// Message is one contact form submission received by the API.
type Message struct {
	ID        string            `json:"id"`
	SessionID string            `json:"-"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"createdAt"`
}
