// Package review produces improvement suggestions for a resume document.
package review

import (
	"context"
	"errors"

	"careerhub/internal/resume"
)

// MaxSuggestions caps how many suggestions a review returns.
const MaxSuggestions = 5

// ErrNoSuggestions is returned when a provider produced nothing usable.
var ErrNoSuggestions = errors.New("no suggestions produced")

// Reviewer reviews a document.
type Reviewer interface {
	Review(ctx context.Context, doc *resume.Document) ([]string, error)
}
