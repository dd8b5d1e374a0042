package remote

import (
	"context"
	"errors"

	"careerhub/internal/jobs"
	"careerhub/internal/resume"
	"careerhub/internal/shared/metrics"
	"careerhub/internal/shared/telemetry"
)

// User-facing messages for remote operations.
const (
	ContactThanks              = "Thank you for your message! We'll get back to you soon."
	DownloadUnavailableMessage = "Resume download is not available. Please try again later."
)

// ErrDownloadUnavailable is returned when the resume document could not be generated.
var ErrDownloadUnavailable = errors.New(DownloadUnavailableMessage)

// MockSuggestions returns the built-in review suggestions.
func MockSuggestions() []string {
	return []string{
		`Add quantified achievements to demonstrate impact (e.g., "Increased sales by 25%")`,
		"Include more industry-specific keywords from job descriptions",
		`Use stronger action verbs to start bullet points (e.g., "Spearheaded", "Orchestrated")`,
		"Consider adding a technical skills section to highlight relevant technologies",
		"Ensure consistent formatting and spacing throughout the document",
	}
}

func fellBack(err *NetworkError) {
	metrics.IncRemoteFallback()
	telemetry.Warn("remote.fallback", map[string]any{
		"op":     err.Op,
		"status": err.StatusCode,
		"error":  err.Err,
	})
}

// JobsAdapter loads postings, substituting the built-in list on failure.
type JobsAdapter struct {
	API API
}

// Load never fails; Listing.Fallback marks substituted data.
func (a JobsAdapter) Load(ctx context.Context) (jobs.Listing, error) {
	res := a.API.Jobs(ctx)
	if !res.OK() {
		fellBack(res.Err)
	}
	list, fallback := res.Or(jobs.MockJobs())
	return jobs.Listing{Jobs: list, Fallback: fallback}, nil
}

// ReviewAdapter requests AI suggestions, substituting the built-in list on failure.
type ReviewAdapter struct {
	API API
}

// Review returns the suggestions and whether they are the built-in ones.
func (a ReviewAdapter) Review(ctx context.Context, doc *resume.Document) ([]string, bool) {
	res := a.API.AIReview(ctx, doc)
	if !res.OK() {
		fellBack(res.Err)
	}
	return res.Or(MockSuggestions())
}

// DownloadAdapter requests the rendered resume. It has no fallback document.
type DownloadAdapter struct {
	API API
}

// Download returns the PDF bytes, or an error wrapping ErrDownloadUnavailable.
func (a DownloadAdapter) Download(ctx context.Context, doc *resume.Document) ([]byte, error) {
	res := a.API.GenerateResume(ctx, doc)
	if !res.OK() {
		telemetry.Warn("remote.download_unavailable", map[string]any{
			"status": res.Err.StatusCode,
			"error":  res.Err.Err,
		})
		return nil, errors.Join(ErrDownloadUnavailable, res.Err)
	}
	return res.Value, nil
}

// ContactAdapter submits contact messages and always thanks the user.
type ContactAdapter struct {
	API API
}

// Submit returns the acknowledgement and whether the message was actually delivered.
func (a ContactAdapter) Submit(ctx context.Context, form map[string]string) (string, bool) {
	res := a.API.Contact(ctx, form)
	if !res.OK() {
		fellBack(res.Err)
	}
	return ContactThanks, res.OK()
}
