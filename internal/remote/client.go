package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"careerhub/internal/jobs"
	"careerhub/internal/resume"
	"careerhub/internal/shared/metrics"
)

// Operation names used in NetworkError.Op and logs.
const (
	OpJobs           = "jobs"
	OpAIReview       = "ai-review"
	OpGenerateResume = "generate-resume"
	OpContact        = "contact"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 20 << 20

// API is the remote job site API.
type API interface {
	Jobs(ctx context.Context) Result[[]jobs.Job]
	AIReview(ctx context.Context, doc *resume.Document) Result[[]string]
	GenerateResume(ctx context.Context, doc *resume.Document) Result[[]byte]
	Contact(ctx context.Context, form map[string]string) Result[struct{}]
}

// Client calls the remote API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client for baseURL, e.g. http://localhost:5000/api.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Jobs fetches all postings.
func (c *Client) Jobs(ctx context.Context) Result[[]jobs.Job] {
	body, nerr := c.do(ctx, OpJobs, http.MethodGet, "/jobs", nil, "application/json")
	if nerr != nil {
		return Fail[[]jobs.Job](nerr)
	}
	if err := validate(jobsSchema, body); err != nil {
		return Fail[[]jobs.Job](c.failed(OpJobs, 0, err))
	}
	var out []jobs.Job
	if err := json.Unmarshal(body, &out); err != nil {
		return Fail[[]jobs.Job](c.failed(OpJobs, 0, err))
	}
	return Ok(out)
}

type reviewResponse struct {
	Suggestions []string `json:"suggestions"`
}

// AIReview asks for improvement suggestions for doc.
func (c *Client) AIReview(ctx context.Context, doc *resume.Document) Result[[]string] {
	payload, err := json.Marshal(doc)
	if err != nil {
		return Fail[[]string](c.failed(OpAIReview, 0, err))
	}
	body, nerr := c.do(ctx, OpAIReview, http.MethodPost, "/ai-review", payload, "application/json")
	if nerr != nil {
		return Fail[[]string](nerr)
	}
	if err := validate(reviewSchema, body); err != nil {
		return Fail[[]string](c.failed(OpAIReview, 0, err))
	}
	var out reviewResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Fail[[]string](c.failed(OpAIReview, 0, err))
	}
	return Ok(out.Suggestions)
}

// GenerateResume asks the API to render doc as a PDF.
func (c *Client) GenerateResume(ctx context.Context, doc *resume.Document) Result[[]byte] {
	payload, err := json.Marshal(doc)
	if err != nil {
		return Fail[[]byte](c.failed(OpGenerateResume, 0, err))
	}
	body, nerr := c.do(ctx, OpGenerateResume, http.MethodPost, "/generate-resume", payload, "application/pdf")
	if nerr != nil {
		return Fail[[]byte](nerr)
	}
	if len(body) == 0 {
		return Fail[[]byte](c.failed(OpGenerateResume, 0, errors.New("empty document")))
	}
	return Ok(body)
}

// Contact submits the contact form.
func (c *Client) Contact(ctx context.Context, form map[string]string) Result[struct{}] {
	payload, err := json.Marshal(form)
	if err != nil {
		return Fail[struct{}](c.failed(OpContact, 0, err))
	}
	if _, nerr := c.do(ctx, OpContact, http.MethodPost, "/contact", payload, "application/json"); nerr != nil {
		return Fail[struct{}](nerr)
	}
	return Ok(struct{}{})
}

func (c *Client) do(ctx context.Context, op, method, path string, payload []byte, accept string) ([]byte, *NetworkError) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, c.failed(op, 0, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", accept)

	metrics.IncRemoteRequest()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ObserveRemoteDurationMs(metrics.Since(start))
	if err != nil {
		return nil, c.failed(op, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.failed(op, resp.StatusCode, fmt.Errorf("read body: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.failed(op, resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}
	return body, nil
}

func (c *Client) failed(op string, status int, err error) *NetworkError {
	metrics.IncRemoteFailure()
	return &NetworkError{Op: op, StatusCode: status, Err: err}
}

var _ API = (*Client)(nil)
