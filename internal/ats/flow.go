package ats

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultAnalyzeDelay is how long an analysis takes.
const DefaultAnalyzeDelay = 3 * time.Second

// ErrNoUpload is returned when analysis is requested before a file was accepted.
var ErrNoUpload = errors.New("no resume uploaded")

// Stage is where a Flow currently is.
type Stage string

const (
	StageIdle     Stage = "idle"
	StageUploaded Stage = "uploaded"
	StageAnalyzed Stage = "analyzed"
)

// State is a Flow as shown to the client.
type State struct {
	Stage  Stage   `json:"stage"`
	Upload *Upload `json:"upload,omitempty"`
	Report *Report `json:"report,omitempty"`
}

// Flow is one visitor's upload and analysis. It is safe for concurrent use.
type Flow struct {
	delay time.Duration

	mu     sync.Mutex
	upload *Upload
	report *Report
}

// NewFlow returns an idle flow whose analyses take delay.
func NewFlow(delay time.Duration) *Flow {
	if delay < 0 {
		delay = 0
	}
	return &Flow{delay: delay}
}

// Accept validates u and makes it the current upload. A rejected upload leaves
// the flow unchanged.
func (f *Flow) Accept(u Upload) (State, error) {
	if err := u.Validate(); err != nil {
		return f.State(), err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upload = &u
	f.report = nil
	return f.state(), nil
}

// Analyze waits for the analysis delay and returns the report for the
// current upload. If the upload is replaced or reset meanwhile, the report is
// still returned but not stored.
func (f *Flow) Analyze(ctx context.Context) (Report, error) {
	f.mu.Lock()
	upload := f.upload
	f.mu.Unlock()
	if upload == nil {
		return Report{}, ErrNoUpload
	}

	if f.delay > 0 {
		timer := time.NewTimer(f.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Report{}, ctx.Err()
		case <-timer.C:
		}
	}

	report := MockReport(upload.FileName)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upload == upload {
		f.report = &report
	}
	return report, nil
}

// Reset returns the flow to idle.
func (f *Flow) Reset() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upload = nil
	f.report = nil
	return f.state()
}

// State returns the current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state()
}

func (f *Flow) state() State {
	s := State{Stage: StageIdle}
	if f.upload != nil {
		u := *f.upload
		s.Stage = StageUploaded
		s.Upload = &u
	}
	if f.report != nil {
		r := *f.report
		s.Stage = StageAnalyzed
		s.Report = &r
	}
	return s
}
