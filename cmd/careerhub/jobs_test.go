package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"careerhub/internal/jobs"
)

type staticSource struct{ listing jobs.Listing }

func (s staticSource) Load(context.Context) (jobs.Listing, error) { return s.listing, nil }

func TestPrintJobsTable(t *testing.T) {
	svc := jobs.NewService(staticSource{jobs.Listing{Jobs: jobs.MockJobs()}}, 0)
	var out bytes.Buffer
	if err := printJobs(context.Background(), &out, svc, jobs.Query{Type: "Full-time"}); err != nil {
		t.Fatalf("printJobs: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 || !strings.HasPrefix(lines[0], "ID") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	for _, l := range lines[1:] {
		if !strings.Contains(l, "Full-time") {
			t.Fatalf("row does not match type filter: %q", l)
		}
	}
}

func TestPrintJobsEmptyAndFallback(t *testing.T) {
	svc := jobs.NewService(staticSource{jobs.Listing{Jobs: jobs.MockJobs(), Fallback: true}}, 0)
	var out bytes.Buffer
	if err := printJobs(context.Background(), &out, svc, jobs.Query{Search: "no such company"}); err != nil {
		t.Fatalf("printJobs: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "sample postings") || !strings.Contains(got, jobs.NoJobsMessage) {
		t.Fatalf("unexpected output:\n%s", got)
	}
}
