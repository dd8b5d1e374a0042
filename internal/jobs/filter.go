package jobs

import "strings"

// Query holds the search page inputs. Empty fields match everything.
type Query struct {
	Search   string `json:"search" form:"search"`
	Location string `json:"location" form:"location"`
	Type     string `json:"type" form:"type"`
}

// Filter returns the postings matching q in their original order.
// Search matches title or company and location matches location, both as
// case-insensitive substrings; type must match exactly.
func Filter(jobs []Job, q Query) []Job {
	search := strings.ToLower(q.Search)
	location := strings.ToLower(q.Location)

	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if search != "" &&
			!strings.Contains(strings.ToLower(j.Title), search) &&
			!strings.Contains(strings.ToLower(j.Company), search) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			continue
		}
		if q.Type != "" && j.Type != q.Type {
			continue
		}
		out = append(out, j)
	}
	return out
}
