// Package resume holds the resume document and the operations that edit it.
package resume

import "strings"

// PresentMarker is the literal end date used for an ongoing position.
const PresentMarker = "Present"

// Document is the resume being edited in one session.
type Document struct {
	Personal   Personal     `json:"personal"`
	Summary    string       `json:"summary"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []string     `json:"skills"`
}

// Personal holds the contact block at the top of a resume.
type Personal struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Experience is a single work history entry.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Ongoing reports whether the entry has no end date or is marked Present.
func (e Experience) Ongoing() bool {
	end := strings.TrimSpace(e.EndDate)
	return end == "" || end == PresentMarker
}

// Education is a single education entry.
type Education struct {
	Degree    string `json:"degree"`
	School    string `json:"school"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// New returns an empty document with non-nil lists so it serializes as [] rather than null.
func New() *Document {
	return &Document{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []string{},
	}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return New()
	}
	out := &Document{
		Personal:   d.Personal,
		Summary:    d.Summary,
		Experience: append([]Experience{}, d.Experience...),
		Education:  append([]Education{}, d.Education...),
		Skills:     append([]string{}, d.Skills...),
	}
	return out
}

// Normalize replaces nil lists with empty ones. Decoded documents may carry nulls.
func (d *Document) Normalize() {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
}

// HasSkill reports whether skill is present using exact, case-sensitive comparison.
func (d *Document) HasSkill(skill string) bool {
	for _, s := range d.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
