package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSection is returned for a section id outside Sections.
var ErrUnknownSection = errors.New("unknown section")

// Section identifies one editable part of the resume.
type Section string

const (
	SectionPersonal   Section = "personal"
	SectionSummary    Section = "summary"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
)

// Sections lists the builder sections in navigation order.
var Sections = []Section{SectionPersonal, SectionSummary, SectionExperience, SectionEducation, SectionSkills}

// ParseSection validates a section id.
func ParseSection(raw string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Sections {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
}
