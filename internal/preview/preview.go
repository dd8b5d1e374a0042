// Package preview derives the read-only live preview of a resume.
package preview

import "careerhub/internal/resume"

// Placeholder text shown for empty parts of the document.
const (
	PlaceholderName       = "Your Name"
	PlaceholderEmail      = "your.email@example.com"
	PlaceholderPhone      = "+1 (555) 123-4567"
	PlaceholderSummary    = "Your professional summary will appear here..."
	PlaceholderExperience = "Your experience will appear here..."
	PlaceholderSkills     = "Your skills will appear here..."

	PlaceholderTitle   = "Job Title"
	PlaceholderCompany = "Company"
	PlaceholderStart   = "Start"
	PlaceholderEnd     = "End"
)

// MaxSkills is the number of skills shown in the preview.
const MaxSkills = 6

// Preview is the display representation of a document.
type Preview struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Summary    string           `json:"summary"`
	Experience []ExperienceLine `json:"experience"`
	// ExperienceNote is set instead of Experience when there are no entries.
	ExperienceNote string   `json:"experienceNote,omitempty"`
	Skills         []string `json:"skills"`
	// SkillsNote is set instead of Skills when there are no skills.
	SkillsNote string `json:"skillsNote,omitempty"`
}

// ExperienceLine is one experience entry as shown in the preview.
type ExperienceLine struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Period  string `json:"period"`
}

// Project computes the preview for doc. It has no side effects, so calling it
// twice without an intervening edit yields equal results.
func Project(doc *resume.Document) Preview {
	if doc == nil {
		doc = resume.New()
	}
	p := Preview{
		Name:       or(doc.Personal.Name, PlaceholderName),
		Email:      or(doc.Personal.Email, PlaceholderEmail),
		Phone:      or(doc.Personal.Phone, PlaceholderPhone),
		Summary:    or(doc.Summary, PlaceholderSummary),
		Experience: make([]ExperienceLine, 0, len(doc.Experience)),
		Skills:     []string{},
	}

	for _, exp := range doc.Experience {
		p.Experience = append(p.Experience, ExperienceLine{
			Title:   or(exp.Title, PlaceholderTitle),
			Company: or(exp.Company, PlaceholderCompany),
			Period:  or(exp.StartDate, PlaceholderStart) + " - " + or(exp.EndDate, PlaceholderEnd),
		})
	}
	if len(p.Experience) == 0 {
		p.ExperienceNote = PlaceholderExperience
	}

	n := len(doc.Skills)
	if n > MaxSkills {
		n = MaxSkills
	}
	p.Skills = append(p.Skills, doc.Skills[:n]...)
	if n == 0 {
		p.SkillsNote = PlaceholderSkills
	}
	return p
}

func or(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
