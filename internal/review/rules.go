package review

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"careerhub/internal/resume"
)

// suggestion is a candidate produced by a rule. Higher severity and impact
// sort first; id dedupes rules that fire for several entries.
type suggestion struct {
	id       string
	severity int
	impact   int
	text     string
}

var (
	digits      = regexp.MustCompile(`\d`)
	actionVerbs = map[string]bool{
		"achieved": true, "built": true, "created": true, "delivered": true, "designed": true,
		"developed": true, "drove": true, "implemented": true, "improved": true, "increased": true,
		"launched": true, "led": true, "managed": true, "orchestrated": true, "reduced": true,
		"shipped": true, "spearheaded": true, "streamlined": true,
	}
)

const minSkills = 5

// RulesReviewer derives suggestions from the document itself. It is
// deterministic and needs no network access.
type RulesReviewer struct{}

// Review returns at most MaxSuggestions suggestions, most important first.
func (RulesReviewer) Review(ctx context.Context, doc *resume.Document) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = resume.New()
	}

	rules := []func(*resume.Document) []suggestion{
		contactRules,
		summaryRules,
		experienceRules,
		skillsRules,
		educationRules,
		formattingRules,
	}
	var candidates []suggestion
	for _, rule := range rules {
		candidates = append(candidates, rule(doc)...)
	}
	candidates = dedupe(candidates)
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.severity != b.severity {
			return a.severity > b.severity
		}
		return a.impact > b.impact
	})

	out := make([]string, 0, MaxSuggestions)
	for _, c := range candidates {
		if len(out) == MaxSuggestions {
			break
		}
		out = append(out, c.text)
	}
	if len(out) == 0 {
		out = append(out, "Include more industry-specific keywords from job descriptions")
	}
	return out, nil
}

func contactRules(doc *resume.Document) []suggestion {
	var out []suggestion
	p := doc.Personal
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Email) == "" || strings.TrimSpace(p.Phone) == "" {
		out = append(out, suggestion{id: "contact", severity: 3, impact: 3,
			text: "Complete your contact details so recruiters can reach you (name, email and phone)"})
	}
	if strings.TrimSpace(p.LinkedIn) == "" {
		out = append(out, suggestion{id: "linkedin", severity: 1, impact: 1,
			text: "Add a LinkedIn profile URL to strengthen your professional presence"})
	}
	return out
}

func summaryRules(doc *resume.Document) []suggestion {
	summary := strings.TrimSpace(doc.Summary)
	switch {
	case summary == "":
		return []suggestion{{id: "summary", severity: 3, impact: 2,
			text: "Write a professional summary that highlights your key qualifications"}}
	case !digits.MatchString(summary):
		return []suggestion{{id: "summary-metrics", severity: 2, impact: 2,
			text: "Include 2-3 key achievements with specific numbers or percentages in your summary"}}
	}
	return nil
}

func experienceRules(doc *resume.Document) []suggestion {
	if len(doc.Experience) == 0 {
		return []suggestion{{id: "experience", severity: 3, impact: 3,
			text: "Add your work experience, starting with your most recent role"}}
	}
	var out []suggestion
	for _, exp := range doc.Experience {
		desc := strings.TrimSpace(exp.Description)
		if desc == "" {
			out = append(out, suggestion{id: "experience-description", severity: 2, impact: 3,
				text: "Describe your responsibilities and results for each role"})
			continue
		}
		if !digits.MatchString(desc) {
			out = append(out, suggestion{id: "quantify", severity: 2, impact: 3,
				text: `Add quantified achievements to demonstrate impact (e.g., "Increased sales by 25%")`})
		}
		if !startsWithActionVerb(desc) {
			out = append(out, suggestion{id: "action-verbs", severity: 1, impact: 2,
				text: `Use stronger action verbs to start bullet points (e.g., "Spearheaded", "Orchestrated")`})
		}
	}
	return out
}

func skillsRules(doc *resume.Document) []suggestion {
	if len(doc.Skills) < minSkills {
		return []suggestion{{id: "skills", severity: 2, impact: 2,
			text: "Consider adding a technical skills section to highlight relevant technologies"}}
	}
	return nil
}

func educationRules(doc *resume.Document) []suggestion {
	if len(doc.Education) == 0 {
		return []suggestion{{id: "education", severity: 1, impact: 1,
			text: "Add your education history, including degree and school"}}
	}
	return nil
}

// formattingRules flags date fields that mix formats across entries.
func formattingRules(doc *resume.Document) []suggestion {
	shapes := map[string]bool{}
	record := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" || strings.EqualFold(v, resume.PresentMarker) {
			return
		}
		shapes[dateShape(v)] = true
	}
	for _, exp := range doc.Experience {
		record(exp.StartDate)
		record(exp.EndDate)
	}
	for _, edu := range doc.Education {
		record(edu.StartDate)
		record(edu.EndDate)
	}
	if len(shapes) > 1 {
		return []suggestion{{id: "formatting", severity: 1, impact: 1,
			text: "Ensure consistent formatting and spacing throughout the document"}}
	}
	return nil
}

func startsWithActionVerb(desc string) bool {
	desc = strings.TrimLeft(desc, "-•* \t")
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return false
	}
	word := strings.ToLower(strings.Trim(fields[0], ".,;:"))
	return actionVerbs[word]
}

// dateShape maps digits to 9 and each run of letters to a, so "2021-03" and
// "2020-11" share a shape, as do "May 2020" and "March 2021".
func dateShape(v string) string {
	var b strings.Builder
	inWord := false
	for _, r := range v {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isLetter && inWord:
		case isLetter:
			b.WriteByte('a')
		case r >= '0' && r <= '9':
			b.WriteByte('9')
		default:
			b.WriteRune(r)
		}
		inWord = isLetter
	}
	return b.String()
}

func dedupe(items []suggestion) []suggestion {
	seen := make(map[string]bool, len(items))
	out := make([]suggestion, 0, len(items))
	for _, item := range items {
		if seen[item.id] {
			continue
		}
		seen[item.id] = true
		out = append(out, item)
	}
	return out
}

var _ Reviewer = RulesReviewer{}
