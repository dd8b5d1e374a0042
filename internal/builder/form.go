package builder

import (
	"strconv"

	"careerhub/internal/resume"
	"careerhub/internal/view"
)

// SummaryTip is shown under the summary editor.
const SummaryTip = "Include 2-3 key achievements with specific numbers or percentages to make your summary more impactful."

const summaryPlaceholder = "Write a compelling summary that highlights your key qualifications..."

var personalInputs = []struct {
	field     resume.PersonalField
	label     string
	inputType string
}{
	{resume.FieldName, "Full Name", "text"},
	{resume.FieldEmail, "Email", "email"},
	{resume.FieldPhone, "Phone", "tel"},
	{resume.FieldLocation, "Location", "text"},
	{resume.FieldLinkedIn, "LinkedIn", "url"},
	{resume.FieldWebsite, "Website", "url"},
}

var experienceInputs = []struct {
	field       resume.ExperienceField
	label       string
	inputType   string
	placeholder string
}{
	{resume.ExperienceTitle, "Job Title", "text", ""},
	{resume.ExperienceCompany, "Company", "text", ""},
	{resume.ExperienceStartDate, "Start Date", "month", ""},
	{resume.ExperienceEndDate, "End Date", "text", resume.PresentMarker},
}

var educationInputs = []struct {
	field     resume.EducationField
	label     string
	inputType string
}{
	{resume.EducationDegree, "Degree", "text"},
	{resume.EducationSchool, "School", "text"},
	{resume.EducationStartDate, "Start Date", "month"},
	{resume.EducationEndDate, "End Date", "month"},
}

// Render builds the edit form for section from the editor's current document
// and returns it with the handlers for every action the form references.
func Render(section Section, ed *resume.Editor) (*view.Node, *view.Registry, error) {
	reg := view.NewRegistry()
	var form *view.Node
	switch section {
	case SectionPersonal:
		form = renderPersonal(ed, reg)
	case SectionSummary:
		form = renderSummary(ed, reg)
	case SectionExperience:
		form = renderExperience(ed, reg)
	case SectionEducation:
		form = renderEducation(ed, reg)
	case SectionSkills:
		form = renderSkills(ed, reg)
	default:
		return nil, nil, ErrUnknownSection
	}
	return form, reg, nil
}

func renderPersonal(ed *resume.Editor, reg *view.Registry) *view.Node {
	p := ed.Document().Personal
	grid := &view.Node{Kind: view.KindGrid}
	for _, in := range personalInputs {
		field := in.field
		action := "personal." + string(field)
		grid.Append(&view.Node{
			Kind:      view.KindField,
			ID:        string(field),
			Label:     in.label,
			InputType: in.inputType,
			Value:     p.Get(field),
			Action:    action,
			Event:     view.EventChange,
		})
		reg.Register(action, func(v string) error {
			return ed.UpdatePersonal(field, v)
		})
	}
	return section(SectionPersonal, "Personal Information").Append(grid)
}

func renderSummary(ed *resume.Editor, reg *view.Registry) *view.Node {
	reg.Register("summary", func(v string) error {
		ed.UpdateSummary(v)
		return nil
	})
	return section(SectionSummary, "Professional Summary").Append(
		&view.Node{
			Kind:        view.KindTextarea,
			ID:          "summary",
			Label:       "Summary",
			Rows:        6,
			Placeholder: summaryPlaceholder,
			Value:       ed.Document().Summary,
			Action:      "summary",
			Event:       view.EventChange,
		},
		&view.Node{Kind: view.KindTip, Label: "AI Tip", Text: SummaryTip},
	)
}

func renderExperience(ed *resume.Editor, reg *view.Registry) *view.Node {
	reg.Register("experience.add", func(string) error {
		ed.AddExperience()
		return nil
	})
	list := &view.Node{Kind: view.KindList, ID: "experience-list"}
	for i, exp := range ed.Document().Experience {
		index := i
		prefix := "experience." + strconv.Itoa(index) + "."
		item := &view.Node{Kind: view.KindItem, ID: "experience-" + strconv.Itoa(index)}
		item.Append(removeButton(prefix+"remove", reg, func() error { return ed.RemoveExperience(index) }))

		grid := &view.Node{Kind: view.KindGrid}
		for _, in := range experienceInputs {
			field := in.field
			grid.Append(&view.Node{
				Kind:        view.KindField,
				ID:          prefix + string(field),
				Label:       in.label,
				InputType:   in.inputType,
				Placeholder: in.placeholder,
				Value:       exp.Get(field),
				Action:      prefix + string(field),
				Event:       view.EventChange,
			})
			reg.Register(prefix+string(field), func(v string) error {
				return ed.UpdateExperience(index, field, v)
			})
		}
		item.Append(grid, &view.Node{
			Kind:   view.KindTextarea,
			ID:     prefix + string(resume.ExperienceDescription),
			Label:  "Description",
			Rows:   4,
			Value:  exp.Description,
			Action: prefix + string(resume.ExperienceDescription),
			Event:  view.EventChange,
		})
		reg.Register(prefix+string(resume.ExperienceDescription), func(v string) error {
			return ed.UpdateExperience(index, resume.ExperienceDescription, v)
		})
		list.Append(item)
	}
	return section(SectionExperience, "Work Experience").Append(
		&view.Node{Kind: view.KindButton, ID: "experience-add", Text: "Add Experience", Action: "experience.add", Event: view.EventClick},
		list,
	)
}

func renderEducation(ed *resume.Editor, reg *view.Registry) *view.Node {
	reg.Register("education.add", func(string) error {
		ed.AddEducation()
		return nil
	})
	list := &view.Node{Kind: view.KindList, ID: "education-list"}
	for i, edu := range ed.Document().Education {
		index := i
		prefix := "education." + strconv.Itoa(index) + "."
		item := &view.Node{Kind: view.KindItem, ID: "education-" + strconv.Itoa(index)}
		item.Append(removeButton(prefix+"remove", reg, func() error { return ed.RemoveEducation(index) }))

		grid := &view.Node{Kind: view.KindGrid}
		for _, in := range educationInputs {
			field := in.field
			grid.Append(&view.Node{
				Kind:      view.KindField,
				ID:        prefix + string(field),
				Label:     in.label,
				InputType: in.inputType,
				Value:     edu.Get(field),
				Action:    prefix + string(field),
				Event:     view.EventChange,
			})
			reg.Register(prefix+string(field), func(v string) error {
				return ed.UpdateEducation(index, field, v)
			})
		}
		list.Append(item.Append(grid))
	}
	return section(SectionEducation, "Education").Append(
		&view.Node{Kind: view.KindButton, ID: "education-add", Text: "Add Education", Action: "education.add", Event: view.EventClick},
		list,
	)
}

func renderSkills(ed *resume.Editor, reg *view.Registry) *view.Node {
	reg.Register("skills.add", func(v string) error {
		ed.AddSkill(v)
		return nil
	})
	list := &view.Node{Kind: view.KindList, ID: "skills-container"}
	for i, skill := range ed.Document().Skills {
		index := i
		chip := &view.Node{Kind: view.KindChip, ID: "skill-" + strconv.Itoa(index), Text: skill}
		chip.Append(removeButton("skills."+strconv.Itoa(index)+".remove", reg, func() error { return ed.RemoveSkill(index) }))
		list.Append(chip)
	}
	return section(SectionSkills, "Skills").Append(
		list,
		&view.Node{
			Kind:        view.KindField,
			ID:          "skill-input",
			Label:       "Add Skills",
			InputType:   "text",
			Placeholder: "Type a skill and press Enter",
			Action:      "skills.add",
			Event:       view.EventSubmit,
		},
	)
}

func section(id Section, heading string) *view.Node {
	return (&view.Node{Kind: view.KindSection, ID: string(id)}).Append(
		&view.Node{Kind: view.KindHeading, Text: heading},
	)
}

func removeButton(action string, reg *view.Registry, fn func() error) *view.Node {
	reg.Register(action, func(string) error { return fn() })
	return &view.Node{Kind: view.KindButton, Text: "×", Action: action, Event: view.EventClick}
}
