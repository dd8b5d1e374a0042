package resume

import "strings"

// ChangeFunc is called after every mutation that changed the document.
type ChangeFunc func(doc *Document)

// Editor applies editing operations to a document in place.
//
// Editor is not safe for concurrent use; callers serialize access the same way
// a single UI event loop would.
type Editor struct {
	doc       *Document
	listeners []ChangeFunc
}

// NewEditor wraps doc. A nil doc starts from an empty document.
func NewEditor(doc *Document, onChange ...ChangeFunc) *Editor {
	if doc == nil {
		doc = New()
	}
	doc.Normalize()
	return &Editor{doc: doc, listeners: append([]ChangeFunc(nil), onChange...)}
}

// Document returns the live document. Mutating it directly bypasses listeners.
func (e *Editor) Document() *Document {
	return e.doc
}

// OnChange registers fn to run after every successful mutation.
func (e *Editor) OnChange(fn ChangeFunc) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

func (e *Editor) changed() {
	for _, fn := range e.listeners {
		fn(e.doc)
	}
}

// UpdatePersonal replaces one personal field. Any value is accepted.
func (e *Editor) UpdatePersonal(field PersonalField, value string) error {
	if !e.doc.Personal.set(field, value) {
		return &FieldError{Group: "personal", Field: string(field)}
	}
	e.changed()
	return nil
}

// UpdateSummary replaces the summary.
func (e *Editor) UpdateSummary(value string) {
	e.doc.Summary = value
	e.changed()
}

// AddExperience appends an empty entry and returns its index.
func (e *Editor) AddExperience() int {
	e.doc.Experience = append(e.doc.Experience, Experience{})
	e.changed()
	return len(e.doc.Experience) - 1
}

// RemoveExperience deletes the entry at index; later entries shift down by one.
func (e *Editor) RemoveExperience(index int) error {
	if err := checkIndex("experience", index, len(e.doc.Experience)); err != nil {
		return err
	}
	e.doc.Experience = append(e.doc.Experience[:index], e.doc.Experience[index+1:]...)
	e.changed()
	return nil
}

// UpdateExperience replaces one field of the entry at index.
func (e *Editor) UpdateExperience(index int, field ExperienceField, value string) error {
	if err := checkIndex("experience", index, len(e.doc.Experience)); err != nil {
		return err
	}
	if !e.doc.Experience[index].set(field, value) {
		return &FieldError{Group: "experience", Field: string(field)}
	}
	e.changed()
	return nil
}

// AddEducation appends an empty entry and returns its index.
func (e *Editor) AddEducation() int {
	e.doc.Education = append(e.doc.Education, Education{})
	e.changed()
	return len(e.doc.Education) - 1
}

// RemoveEducation deletes the entry at index; later entries shift down by one.
func (e *Editor) RemoveEducation(index int) error {
	if err := checkIndex("education", index, len(e.doc.Education)); err != nil {
		return err
	}
	e.doc.Education = append(e.doc.Education[:index], e.doc.Education[index+1:]...)
	e.changed()
	return nil
}

// UpdateEducation replaces one field of the entry at index.
func (e *Editor) UpdateEducation(index int, field EducationField, value string) error {
	if err := checkIndex("education", index, len(e.doc.Education)); err != nil {
		return err
	}
	if !e.doc.Education[index].set(field, value) {
		return &FieldError{Group: "education", Field: string(field)}
	}
	e.changed()
	return nil
}

// AddSkill trims text and appends it. It returns false without notifying
// listeners when the trimmed text is empty or already present.
func (e *Editor) AddSkill(text string) bool {
	skill := strings.TrimSpace(text)
	if skill == "" || e.doc.HasSkill(skill) {
		return false
	}
	e.doc.Skills = append(e.doc.Skills, skill)
	e.changed()
	return true
}

// RemoveSkill deletes the skill at index.
func (e *Editor) RemoveSkill(index int) error {
	if err := checkIndex("skills", index, len(e.doc.Skills)); err != nil {
		return err
	}
	e.doc.Skills = append(e.doc.Skills[:index], e.doc.Skills[index+1:]...)
	e.changed()
	return nil
}
