package resume

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentIsEmpty(t *testing.T) {
	doc := New()
	assert.Equal(t, Personal{}, doc.Personal)
	assert.Empty(t, doc.Summary)
	assert.NotNil(t, doc.Experience)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Skills)
}

func TestUpdatePersonalAcceptsAnyValue(t *testing.T) {
	ed := NewEditor(nil)
	require.NoError(t, ed.UpdatePersonal(FieldEmail, "not-an-email"))
	require.NoError(t, ed.UpdatePersonal(FieldName, "Ada"))
	require.NoError(t, ed.UpdatePersonal(FieldName, ""))

	assert.Equal(t, "not-an-email", ed.Document().Personal.Email)
	assert.Equal(t, "", ed.Document().Personal.Name)
}

func TestUpdatePersonalUnknownField(t *testing.T) {
	ed := NewEditor(nil)
	err := ed.UpdatePersonal(PersonalField("twitter"), "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestAddSkillRejectsEmptyAndDuplicates(t *testing.T) {
	calls := 0
	ed := NewEditor(nil, func(*Document) { calls++ })

	assert.True(t, ed.AddSkill("  Go  "))
	assert.False(t, ed.AddSkill(""))
	assert.False(t, ed.AddSkill("   "))
	assert.False(t, ed.AddSkill("Go"))
	assert.True(t, ed.AddSkill("go"))

	assert.Equal(t, []string{"Go", "go"}, ed.Document().Skills)
	assert.Equal(t, 2, calls)
}

func TestSkillSequencesStayDistinctAndOrdered(t *testing.T) {
	ed := NewEditor(nil)
	for _, s := range []string{"a", "b", "c", "b", "d", "a"} {
		ed.AddSkill(s)
	}
	require.NoError(t, ed.RemoveSkill(1))
	ed.AddSkill("b")
	ed.AddSkill("c")

	skills := ed.Document().Skills
	assert.Equal(t, []string{"a", "c", "d", "b"}, skills)

	seen := map[string]bool{}
	for _, s := range skills {
		assert.False(t, seen[s], "duplicate %q", s)
		seen[s] = true
	}
}

func TestRemoveSkillOutOfRange(t *testing.T) {
	ed := NewEditor(nil)
	ed.AddSkill("Go")
	err := ed.RemoveSkill(3)

	var idxErr *IndexError
	require.True(t, errors.As(err, &idxErr))
	assert.Equal(t, "skills", idxErr.List)
	assert.Equal(t, 3, idxErr.Index)
	assert.Equal(t, 1, idxErr.Len)
	assert.Equal(t, []string{"Go"}, ed.Document().Skills)
}

func TestRemoveExperienceShiftsLaterEntries(t *testing.T) {
	ed := NewEditor(nil)
	for _, title := range []string{"A", "B", "C"} {
		i := ed.AddExperience()
		require.NoError(t, ed.UpdateExperience(i, ExperienceTitle, title))
	}

	require.NoError(t, ed.RemoveExperience(1))

	exp := ed.Document().Experience
	require.Len(t, exp, 2)
	assert.Equal(t, "A", exp[0].Title)
	assert.Equal(t, "C", exp[1].Title)
}

func TestExperienceIndexErrors(t *testing.T) {
	ed := NewEditor(nil)
	calls := 0
	ed.OnChange(func(*Document) { calls++ })

	assert.ErrorIs(t, ed.UpdateExperience(0, ExperienceTitle, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, ed.RemoveExperience(-1), ErrIndexOutOfRange)
	assert.ErrorIs(t, ed.UpdateEducation(2, EducationDegree, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, ed.RemoveEducation(0), ErrIndexOutOfRange)
	assert.Zero(t, calls)
}

func TestEducationOperations(t *testing.T) {
	ed := NewEditor(nil)
	first := ed.AddEducation()
	second := ed.AddEducation()
	require.NoError(t, ed.UpdateEducation(first, EducationSchool, "MIT"))
	require.NoError(t, ed.UpdateEducation(second, EducationDegree, "BSc"))
	assert.ErrorIs(t, ed.UpdateEducation(first, EducationField("gpa"), "4.0"), ErrUnknownField)

	require.NoError(t, ed.RemoveEducation(first))
	edu := ed.Document().Education
	require.Len(t, edu, 1)
	assert.Equal(t, Education{Degree: "BSc"}, edu[0])
}

func TestEveryMutationNotifies(t *testing.T) {
	var seen []string
	ed := NewEditor(nil, func(d *Document) { seen = append(seen, d.Summary) })

	ed.UpdateSummary("one")
	ed.AddExperience()
	ed.UpdateSummary("two")

	assert.Equal(t, []string{"one", "one", "two"}, seen)
}

func TestParseFields(t *testing.T) {
	f, err := ParsePersonalField("linkedin")
	require.NoError(t, err)
	assert.Equal(t, FieldLinkedIn, f)

	ef, err := ParseExperienceField("startDate")
	require.NoError(t, err)
	assert.Equal(t, ExperienceStartDate, ef)

	_, err = ParseEducationField("description")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestCloneIsDeep(t *testing.T) {
	ed := NewEditor(nil)
	ed.AddSkill("Go")
	ed.AddExperience()

	clone := ed.Document().Clone()
	clone.Skills[0] = "Rust"
	clone.Experience[0].Title = "changed"

	assert.Equal(t, "Go", ed.Document().Skills[0])
	assert.Empty(t, ed.Document().Experience[0].Title)
}

func TestExperienceOngoing(t *testing.T) {
	assert.True(t, Experience{}.Ongoing())
	assert.True(t, Experience{EndDate: "Present"}.Ongoing())
	assert.False(t, Experience{EndDate: "2020"}.Ongoing())
}
