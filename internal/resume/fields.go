package resume

import "strings"

// PersonalField names one field of the personal block.
type PersonalField string

const (
	FieldName     PersonalField = "name"
	FieldEmail    PersonalField = "email"
	FieldPhone    PersonalField = "phone"
	FieldLocation PersonalField = "location"
	FieldLinkedIn PersonalField = "linkedin"
	FieldWebsite  PersonalField = "website"
)

// PersonalFields lists the personal fields in form order.
var PersonalFields = []PersonalField{FieldName, FieldEmail, FieldPhone, FieldLocation, FieldLinkedIn, FieldWebsite}

// ExperienceField names one field of an experience entry.
type ExperienceField string

const (
	ExperienceTitle       ExperienceField = "title"
	ExperienceCompany     ExperienceField = "company"
	ExperienceStartDate   ExperienceField = "startDate"
	ExperienceEndDate     ExperienceField = "endDate"
	ExperienceDescription ExperienceField = "description"
)

// ExperienceFields lists the experience fields in form order.
var ExperienceFields = []ExperienceField{ExperienceTitle, ExperienceCompany, ExperienceStartDate, ExperienceEndDate, ExperienceDescription}

// EducationField names one field of an education entry.
type EducationField string

const (
	EducationDegree    EducationField = "degree"
	EducationSchool    EducationField = "school"
	EducationStartDate EducationField = "startDate"
	EducationEndDate   EducationField = "endDate"
)

// EducationFields lists the education fields in form order.
var EducationFields = []EducationField{EducationDegree, EducationSchool, EducationStartDate, EducationEndDate}

// ParsePersonalField maps a wire name to a PersonalField.
func ParsePersonalField(raw string) (PersonalField, error) {
	f := PersonalField(strings.TrimSpace(raw))
	for _, known := range PersonalFields {
		if f == known {
			return f, nil
		}
	}
	return "", &FieldError{Group: "personal", Field: raw}
}

// ParseExperienceField maps a wire name to an ExperienceField.
func ParseExperienceField(raw string) (ExperienceField, error) {
	f := ExperienceField(strings.TrimSpace(raw))
	for _, known := range ExperienceFields {
		if f == known {
			return f, nil
		}
	}
	return "", &FieldError{Group: "experience", Field: raw}
}

// ParseEducationField maps a wire name to an EducationField.
func ParseEducationField(raw string) (EducationField, error) {
	f := EducationField(strings.TrimSpace(raw))
	for _, known := range EducationFields {
		if f == known {
			return f, nil
		}
	}
	return "", &FieldError{Group: "education", Field: raw}
}

func (p *Personal) set(field PersonalField, value string) bool {
	var dst *string
	switch field {
	case FieldName:
		dst = &p.Name
	case FieldEmail:
		dst = &p.Email
	case FieldPhone:
		dst = &p.Phone
	case FieldLocation:
		dst = &p.Location
	case FieldLinkedIn:
		dst = &p.LinkedIn
	case FieldWebsite:
		dst = &p.Website
	default:
		return false
	}
	*dst = value
	return true
}

// Get returns the value of a personal field.
func (p Personal) Get(field PersonalField) string {
	switch field {
	case FieldName:
		return p.Name
	case FieldEmail:
		return p.Email
	case FieldPhone:
		return p.Phone
	case FieldLocation:
		return p.Location
	case FieldLinkedIn:
		return p.LinkedIn
	case FieldWebsite:
		return p.Website
	}
	return ""
}

func (e *Experience) set(field ExperienceField, value string) bool {
	switch field {
	case ExperienceTitle:
		e.Title = value
	case ExperienceCompany:
		e.Company = value
	case ExperienceStartDate:
		e.StartDate = value
	case ExperienceEndDate:
		e.EndDate = value
	case ExperienceDescription:
		e.Description = value
	default:
		return false
	}
	return true
}

// Get returns the value of an experience field.
func (e Experience) Get(field ExperienceField) string {
	switch field {
	case ExperienceTitle:
		return e.Title
	case ExperienceCompany:
		return e.Company
	case ExperienceStartDate:
		return e.StartDate
	case ExperienceEndDate:
		return e.EndDate
	case ExperienceDescription:
		return e.Description
	}
	return ""
}

func (e *Education) set(field EducationField, value string) bool {
	switch field {
	case EducationDegree:
		e.Degree = value
	case EducationSchool:
		e.School = value
	case EducationStartDate:
		e.StartDate = value
	case EducationEndDate:
		e.EndDate = value
	default:
		return false
	}
	return true
}

// Get returns the value of an education field.
func (e Education) Get(field EducationField) string {
	switch field {
	case EducationDegree:
		return e.Degree
	case EducationSchool:
		return e.School
	case EducationStartDate:
		return e.StartDate
	case EducationEndDate:
		return e.EndDate
	}
	return ""
}
