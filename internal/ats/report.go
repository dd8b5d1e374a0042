package ats

import "strings"

// Level buckets a score or grade for display.
type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelFair      Level = "fair"
	LevelPoor      Level = "poor"
)

// ScoreLevel buckets a 0-100 score.
func ScoreLevel(score int) Level {
	switch {
	case score >= 90:
		return LevelExcellent
	case score >= 70:
		return LevelGood
	case score >= 50:
		return LevelFair
	default:
		return LevelPoor
	}
}

// GradeLevel buckets a letter grade by its letter, so "B+" and "B-" rank as "B".
func GradeLevel(grade string) Level {
	grade = strings.ToUpper(strings.TrimSpace(grade))
	if grade == "" {
		return LevelPoor
	}
	switch grade[:1] {
	case "A":
		return LevelExcellent
	case "B":
		return LevelGood
	case "C":
		return LevelFair
	default:
		return LevelPoor
	}
}

// SectionScore is the result for one part of the resume.
type SectionScore struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Status string `json:"status"`
	Level  Level  `json:"level"`
}

// Report is the ATS compatibility result.
type Report struct {
	FileName    string         `json:"fileName"`
	Score       int            `json:"score"`
	Grade       string         `json:"grade"`
	ScoreLevel  Level          `json:"scoreLevel"`
	GradeLevel  Level          `json:"gradeLevel"`
	Sections    []SectionScore `json:"sections"`
	Suggestions []string       `json:"suggestions"`
}

// MockReport returns the fixed report shown for every analysis.
func MockReport(fileName string) Report {
	sections := []SectionScore{
		{Name: "formatting", Score: 85, Status: "good"},
		{Name: "keywords", Score: 72, Status: "warning"},
		{Name: "length", Score: 90, Status: "good"},
		{Name: "contact", Score: 95, Status: "excellent"},
		{Name: "experience", Score: 68, Status: "warning"},
		{Name: "education", Score: 80, Status: "good"},
	}
	for i := range sections {
		sections[i].Level = ScoreLevel(sections[i].Score)
	}
	return Report{
		FileName:   fileName,
		Score:      78,
		Grade:      "B+",
		ScoreLevel: ScoreLevel(78),
		GradeLevel: GradeLevel("B+"),
		Sections:   sections,
		Suggestions: []string{
			"Add more industry-specific keywords from job descriptions",
			"Include quantified achievements (numbers, percentages, dollar amounts)",
			"Use stronger action verbs to start bullet points",
			"Add a skills section with relevant technical skills",
			"Ensure consistent formatting throughout the document",
		},
	}
}
