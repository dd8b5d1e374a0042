// Package jobs lists job postings and filters them for the search page.
package jobs

// NoJobsMessage is shown when a search matches nothing.
const NoJobsMessage = "No jobs found matching your criteria."

// CardSkills is the number of skills shown on a job card.
const CardSkills = 5

// Job is a single posting.
type Job struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Salary      string   `json:"salary"`
	PostedDate  string   `json:"postedDate"`
	MatchScore  int      `json:"matchScore"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// Match levels for a posting's match score.
const (
	MatchHigh   = "high"
	MatchMedium = "medium"
	MatchLow    = "low"
)

// MatchLevel buckets a match score for display.
func MatchLevel(score int) string {
	switch {
	case score >= 90:
		return MatchHigh
	case score >= 70:
		return MatchMedium
	default:
		return MatchLow
	}
}

// Card is a posting prepared for the results list.
type Card struct {
	Job
	MatchLevel string `json:"matchLevel"`
}

// Cards converts postings to cards, keeping at most CardSkills skills each.
func Cards(jobs []Job) []Card {
	out := make([]Card, 0, len(jobs))
	for _, j := range jobs {
		n := len(j.Skills)
		if n > CardSkills {
			n = CardSkills
		}
		j.Skills = append([]string(nil), j.Skills[:n]...)
		out = append(out, Card{Job: j, MatchLevel: MatchLevel(j.MatchScore)})
	}
	return out
}

// MockJobs returns the built-in postings used when the remote listing is unavailable.
// Each call returns a fresh slice.
func MockJobs() []Job {
	return []Job{
		{
			ID:          1,
			Title:       "Senior Frontend Developer",
			Company:     "TechCorp Inc.",
			Location:    "San Francisco, CA",
			Type:        "Full-time",
			Salary:      "$120,000 - $150,000",
			PostedDate:  "2 days ago",
			MatchScore:  92,
			Description: "We are looking for a Senior Frontend Developer to join our growing team. You will be responsible for building user-facing features using React, TypeScript, and modern web technologies.",
			Skills:      []string{"React", "TypeScript", "CSS", "JavaScript", "Redux", "GraphQL", "Jest", "Webpack"},
		},
		{
			ID:          2,
			Title:       "Full Stack Engineer",
			Company:     "StartupXYZ",
			Location:    "Remote",
			Type:        "Full-time",
			Salary:      "$100,000 - $130,000",
			PostedDate:  "1 week ago",
			MatchScore:  85,
			Description: "Join our fast-growing startup as a Full Stack Engineer. Work on both frontend and backend systems, building scalable applications that serve millions of users.",
			Skills:      []string{"Node.js", "React", "MongoDB", "AWS", "Docker", "TypeScript", "Express", "Git"},
		},
		{
			ID:          3,
			Title:       "Data Scientist",
			Company:     "DataFlow Analytics",
			Location:    "New York, NY",
			Type:        "Full-time",
			Salary:      "$110,000 - $140,000",
			PostedDate:  "3 days ago",
			MatchScore:  78,
			Description: "We are seeking a Data Scientist to join our analytics team. You will work on machine learning models, data analysis, and business intelligence solutions.",
			Skills:      []string{"Python", "Machine Learning", "SQL", "TensorFlow", "Pandas", "Scikit-learn", "R", "Tableau"},
		},
		{
			ID:          4,
			Title:       "DevOps Engineer",
			Company:     "CloudTech Solutions",
			Location:    "Austin, TX",
			Type:        "Full-time",
			Salary:      "$115,000 - $145,000",
			PostedDate:  "5 days ago",
			MatchScore:  82,
			Description: "Looking for a DevOps Engineer to manage our cloud infrastructure, CI/CD pipelines, and automation tools. Help us scale our platform efficiently.",
			Skills:      []string{"AWS", "Docker", "Kubernetes", "Terraform", "Jenkins", "Python", "Linux", "Git"},
		},
		{
			ID:          5,
			Title:       "UX Designer",
			Company:     "DesignCo",
			Location:    "Los Angeles, CA",
			Type:        "Full-time",
			Salary:      "$90,000 - $120,000",
			PostedDate:  "1 day ago",
			MatchScore:  75,
			Description: "Join our design team to create beautiful and intuitive user experiences. Work closely with product managers and engineers to deliver exceptional digital products.",
			Skills:      []string{"Figma", "Sketch", "Prototyping", "User Research", "Wireframing", "Adobe Creative Suite", "HTML/CSS"},
		},
	}
}
