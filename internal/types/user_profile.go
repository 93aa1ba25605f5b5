// Package types provides type definitions for structured data used throughout the career-explorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceLevel is the seniority band of a person or a role
type ExperienceLevel string

// Experience levels, ordered by seniority
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// experienceRank maps levels to their position in the seniority ladder
var experienceRank = map[ExperienceLevel]int{
	LevelEntry:     0,
	LevelMid:       1,
	LevelSenior:    2,
	LevelExecutive: 3,
}

// Rank returns the seniority index of the level and false for unknown levels
func (l ExperienceLevel) Rank() (int, bool) {
	r, ok := experienceRank[l]
	return r, ok
}

// WorkLifeBalance expresses how much balance a person wants or a role offers
type WorkLifeBalance string

// Work-life balance values
const (
	BalanceLow    WorkLifeBalance = "low"
	BalanceMedium WorkLifeBalance = "medium"
	BalanceHigh   WorkLifeBalance = "high"
)

// Rank returns 0, 1 or 2 for low, medium, high and false otherwise
func (b WorkLifeBalance) Rank() (int, bool) {
	switch b {
	case BalanceLow:
		return 0, true
	case BalanceMedium:
		return 1, true
	case BalanceHigh:
		return 2, true
	default:
		return 0, false
	}
}

// Personality trait values
const (
	WorkStyleIndependent   = "independent"
	WorkStyleCollaborative = "collaborative"
	WorkStyleMixed         = "mixed"

	PaceSteady = "steady"
	PaceFast   = "fast"
	PaceVaried = "varied"

	ProblemSolvingAnalytical = "analytical"
	ProblemSolvingCreative   = "creative"
	ProblemSolvingPractical  = "practical"

	CommunicationWritten = "written"
	CommunicationVerbal  = "verbal"
	CommunicationMixed   = "mixed"
)

// Education levels
const (
	EducationHighSchool = "high-school"
	EducationAssociate  = "associate"
	EducationBachelor   = "bachelor"
	EducationMaster     = "master"
	EducationPhD        = "phd"
	EducationOther      = "other"
)

// UserProfile is an immutable snapshot derived from questionnaire responses
type UserProfile struct {
	Interests   []string           `json:"interests"`
	Skills      []string           `json:"skills"`
	Experience  ExperienceProfile  `json:"experience"`
	Preferences PreferenceProfile  `json:"preferences"`
	Personality PersonalityProfile `json:"personality"`
	Education   EducationProfile   `json:"education"`
}

// ExperienceProfile describes the user's work history
type ExperienceProfile struct {
	Level             ExperienceLevel `json:"level"`
	YearsOfExperience float64         `json:"years_of_experience"`
	Industries        []string        `json:"industries"`
	Roles             []string        `json:"roles"`
}

// PreferenceProfile describes what the user wants from a job
type PreferenceProfile struct {
	WorkEnvironment   WorkEnvironment  `json:"work_environment"`
	Salary            SalaryRange      `json:"salary"`
	Categories        []CareerCategory `json:"categories"`
	WorkLifeBalance   WorkLifeBalance  `json:"work_life_balance"`
	TravelWillingness bool             `json:"travel_willingness"`
}

// PersonalityProfile describes how the user likes to work
type PersonalityProfile struct {
	WorkStyle      string `json:"work_style"`
	Pace           string `json:"pace"`
	ProblemSolving string `json:"problem_solving"`
	Communication  string `json:"communication"`
	Leadership     bool   `json:"leadership"`
}

// EducationProfile describes the user's education
type EducationProfile struct {
	Level                      string `json:"level"`
	Field                      string `json:"field,omitempty"`
	WillingToGetCertifications bool   `json:"willing_to_get_certifications"`
}

// WorkEnvironment flags which work arrangements are wanted or offered
type WorkEnvironment struct {
	Remote bool `json:"remote"`
	Hybrid bool `json:"hybrid"`
	Onsite bool `json:"onsite"`
}

// Any reports whether at least one arrangement is set
func (w WorkEnvironment) Any() bool {
	return w.Remote || w.Hybrid || w.Onsite
}

// Overlaps reports whether w and other share an arrangement
func (w WorkEnvironment) Overlaps(other WorkEnvironment) bool {
	return (w.Remote && other.Remote) || (w.Hybrid && other.Hybrid) || (w.Onsite && other.Onsite)
}

// Names lists the set arrangements in remote, hybrid, onsite order
func (w WorkEnvironment) Names() []string {
	names := make([]string, 0, 3)
	if w.Remote {
		names = append(names, "remote")
	}
	if w.Hybrid {
		names = append(names, "hybrid")
	}
	if w.Onsite {
		names = append(names, "onsite")
	}
	return names
}
