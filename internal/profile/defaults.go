// Package profile folds questionnaire responses into a normalized UserProfile.
package profile

import "github.com/jonathan/career-explorer/internal/types"

// Documented defaults applied when an answer is missing or invalid
const (
	DefaultExperienceLevel = types.LevelEntry
	DefaultSalaryMin       = 40000.0
	DefaultSalaryMax       = 100000.0
	DefaultWorkLifeBalance = types.BalanceMedium
	DefaultWorkStyle       = types.WorkStyleMixed
	DefaultPace            = types.PaceVaried
	DefaultProblemSolving  = types.ProblemSolvingPractical
	DefaultCommunication   = types.CommunicationMixed
	DefaultEducationLevel  = types.EducationBachelor

	// salaryHeadroom widens an open-ended minimum above DefaultSalaryMax
	salaryHeadroom = 1.5
)

// Default returns the profile built from no answers at all. Slices are
// empty rather than nil and the work environment has no stated preference.
func Default() types.UserProfile {
	return types.UserProfile{
		Interests: []string{},
		Skills:    []string{},
		Experience: types.ExperienceProfile{
			Level:             DefaultExperienceLevel,
			YearsOfExperience: 0,
			Industries:        []string{},
			Roles:             []string{},
		},
		Preferences: types.PreferenceProfile{
			WorkEnvironment:   types.WorkEnvironment{},
			Salary:            types.SalaryRange{Min: DefaultSalaryMin, Max: DefaultSalaryMax},
			Categories:        []types.CareerCategory{},
			WorkLifeBalance:   DefaultWorkLifeBalance,
			TravelWillingness: false,
		},
		Personality: types.PersonalityProfile{
			WorkStyle:      DefaultWorkStyle,
			Pace:           DefaultPace,
			ProblemSolving: DefaultProblemSolving,
			Communication:  DefaultCommunication,
			Leadership:     false,
		},
		Education: types.EducationProfile{
			Level:                      DefaultEducationLevel,
			WillingToGetCertifications: true,
		},
	}
}
