package matching

import (
	"github.com/jonathan/career-explorer/internal/types"
)

// Personality dimension weights, summing to 1.0
const (
	traitWorkStyleWeight      = 0.25
	traitPaceWeight           = 0.20
	traitProblemSolvingWeight = 0.30
	traitCommunicationWeight  = 0.15
	traitLeadershipWeight     = 0.10
)

// Trait agreement scores
const (
	traitExact    = 1.0
	traitFlexible = 0.6
	traitMismatch = 0.2

	leadershipMissing = 0.3
)

// archetypes is the default personality expected by each career category.
// A career's own Personality overrides it.
var archetypes = map[types.CareerCategory]types.PersonalityProfile{
	types.CareerTechnology:    {WorkStyle: types.WorkStyleIndependent, Pace: types.PaceFast, ProblemSolving: types.ProblemSolvingAnalytical, Communication: types.CommunicationWritten},
	types.CareerHealthcare:    {WorkStyle: types.WorkStyleCollaborative, Pace: types.PaceFast, ProblemSolving: types.ProblemSolvingPractical, Communication: types.CommunicationVerbal},
	types.CareerBusiness:      {WorkStyle: types.WorkStyleCollaborative, Pace: types.PaceFast, ProblemSolving: types.ProblemSolvingPractical, Communication: types.CommunicationVerbal, Leadership: true},
	types.CareerFinance:       {WorkStyle: types.WorkStyleIndependent, Pace: types.PaceSteady, ProblemSolving: types.ProblemSolvingAnalytical, Communication: types.CommunicationWritten},
	types.CareerCreative:      {WorkStyle: types.WorkStyleIndependent, Pace: types.PaceVaried, ProblemSolving: types.ProblemSolvingCreative, Communication: types.CommunicationMixed},
	types.CareerEducation:     {WorkStyle: types.WorkStyleCollaborative, Pace: types.PaceSteady, ProblemSolving: types.ProblemSolvingCreative, Communication: types.CommunicationVerbal, Leadership: true},
	types.CareerEngineering:   {WorkStyle: types.WorkStyleMixed, Pace: types.PaceSteady, ProblemSolving: types.ProblemSolvingAnalytical, Communication: types.CommunicationWritten},
	types.CareerScience:       {WorkStyle: types.WorkStyleIndependent, Pace: types.PaceSteady, ProblemSolving: types.ProblemSolvingAnalytical, Communication: types.CommunicationWritten},
	types.CareerTrades:        {WorkStyle: types.WorkStyleIndependent, Pace: types.PaceVaried, ProblemSolving: types.ProblemSolvingPractical, Communication: types.CommunicationVerbal},
	types.CareerPublicService: {WorkStyle: types.WorkStyleCollaborative, Pace: types.PaceSteady, ProblemSolving: types.ProblemSolvingPractical, Communication: types.CommunicationVerbal},
	types.CareerHospitality:   {WorkStyle: types.WorkStyleCollaborative, Pace: types.PaceFast, ProblemSolving: types.ProblemSolvingPractical, Communication: types.CommunicationVerbal},
	types.CareerLegal:         {WorkStyle: types.WorkStyleIndependent, Pace: types.PaceFast, ProblemSolving: types.ProblemSolvingAnalytical, Communication: types.CommunicationWritten},
}

// archetypeFor returns the personality a career expects
func archetypeFor(career *types.Career) types.PersonalityProfile {
	if career.Personality != nil {
		return *career.Personality
	}
	return archetypes[career.Category]
}

// traitMatch records one dimension's agreement
type traitMatch struct {
	name     string
	profile  string
	career   string
	score    float64
	weighted float64
}

// personalityMatch is the outcome of comparing a profile to an archetype
type personalityMatch struct {
	score  float64
	traits []traitMatch
	// leadership is set when the career expects leadership
	leadership *bool
}

// traitScore compares two trait values. "mixed" and "varied" on either side
// agree partially. An unspecified archetype trait is neutral.
func traitScore(profile, career string) float64 {
	switch {
	case career == "":
		return traitFlexible
	case profile == career:
		return traitExact
	case isFlexibleTrait(profile) || isFlexibleTrait(career):
		return traitFlexible
	default:
		return traitMismatch
	}
}

func isFlexibleTrait(v string) bool {
	return v == types.WorkStyleMixed || v == types.PaceVaried
}

// computePersonalityScore weights agreement per dimension against the
// career's archetype
func computePersonalityScore(p types.PersonalityProfile, career *types.Career) personalityMatch {
	arch := archetypeFor(career)

	dims := []struct {
		name            string
		profile, career string
		weight          float64
	}{
		{"work style", p.WorkStyle, arch.WorkStyle, traitWorkStyleWeight},
		{"pace", p.Pace, arch.Pace, traitPaceWeight},
		{"problem solving", p.ProblemSolving, arch.ProblemSolving, traitProblemSolvingWeight},
		{"communication", p.Communication, arch.Communication, traitCommunicationWeight},
	}

	m := personalityMatch{traits: make([]traitMatch, 0, len(dims))}
	total := 0.0
	for _, d := range dims {
		s := traitScore(d.profile, d.career)
		total += d.weight * s
		m.traits = append(m.traits, traitMatch{
			name:     d.name,
			profile:  d.profile,
			career:   d.career,
			score:    s,
			weighted: d.weight * s,
		})
	}

	leadership := traitExact
	if arch.Leadership {
		has := p.Leadership
		m.leadership = &has
		if !has {
			leadership = leadershipMissing
		}
	}
	total += traitLeadershipWeight * leadership

	m.score = total * 100
	return m
}
