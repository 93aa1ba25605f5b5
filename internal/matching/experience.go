package matching

import (
	"math"

	"github.com/jonathan/career-explorer/internal/types"
)

// Experience fit blends the seniority level gap with the years gap
const (
	experienceLevelShare = 0.6
	experienceYearsShare = 0.4

	// overqualifiedDiscount scales gaps where the user exceeds the role
	overqualifiedDiscount = 0.5
	// yearsDecayScale is the distance in years at which the years score halves
	yearsDecayScale = 3.0
)

// yearsBand is the expected years of experience for a level
type yearsBand struct {
	min, max float64
}

var defaultYearsBands = map[types.ExperienceLevel]yearsBand{
	types.LevelEntry:     {0, 2},
	types.LevelMid:       {2, 6},
	types.LevelSenior:    {5, 12},
	types.LevelExecutive: {10, 40},
}

// levelForYears infers a seniority level from years of experience
func levelForYears(years float64) types.ExperienceLevel {
	switch {
	case years < 2:
		return types.LevelEntry
	case years < 5:
		return types.LevelMid
	case years < 10:
		return types.LevelSenior
	default:
		return types.LevelExecutive
	}
}

// careerLevel returns the career's seniority, inferred from its minimum years
// when no level is set. ok is false when the career states neither.
func careerLevel(career *types.Career) (types.ExperienceLevel, bool) {
	if _, ok := career.ExperienceLevel.Rank(); ok {
		return career.ExperienceLevel, true
	}
	if career.MinYears != nil {
		return levelForYears(*career.MinYears), true
	}
	return "", false
}

// careerYearsBand returns the explicit years band, filling open ends from
// the level's default band
func careerYearsBand(career *types.Career, level types.ExperienceLevel) yearsBand {
	band := defaultYearsBands[level]
	if career.MinYears != nil {
		band.min = *career.MinYears
	}
	if career.MaxYears != nil {
		band.max = *career.MaxYears
	}
	if band.max < band.min {
		band.max = band.min
	}
	return band
}

// decay maps a non-negative gap to (0,100] so that small gaps cost little
// and the score never drops to zero
func decay(gap, scale float64) float64 {
	r := gap / scale
	return 100 / (1 + r*r)
}

// experienceMatch is the outcome of the experience comparison
type experienceMatch struct {
	score       float64
	careerLevel types.ExperienceLevel
	known       bool
}

// computeExperienceScore penalizes the distance between the profile's level
// and years and the career's implied seniority. Under-qualification counts
// fully and over-qualification counts half. Inside the expected band the
// score is 100. A career with no stated seniority scores NeutralScore.
func computeExperienceScore(exp types.ExperienceProfile, career *types.Career) experienceMatch {
	level, ok := careerLevel(career)
	if !ok {
		return experienceMatch{score: NeutralScore}
	}

	profileRank, known := exp.Level.Rank()
	if !known {
		profileRank = 0
	}
	careerRank, _ := level.Rank()

	levelGap := float64(careerRank - profileRank)
	if levelGap < 0 {
		levelGap = -levelGap * overqualifiedDiscount
	}
	// 1 level → 66.7, 2 → 33.3, 3 → 18.2
	levelScore := decay(levelGap, math.Sqrt2)

	band := careerYearsBand(career, level)
	years := exp.YearsOfExperience
	if years < 0 {
		years = 0
	}
	yearsGap := 0.0
	switch {
	case years < band.min:
		yearsGap = band.min - years
	case years > band.max:
		yearsGap = (years - band.max) * overqualifiedDiscount
	}
	yearsScore := decay(yearsGap, yearsDecayScale)

	return experienceMatch{
		score:       experienceLevelShare*levelScore + experienceYearsShare*yearsScore,
		careerLevel: level,
		known:       true,
	}
}
