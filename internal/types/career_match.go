// Package types provides type definitions for structured data used throughout the career-explorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CareerMatch is the engine's scored verdict for one career
type CareerMatch struct {
	Career        Career    `json:"career"`
	OverallScore  float64   `json:"overall_score"`
	SubScores     SubScores `json:"sub_scores"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
	Strengths     []string  `json:"strengths"`
	Gaps          []string  `json:"gaps"`
}

// SubScores holds the five independent component scores, each in [0,100]
type SubScores struct {
	Skills      float64 `json:"skills"`
	Interests   float64 `json:"interests"`
	Experience  float64 `json:"experience"`
	Preferences float64 `json:"preferences"`
	Personality float64 `json:"personality"`
}
