// Package matching scores careers against a user profile and ranks them.
package matching

import (
	"fmt"
	"math"
)

// Default weights for combining sub-scores into the overall score.
// They must sum to 1.0.
const (
	WeightSkills      = 0.35
	WeightInterests   = 0.20
	WeightExperience  = 0.15
	WeightPreferences = 0.20
	WeightPersonality = 0.10
)

// Explanation thresholds and the score used when a sub-score has no signal
const (
	StrongThreshold = 75.0
	WeakThreshold   = 40.0
	NeutralScore    = 50.0

	weightSumTolerance = 1e-9
)

// Importance tier weights for required skills
const (
	importanceCriticalWeight   = 1.0
	importanceImportantWeight  = 0.6
	importanceBeneficialWeight = 0.3
)

// Weights holds the sub-score weights of an engine
type Weights struct {
	Skills      float64 `json:"skills" mapstructure:"skills"`
	Interests   float64 `json:"interests" mapstructure:"interests"`
	Experience  float64 `json:"experience" mapstructure:"experience"`
	Preferences float64 `json:"preferences" mapstructure:"preferences"`
	Personality float64 `json:"personality" mapstructure:"personality"`
}

// DefaultWeights returns the documented default weights
func DefaultWeights() Weights {
	return Weights{
		Skills:      WeightSkills,
		Interests:   WeightInterests,
		Experience:  WeightExperience,
		Preferences: WeightPreferences,
		Personality: WeightPersonality,
	}
}

// Sum returns the total of all weights
func (w Weights) Sum() float64 {
	return w.Skills + w.Interests + w.Experience + w.Preferences + w.Personality
}

// IsZero reports whether no weight is set
func (w Weights) IsZero() bool {
	return w == Weights{}
}

// Validate checks every weight lies in [0,1] and that they sum to 1.0
func (w Weights) Validate() error {
	named := []struct {
		name  string
		value float64
	}{
		{"skills", w.Skills},
		{"interests", w.Interests},
		{"experience", w.Experience},
		{"preferences", w.Preferences},
		{"personality", w.Personality},
	}
	for _, n := range named {
		if math.IsNaN(n.value) || n.value < 0 || n.value > 1 {
			return &WeightsError{Message: fmt.Sprintf("%s weight %v is outside [0,1]", n.name, n.value)}
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return &WeightsError{Message: fmt.Sprintf("weights sum to %v, want 1.0", sum)}
	}
	return nil
}

func (w Weights) combine(s subScoreSet) float64 {
	return s.skills*w.Skills +
		s.interests*w.Interests +
		s.experience*w.Experience +
		s.preferences*w.Preferences +
		s.personality*w.Personality
}
