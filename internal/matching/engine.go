package matching

import (
	"math"
	"sort"

	"github.com/jonathan/career-explorer/internal/skills"
	"github.com/jonathan/career-explorer/internal/types"
	"go.uber.org/zap"
)

// Engine scores careers against profiles. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	weights Weights
	logger  *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used to report skipped catalog entries
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithWeights overrides the default sub-score weights
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

// NewEngine creates an engine, rejecting weights that do not sum to 1.0
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		weights: DefaultWeights(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.weights.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

var defaultEngine = &Engine{weights: DefaultWeights(), logger: zap.NewNop()}

// Default returns the engine with default weights and no logging
func Default() *Engine {
	return defaultEngine
}

// Weights returns the engine's sub-score weights
func (e *Engine) Weights() Weights {
	return e.weights
}

// Result is the outcome of matching a catalog
type Result struct {
	Matches []types.CareerMatch `json:"matches"`
	Skipped []EntryError        `json:"skipped,omitempty"`
}

// MatchCareers ranks the catalog for the profile with the default engine.
// Malformed entries are skipped.
func MatchCareers(profile types.UserProfile, catalog []types.Career) []types.CareerMatch {
	return defaultEngine.Match(profile, catalog).Matches
}

// Match scores every valid career and returns them sorted by descending
// overall score, ties kept in catalog order. Malformed entries are skipped
// and reported in Result.Skipped.
func (e *Engine) Match(profile types.UserProfile, catalog []types.Career) Result {
	res := Result{Matches: make([]types.CareerMatch, 0, len(catalog))}
	if len(catalog) == 0 {
		return res
	}

	prepared := prepareProfile(profile)
	for i := range catalog {
		career := &catalog[i]
		if err := career.Validate(); err != nil {
			cause := &CareerValidationError{CareerID: career.ID, Cause: err}
			entry := EntryError{
				Index:    i,
				CareerID: career.ID,
				Reason:   cause.Error(),
				Err:      cause,
			}
			e.logger.Warn("skipping malformed career",
				zap.String("career_id", career.ID),
				zap.Int("index", i),
				zap.Error(err))
			res.Skipped = append(res.Skipped, entry)
			continue
		}
		res.Matches = append(res.Matches, e.score(&prepared, career))
	}

	sort.SliceStable(res.Matches, func(i, j int) bool {
		return res.Matches[i].OverallScore > res.Matches[j].OverallScore
	})
	return res
}

// ScoreCareer scores a single career, returning a *CareerValidationError
// when the career is malformed
func (e *Engine) ScoreCareer(profile types.UserProfile, career types.Career) (types.CareerMatch, error) {
	if err := career.Validate(); err != nil {
		return types.CareerMatch{}, &CareerValidationError{CareerID: career.ID, Cause: err}
	}
	prepared := prepareProfile(profile)
	return e.score(&prepared, &career), nil
}

// TopN returns at most n matches from an already ranked list
func TopN(matches []types.CareerMatch, n int) []types.CareerMatch {
	if n < 0 {
		n = 0
	}
	if n > len(matches) {
		n = len(matches)
	}
	out := make([]types.CareerMatch, n)
	copy(out, matches[:n])
	return out
}

// preparedProfile is a profile with its sequences deduplicated once per
// batch
type preparedProfile struct {
	types.UserProfile
	skills    []string
	interests []string
}

func prepareProfile(p types.UserProfile) preparedProfile {
	return preparedProfile{
		UserProfile: p,
		skills:      skills.Dedupe(p.Skills),
		interests:   normalizeTerms(p.Interests),
	}
}

func (e *Engine) score(p *preparedProfile, career *types.Career) types.CareerMatch {
	sk := computeSkillsScore(p.skills, career.RequiredSkills)
	in := computeInterestsScore(p.interests, career)
	ex := computeExperienceScore(p.Experience, career)
	pr := computePreferencesScore(p.Preferences, levelOrDefault(p.Experience.Level), career)
	pe := computePersonalityScore(p.Personality, career)

	raw := subScoreSet{
		skills:      sk.score,
		interests:   in.score,
		experience:  ex.score,
		preferences: pr.score,
		personality: pe.score,
	}
	overall := round1(clamp(e.weights.combine(raw)))

	rounded := subScoreSet{
		skills:      round1(clamp(raw.skills)),
		interests:   round1(clamp(raw.interests)),
		experience:  round1(clamp(raw.experience)),
		preferences: round1(clamp(raw.preferences)),
		personality: round1(clamp(raw.personality)),
	}

	sc := &scoredCareer{
		career:      career,
		profile:     &p.UserProfile,
		sub:         rounded,
		skills:      sk,
		interests:   in,
		experience:  ex,
		preferences: pr,
		personality: pe,
	}
	strengths, gaps := explain(sc)

	return types.CareerMatch{
		Career:       *career,
		OverallScore: overall,
		SubScores: types.SubScores{
			Skills:      rounded.skills,
			Interests:   rounded.interests,
			Experience:  rounded.experience,
			Preferences: rounded.preferences,
			Personality: rounded.personality,
		},
		MatchedSkills: sk.matched,
		MissingSkills: sk.missing,
		Strengths:     strengths,
		Gaps:          gaps,
	}
}

// clamp bounds v to [0,100], mapping NaN to 0
func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
