// Package questionnaire defines the career questionnaire and measures how much of it is answered.
// The default question set is embedded at compile time.
package questionnaire

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/career-explorer/internal/types"
)

// Question IDs of the default set that the profile builder reads
const (
	QInterestAreas       = "interests-areas"
	QInterestActivities  = "interests-activities"
	QSkillsTechnical     = "skills-technical"
	QSkillsSoft          = "skills-soft"
	QSkillsOther         = "skills-other"
	QExperienceLevel     = "experience-level"
	QExperienceYears     = "experience-years"
	QExperienceIndustry  = "experience-industries"
	QExperienceRoles     = "experience-roles"
	QWorkStyle           = "personality-work-style"
	QPace                = "personality-pace"
	QProblemSolving      = "personality-problem-solving"
	QCommunication       = "personality-communication"
	QLeadership          = "personality-leadership"
	QWorkEnvironment     = "preferences-work-environment"
	QSalaryMin           = "preferences-salary-min"
	QSalaryMax           = "preferences-salary-max"
	QCareerCategories    = "preferences-categories"
	QWorkLifeBalance     = "preferences-work-life-balance"
	QTravel              = "preferences-travel"
	QEducationLevel      = "education-level"
	QEducationField      = "education-field"
	QEducationCertifying = "education-certifications"
)

//go:embed questions.json
var defaultQuestions []byte

var (
	defaultSet     *Set
	defaultSetErr  error
	defaultSetOnce sync.Once
)

// Set is an immutable, ordered collection of questions
type Set struct {
	questions []types.Question
	byID      map[string]int
}

// Default returns the embedded question set.
// It panics if the embedded file is invalid, which is a build defect.
func Default() *Set {
	defaultSetOnce.Do(func() {
		defaultSet, defaultSetErr = Load(defaultQuestions)
	})
	if defaultSetErr != nil {
		panic(fmt.Sprintf("embedded questionnaire is invalid: %v", defaultSetErr))
	}
	return defaultSet
}

// Load parses and validates a JSON array of questions
func Load(data []byte) (*Set, error) {
	var questions []types.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, &DefinitionError{Message: "failed to parse questions JSON", Cause: err}
	}
	return New(questions)
}

// New validates questions and builds a Set. IDs must be unique, categories
// and types known, and choice questions with options must not repeat them.
func New(questions []types.Question) (*Set, error) {
	s := &Set{
		questions: make([]types.Question, len(questions)),
		byID:      make(map[string]int, len(questions)),
	}
	copy(s.questions, questions)

	for i := range s.questions {
		q := &s.questions[i]
		if err := q.Validate(); err != nil {
			return nil, &DefinitionError{QuestionID: q.ID, Message: "missing required fields", Cause: err}
		}
		if !q.Category.Valid() {
			return nil, &DefinitionError{QuestionID: q.ID, Message: fmt.Sprintf("unknown category %q", q.Category)}
		}
		if !q.Type.Valid() {
			return nil, &DefinitionError{QuestionID: q.ID, Message: fmt.Sprintf("unknown type %q", q.Type)}
		}
		if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
			return nil, &DefinitionError{QuestionID: q.ID, Message: "min is greater than max"}
		}
		if _, dup := s.byID[q.ID]; dup {
			return nil, &DefinitionError{QuestionID: q.ID, Message: "duplicate question id"}
		}
		s.byID[q.ID] = i
	}

	return s, nil
}

// All returns the questions in definition order
func (s *Set) All() []types.Question {
	out := make([]types.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Len returns the number of questions
func (s *Set) Len() int { return len(s.questions) }

// Get looks up a question by ID
func (s *Set) Get(id string) (types.Question, bool) {
	i, ok := s.byID[id]
	if !ok {
		return types.Question{}, false
	}
	return s.questions[i], true
}

// ByCategory returns the questions of one category in definition order
func (s *Set) ByCategory(category types.QuestionCategory) []types.Question {
	out := make([]types.Question, 0)
	for _, q := range s.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}
