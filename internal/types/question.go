// Package types provides type definitions for structured data used throughout the career-explorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// QuestionCategory groups questionnaire questions into wizard sections
type QuestionCategory string

// Question categories
const (
	CategoryInterests   QuestionCategory = "interests"
	CategorySkills      QuestionCategory = "skills"
	CategoryExperience  QuestionCategory = "experience"
	CategoryPersonality QuestionCategory = "personality"
	CategoryPreferences QuestionCategory = "preferences"
	CategoryEducation   QuestionCategory = "education"
)

// QuestionCategories lists every category in wizard order
var QuestionCategories = []QuestionCategory{
	CategoryInterests,
	CategorySkills,
	CategoryExperience,
	CategoryPersonality,
	CategoryPreferences,
	CategoryEducation,
}

// Valid reports whether c is a known category
func (c QuestionCategory) Valid() bool {
	for _, known := range QuestionCategories {
		if c == known {
			return true
		}
	}
	return false
}

// QuestionType determines which answer shapes a question accepts
type QuestionType string

// Question types
const (
	QuestionSingleChoice   QuestionType = "single-choice"
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionRating         QuestionType = "rating"
	QuestionRange          QuestionType = "range"
	QuestionText           QuestionType = "text"
)

// Valid reports whether t is a known question type
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionSingleChoice, QuestionMultipleChoice, QuestionRating, QuestionRange, QuestionText:
		return true
	default:
		return false
	}
}

// Question is a single immutable questionnaire item
type Question struct {
	ID       string           `json:"id" validate:"required"`
	Text     string           `json:"text" validate:"required"`
	Category QuestionCategory `json:"category" validate:"required"`
	Type     QuestionType     `json:"type" validate:"required"`
	Options  []string         `json:"options,omitempty"`
	Min      *float64         `json:"min,omitempty"`
	Max      *float64         `json:"max,omitempty"`
	Required bool             `json:"required"`
}

// IsYesNo reports whether the question is a single-choice yes/no question
func (q *Question) IsYesNo() bool {
	if q.Type != QuestionSingleChoice || len(q.Options) != 2 {
		return false
	}
	return q.Options[0] == "yes" && q.Options[1] == "no"
}

// HasOption reports whether value is one of the question's options.
// Questions without options accept any value.
func (q *Question) HasOption(value string) bool {
	if len(q.Options) == 0 {
		return true
	}
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}
