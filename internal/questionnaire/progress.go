package questionnaire

import (
	"math"

	"github.com/jonathan/career-explorer/internal/types"
)

// CategoryProgress returns the percentage (0-100) of required questions in
// category that have an answer. A category without required questions is
// complete.
func (s *Set) CategoryProgress(responses types.Responses, category types.QuestionCategory) float64 {
	return requiredProgress(s.ByCategory(category), responses)
}

// OverallProgress returns the percentage of all required questions answered
func (s *Set) OverallProgress(responses types.Responses) float64 {
	return requiredProgress(s.questions, responses)
}

// CompletedCategories lists categories at 100% in wizard order
func (s *Set) CompletedCategories(responses types.Responses) []types.QuestionCategory {
	done := make([]types.QuestionCategory, 0, len(types.QuestionCategories))
	for _, c := range types.QuestionCategories {
		if s.CategoryProgress(responses, c) >= 100 {
			done = append(done, c)
		}
	}
	return done
}

// NextUnanswered returns the first required question without an answer
func (s *Set) NextUnanswered(responses types.Responses) (types.Question, bool) {
	for _, q := range s.questions {
		if q.Required && !responses.Get(q.ID).IsAnswered() {
			return q, true
		}
	}
	return types.Question{}, false
}

// AnsweredCount counts answered entries in responses, whether or not they
// belong to a known question.
func AnsweredCount(responses types.Responses) int {
	n := 0
	for _, a := range responses {
		if a.IsAnswered() {
			n++
		}
	}
	return n
}

// AnsweredCount counts answers to questions in the set that pass
// ValidateAnswer. Unknown IDs and ill-typed answers carry no signal.
func (s *Set) AnsweredCount(responses types.Responses) int {
	n := 0
	for id, a := range responses {
		if !a.IsAnswered() {
			continue
		}
		q, ok := s.Get(id)
		if !ok {
			continue
		}
		if _, err := ValidateAnswer(q, a); err != nil {
			continue
		}
		n++
	}
	return n
}

func requiredProgress(questions []types.Question, responses types.Responses) float64 {
	required, answered := 0, 0
	for _, q := range questions {
		if !q.Required {
			continue
		}
		required++
		if responses.Get(q.ID).IsAnswered() {
			answered++
		}
	}
	if required == 0 {
		return 100
	}
	return math.Round(float64(answered)/float64(required)*1000) / 10
}
