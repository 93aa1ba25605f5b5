package profile

import (
	"strings"

	q "github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/jonathan/career-explorer/internal/types"
)

// reader pulls validated answers out of a response map, recording an Issue
// for every answer that does not fit its question.
type reader struct {
	questions *q.Set
	responses types.Responses
	issues    []Issue
}

func (r *reader) issue(id, msg string) {
	r.issues = append(r.issues, Issue{QuestionID: id, Message: msg})
}

// get returns the coerced answer for id when it exists, is answered and fits
// the question definition.
func (r *reader) get(id string) (types.Answer, bool) {
	raw := r.responses.Get(id)
	if !raw.IsAnswered() {
		return types.Answer{}, false
	}

	question, ok := r.questions.Get(id)
	if !ok {
		return types.Answer{}, false
	}

	a, err := q.ValidateAnswer(question, raw)
	if err != nil {
		r.issue(id, err.Error())
		return types.Answer{}, false
	}
	return a, true
}

func (r *reader) choices(id string) []string {
	a, ok := r.get(id)
	if !ok || a.Kind != types.AnswerChoices {
		return nil
	}
	out := make([]string, 0, len(a.Choices))
	for _, c := range a.Choices {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func (r *reader) text(id string) string {
	a, ok := r.get(id)
	if !ok || a.Kind != types.AnswerText {
		return ""
	}
	return strings.TrimSpace(a.Text)
}

func (r *reader) textOr(id, fallback string) string {
	if s := r.text(id); s != "" {
		return s
	}
	return fallback
}

func (r *reader) number(id string) (float64, bool) {
	a, ok := r.get(id)
	if !ok || a.Kind != types.AnswerNumber {
		return 0, false
	}
	return a.Number, true
}

// yesNoOr accepts either a boolean answer or a "yes"/"no" choice
func (r *reader) yesNoOr(id string, fallback bool) bool {
	a, ok := r.get(id)
	if !ok {
		return fallback
	}
	switch a.Kind {
	case types.AnswerFlag:
		return a.Flag
	case types.AnswerText:
		switch strings.ToLower(a.Text) {
		case "yes":
			return true
		case "no":
			return false
		}
	}
	return fallback
}
