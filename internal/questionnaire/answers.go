package questionnaire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/career-explorer/internal/types"
)

// ValidateAnswer checks an answer against its question's type and returns it
// coerced into the canonical kind for that type:
//   - single-choice: text (one of the options) or flag for yes/no questions
//   - multiple-choice: choices; a lone text is promoted to one choice
//   - rating, range: number within bounds; numeric text is parsed
//   - text: text; choices are joined with ", "
//
// Unanswered values pass through unchanged.
func ValidateAnswer(q types.Question, a types.Answer) (types.Answer, error) {
	if !a.IsAnswered() {
		return a, nil
	}

	switch q.Type {
	case types.QuestionSingleChoice:
		return validateSingleChoice(q, a)
	case types.QuestionMultipleChoice:
		return validateMultipleChoice(q, a)
	case types.QuestionRating, types.QuestionRange:
		return validateNumber(q, a)
	case types.QuestionText:
		switch a.Kind {
		case types.AnswerText:
			return a, nil
		case types.AnswerChoices:
			return types.TextAnswer(strings.Join(a.Choices, ", ")), nil
		}
	}

	return a, &AnswerError{QuestionID: q.ID, Message: fmt.Sprintf("%s answer does not fit a %s question", a.Kind, q.Type)}
}

func validateSingleChoice(q types.Question, a types.Answer) (types.Answer, error) {
	switch a.Kind {
	case types.AnswerText:
		if !q.HasOption(a.Text) {
			return a, &AnswerError{QuestionID: q.ID, Message: fmt.Sprintf("%q is not an option", a.Text)}
		}
		return a, nil
	case types.AnswerFlag:
		if !q.IsYesNo() {
			return a, &AnswerError{QuestionID: q.ID, Message: "boolean answer for a question that is not yes/no"}
		}
		return a, nil
	}
	return a, &AnswerError{QuestionID: q.ID, Message: fmt.Sprintf("%s answer does not fit a single-choice question", a.Kind)}
}

func validateMultipleChoice(q types.Question, a types.Answer) (types.Answer, error) {
	switch a.Kind {
	case types.AnswerText:
		a = types.ChoicesAnswer(a.Text)
	case types.AnswerChoices:
	default:
		return a, &AnswerError{QuestionID: q.ID, Message: fmt.Sprintf("%s answer does not fit a multiple-choice question", a.Kind)}
	}

	for _, c := range a.Choices {
		if !q.HasOption(c) {
			return a, &AnswerError{QuestionID: q.ID, Message: fmt.Sprintf("%q is not an option", c)}
		}
	}
	return a, nil
}

func validateNumber(q types.Question, a types.Answer) (types.Answer, error) {
	switch a.Kind {
	case types.AnswerNumber:
	case types.AnswerText:
		n, err := strconv.ParseFloat(strings.TrimSpace(a.Text), 64)
		if err != nil {
			return a, &AnswerError{QuestionID: q.ID, Message: fmt.Sprintf("%q is not a number", a.Text)}
		}
		a = types.NumberAnswer(n)
	default:
		return a, &AnswerError{QuestionID: q.ID, Message: fmt.Sprintf("%s answer does not fit a %s question", a.Kind, q.Type)}
	}

	if q.Min != nil && a.Number < *q.Min {
		return a, &AnswerError{QuestionID: q.ID, Message: fmt.Sprintf("%v is below the minimum %v", a.Number, *q.Min)}
	}
	if q.Max != nil && a.Number > *q.Max {
		return a, &AnswerError{QuestionID: q.ID, Message: fmt.Sprintf("%v is above the maximum %v", a.Number, *q.Max)}
	}
	return a, nil
}
