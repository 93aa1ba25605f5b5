package questionnaire

import "fmt"

// DefinitionError represents an invalid question definition
type DefinitionError struct {
	QuestionID string
	Message    string
	Cause      error
}

func (e *DefinitionError) Error() string {
	prefix := "question definition error"
	if e.QuestionID != "" {
		prefix = fmt.Sprintf("question %q", e.QuestionID)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *DefinitionError) Unwrap() error {
	return e.Cause
}

// AnswerError represents an answer whose shape does not fit its question
type AnswerError struct {
	QuestionID string
	Message    string
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("invalid answer for %s: %s", e.QuestionID, e.Message)
}
