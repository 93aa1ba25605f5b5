// Package types provides type definitions for structured data used throughout the career-explorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AnswerKind tags which field of an Answer holds the value
type AnswerKind int

// Answer kinds
const (
	AnswerNone AnswerKind = iota
	AnswerText
	AnswerNumber
	AnswerChoices
	AnswerFlag
)

// String returns the kind name used in error messages
func (k AnswerKind) String() string {
	switch k {
	case AnswerText:
		return "text"
	case AnswerNumber:
		return "number"
	case AnswerChoices:
		return "choices"
	case AnswerFlag:
		return "flag"
	default:
		return "none"
	}
}

// Answer is a single questionnaire answer. Exactly one value field is
// meaningful, selected by Kind.
type Answer struct {
	Kind    AnswerKind
	Text    string
	Number  float64
	Choices []string
	Flag    bool
}

// TextAnswer builds a text answer
func TextAnswer(s string) Answer { return Answer{Kind: AnswerText, Text: s} }

// NumberAnswer builds a numeric answer
func NumberAnswer(n float64) Answer { return Answer{Kind: AnswerNumber, Number: n} }

// ChoicesAnswer builds a multiple-choice answer. A nil slice is stored as empty.
func ChoicesAnswer(choices ...string) Answer {
	if choices == nil {
		choices = []string{}
	}
	return Answer{Kind: AnswerChoices, Choices: choices}
}

// FlagAnswer builds a boolean answer
func FlagAnswer(b bool) Answer { return Answer{Kind: AnswerFlag, Flag: b} }

// IsAnswered reports whether the answer counts toward progress.
// Only absence and the empty string are unanswered; false and [] are answers.
func (a Answer) IsAnswered() bool {
	switch a.Kind {
	case AnswerNone:
		return false
	case AnswerText:
		return a.Text != ""
	default:
		return true
	}
}

// MarshalJSON encodes the answer as its bare value
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerText:
		return json.Marshal(a.Text)
	case AnswerNumber:
		return json.Marshal(a.Number)
	case AnswerChoices:
		if a.Choices == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Choices)
	case AnswerFlag:
		return json.Marshal(a.Flag)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a bare string, number, string array, bool or null
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = TextAnswer(s)
	case '[':
		var choices []string
		if err := json.Unmarshal(data, &choices); err != nil {
			return fmt.Errorf("answer array must contain only strings: %w", err)
		}
		*a = ChoicesAnswer(choices...)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*a = FlagAnswer(b)
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("unsupported answer value %s", string(data))
		}
		*a = NumberAnswer(n)
	}
	return nil
}

// Responses maps question IDs to answers
type Responses map[string]Answer

// Clone returns a deep copy of the responses
func (r Responses) Clone() Responses {
	out := make(Responses, len(r))
	for id, a := range r {
		if a.Choices != nil {
			a.Choices = append([]string(nil), a.Choices...)
		}
		out[id] = a
	}
	return out
}

// Get returns the answer for id, or an unanswered zero Answer
func (r Responses) Get(id string) Answer {
	if r == nil {
		return Answer{}
	}
	return r[id]
}
