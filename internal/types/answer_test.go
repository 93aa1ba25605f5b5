// Package types provides type definitions for structured data used throughout the career-explorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswer_UnmarshalBareValues(t *testing.T) {
	input := `{
		"a": "Python",
		"b": 7,
		"c": ["remote", "hybrid"],
		"d": false,
		"e": null,
		"f": []
	}`

	var responses Responses
	require.NoError(t, json.Unmarshal([]byte(input), &responses))

	assert.Equal(t, TextAnswer("Python"), responses["a"])
	assert.Equal(t, NumberAnswer(7), responses["b"])
	assert.Equal(t, ChoicesAnswer("remote", "hybrid"), responses["c"])
	assert.Equal(t, FlagAnswer(false), responses["d"])
	assert.Equal(t, AnswerNone, responses["e"].Kind)
	assert.Equal(t, AnswerChoices, responses["f"].Kind)
	assert.Empty(t, responses["f"].Choices)
}

func TestAnswer_UnmarshalRejectsMixedArray(t *testing.T) {
	var a Answer
	err := json.Unmarshal([]byte(`["x", 1]`), &a)
	assert.Error(t, err)
}

func TestAnswer_UnmarshalRejectsObject(t *testing.T) {
	var a Answer
	err := json.Unmarshal([]byte(`{"x": 1}`), &a)
	assert.Error(t, err)
}

func TestAnswer_MarshalRoundTripsThroughBareValue(t *testing.T) {
	responses := Responses{
		"text":    TextAnswer("hello"),
		"choices": ChoicesAnswer(),
		"flag":    FlagAnswer(true),
	}

	data, err := json.Marshal(responses)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hello","choices":[],"flag":true}`, string(data))
}

func TestAnswer_IsAnswered(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   bool
	}{
		{"absent", Answer{}, false},
		{"empty string", TextAnswer(""), false},
		{"text", TextAnswer("x"), true},
		{"zero number", NumberAnswer(0), true},
		{"false flag", FlagAnswer(false), true},
		{"empty choices", ChoicesAnswer(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.answer.IsAnswered())
		})
	}
}

func TestResponses_CloneIsDeep(t *testing.T) {
	original := Responses{"c": ChoicesAnswer("a", "b")}
	clone := original.Clone()
	clone["c"].Choices[0] = "changed"

	assert.Equal(t, "a", original["c"].Choices[0])
}

func TestResponses_GetOnNil(t *testing.T) {
	var r Responses
	assert.False(t, r.Get("missing").IsAnswered())
}
