package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verdict struct {
	Trust     float64 `json:"trust_score"`
	Relevance float64 `json:"relevance_score"`
}

func TestParseJSONObject_Raw(t *testing.T) {
	var v verdict
	err := ParseJSONObject(`{"trust_score": 0.8, "relevance_score": 0.6}`, &v)
	require.NoError(t, err)
	assert.Equal(t, 0.8, v.Trust)
	assert.Equal(t, 0.6, v.Relevance)
}

func TestParseJSONObject_Fenced(t *testing.T) {
	raw := "Here is the evaluation:\n```json\n{\"trust_score\": 0.7, \"relevance_score\": 0.5}\n```\nLet me know if you need anything else."

	var v verdict
	err := ParseJSONObject(raw, &v)
	require.NoError(t, err)
	assert.Equal(t, 0.7, v.Trust)
}

func TestParseJSONObject_FencedWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"trust_score\": 0.4, \"relevance_score\": 0.9}\n```"

	var v verdict
	err := ParseJSONObject(raw, &v)
	require.NoError(t, err)
	assert.Equal(t, 0.4, v.Trust)
	assert.Equal(t, 0.9, v.Relevance)
}

func TestParseJSONObject_EmbeddedInProse(t *testing.T) {
	raw := `Sure! Based on the chunk, {"trust_score": 0.55, "relevance_score": 0.35} is my assessment.`

	var v verdict
	err := ParseJSONObject(raw, &v)
	require.NoError(t, err)
	assert.Equal(t, 0.55, v.Trust)
}

func TestParseJSONObject_NestedBraces(t *testing.T) {
	raw := `prefix {"outer": {"inner": 1}, "trust_score": 0.2, "relevance_score": 0.1} suffix`

	var v verdict
	err := ParseJSONObject(raw, &v)
	require.NoError(t, err)
	assert.Equal(t, 0.2, v.Trust)
}

func TestParseJSONObject_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: "   \n\t"},
		{name: "prose without json", raw: "I cannot evaluate this chunk."},
		{name: "unbalanced braces", raw: `{"trust_score": 0.5`},
		{name: "array not object", raw: `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v verdict
			assert.Error(t, ParseJSONObject(tt.raw, &v))
		})
	}
}
