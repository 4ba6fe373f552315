package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validEvaluationJSON = `{
	"score": 7.0,
	"taskResponse": 7,
	"coherenceCohesion": 7.5,
	"lexicalResource": 6.5,
	"grammaticalRange": 7,
	"feedback": "A well organized essay with minor lexical slips.",
	"strengths": ["clear position", "good paragraphing"],
	"improvements": ["wider vocabulary range"],
	"wordCount": 274
}`

func TestParseEvaluation(t *testing.T) {
	ev, err := ParseEvaluation(validEvaluationJSON)
	require.NoError(t, err)

	assert.Equal(t, 7.0, ev.Score)
	assert.Equal(t, 7.0, ev.TaskResponse)
	assert.Equal(t, 7.5, ev.CoherenceCohesion)
	assert.Equal(t, 6.5, ev.LexicalResource)
	assert.Equal(t, 7.0, ev.GrammaticalRange)
	assert.Equal(t, "A well organized essay with minor lexical slips.", ev.Feedback)
	assert.Equal(t, []string{"clear position", "good paragraphing"}, ev.Strengths)
	assert.Equal(t, []string{"wider vocabulary range"}, ev.Improvements)
	assert.Equal(t, 274, ev.WordCount)
}

func TestParseEvaluationEmptyLists(t *testing.T) {
	ev, err := ParseEvaluation(`{
		"score": 9, "taskResponse": 9, "coherenceCohesion": 9,
		"lexicalResource": 9, "grammaticalRange": 9,
		"feedback": "Flawless.", "strengths": [], "improvements": [], "wordCount": 300
	}`)
	require.NoError(t, err)
	assert.Empty(t, ev.Strengths)
	assert.Empty(t, ev.Improvements)
}

func TestParseEvaluationRejectsBadScores(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{
			name:  "above range",
			raw:   `{"score": 9.5, "taskResponse": 7, "coherenceCohesion": 7, "lexicalResource": 7, "grammaticalRange": 7, "feedback": "x", "strengths": [], "improvements": [], "wordCount": 250}`,
			field: "score",
		},
		{
			name:  "below range",
			raw:   `{"score": 7, "taskResponse": -1, "coherenceCohesion": 7, "lexicalResource": 7, "grammaticalRange": 7, "feedback": "x", "strengths": [], "improvements": [], "wordCount": 250}`,
			field: "taskResponse",
		},
		{
			name:  "string score",
			raw:   `{"score": 7, "taskResponse": 7, "coherenceCohesion": "7", "lexicalResource": 7, "grammaticalRange": 7, "feedback": "x", "strengths": [], "improvements": [], "wordCount": 250}`,
			field: "coherenceCohesion",
		},
		{
			name:  "missing score",
			raw:   `{"score": 7, "taskResponse": 7, "coherenceCohesion": 7, "lexicalResource": 7, "feedback": "x", "strengths": [], "improvements": [], "wordCount": 250}`,
			field: "grammaticalRange",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEvaluation(tt.raw)
			require.Error(t, err)

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.field, schemaErr.Field)
		})
	}
}

func TestParseEvaluationRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "the model refused to answer"},
		{"not an object", `[1, 2, 3]`},
		{"missing feedback", `{"score": 7, "taskResponse": 7, "coherenceCohesion": 7, "lexicalResource": 7, "grammaticalRange": 7, "strengths": [], "improvements": [], "wordCount": 250}`},
		{"strengths not an array", `{"score": 7, "taskResponse": 7, "coherenceCohesion": 7, "lexicalResource": 7, "grammaticalRange": 7, "feedback": "x", "strengths": "good", "improvements": [], "wordCount": 250}`},
		{"improvements with non-string item", `{"score": 7, "taskResponse": 7, "coherenceCohesion": 7, "lexicalResource": 7, "grammaticalRange": 7, "feedback": "x", "strengths": [], "improvements": [42], "wordCount": 250}`},
		{"word count not a number", `{"score": 7, "taskResponse": 7, "coherenceCohesion": 7, "lexicalResource": 7, "grammaticalRange": 7, "feedback": "x", "strengths": [], "improvements": [], "wordCount": "many"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEvaluation(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestSubScoreMean(t *testing.T) {
	ev := &Evaluation{TaskResponse: 6, CoherenceCohesion: 7, LexicalResource: 8, GrammaticalRange: 7}
	assert.InDelta(t, 7.0, ev.SubScoreMean(), 1e-9)
}
