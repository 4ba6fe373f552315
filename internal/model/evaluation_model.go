package model

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Evaluation is the structured result of one scoring request. It is returned
// to the caller verbatim and never persisted.
type Evaluation struct {
	Score             float64  `json:"score"` // overall band score 0-9
	TaskResponse      float64  `json:"task_response"`
	CoherenceCohesion float64  `json:"coherence_cohesion"`
	LexicalResource   float64  `json:"lexical_resource"`
	GrammaticalRange  float64  `json:"grammatical_range"`
	Feedback          string   `json:"feedback"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	WordCount         int      `json:"word_count"`
}

// SchemaError reports which field of the oracle payload violated the
// evaluation schema.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema validation failed: field %q %s", e.Field, e.Reason)
}

// ParseEvaluation parses the oracle's JSON answer and enforces the evaluation
// invariants: all five scores numeric within [0,9], feedback present,
// strengths/improvements arrays of strings. Out-of-range values are rejected,
// never clamped.
func ParseEvaluation(raw string) (*Evaluation, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("invalid oracle response: not valid JSON")
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("invalid oracle response: not a JSON object")
	}

	ev := &Evaluation{}

	scores := []struct {
		field string
		dst   *float64
	}{
		{"score", &ev.Score},
		{"taskResponse", &ev.TaskResponse},
		{"coherenceCohesion", &ev.CoherenceCohesion},
		{"lexicalResource", &ev.LexicalResource},
		{"grammaticalRange", &ev.GrammaticalRange},
	}
	for _, s := range scores {
		v := doc.Get(s.field)
		if !v.Exists() {
			return nil, &SchemaError{Field: s.field, Reason: "is required"}
		}
		if v.Type != gjson.Number {
			return nil, &SchemaError{Field: s.field, Reason: "must be a number"}
		}
		n := v.Float()
		if n < 0 || n > 9 {
			return nil, &SchemaError{Field: s.field, Reason: "must be within [0, 9]"}
		}
		*s.dst = n
	}

	feedback := doc.Get("feedback")
	if !feedback.Exists() || feedback.Type != gjson.String {
		return nil, &SchemaError{Field: "feedback", Reason: "must be a string"}
	}
	ev.Feedback = feedback.String()

	lists := []struct {
		field string
		dst   *[]string
	}{
		{"strengths", &ev.Strengths},
		{"improvements", &ev.Improvements},
	}
	for _, l := range lists {
		v := doc.Get(l.field)
		if !v.Exists() || !v.IsArray() {
			return nil, &SchemaError{Field: l.field, Reason: "must be an array of strings"}
		}
		items := []string{}
		for _, item := range v.Array() {
			if item.Type != gjson.String {
				return nil, &SchemaError{Field: l.field, Reason: "must be an array of strings"}
			}
			items = append(items, item.String())
		}
		*l.dst = items
	}

	wc := doc.Get("wordCount")
	if !wc.Exists() || wc.Type != gjson.Number {
		return nil, &SchemaError{Field: "wordCount", Reason: "must be a number"}
	}
	ev.WordCount = int(wc.Int())

	return ev, nil
}

// SubScoreMean is the arithmetic mean of the four criterion scores. The
// overall score reported by the oracle is trusted as-is; callers may compare
// against this to log a mismatch.
func (e *Evaluation) SubScoreMean() float64 {
	return (e.TaskResponse + e.CoherenceCohesion + e.LexicalResource + e.GrammaticalRange) / 4
}
