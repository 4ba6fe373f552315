package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/ielts-writer/internal/model"
)

// ErrInvalidOracleResponse marks a model answer that could not be parsed as
// the expected JSON structure.
var ErrInvalidOracleResponse = errors.New("invalid oracle response")

// Scorer turns essay text plus its originating prompt into a validated
// evaluation by delegating judgment to an external model. Implementations
// guarantee the caller never observes a malformed result: any transport,
// parse or schema failure comes back as an error, with no partial results.
type Scorer interface {
	Score(ctx context.Context, essayContent, promptText string) (*model.Evaluation, error)
}

// examinerInstructions is the fixed system message sent with every scoring
// request. The response shape must match model.ParseEvaluation.
func examinerInstructions(promptText string) string {
	return fmt.Sprintf(`You are an expert IELTS examiner. Analyze the following essay and provide a detailed evaluation based on the four IELTS Writing Task 2 criteria:

1. Task Response (0-9): How well the essay addresses the task
2. Coherence and Cohesion (0-9): Organization and linking of ideas
3. Lexical Resource (0-9): Vocabulary range and accuracy
4. Grammatical Range and Accuracy (0-9): Grammar variety and correctness

Provide scores for each criterion and an overall band score (average of the four). Also provide specific feedback, strengths, and areas for improvement.

Essay Prompt: "%s"

Respond in JSON format with this structure:
{
  "score": number (overall band score 0-9),
  "taskResponse": number (0-9),
  "coherenceCohesion": number (0-9),
  "lexicalResource": number (0-9),
  "grammaticalRange": number (0-9),
  "feedback": "detailed feedback about the essay",
  "strengths": ["strength 1", "strength 2", ...],
  "improvements": ["improvement 1", "improvement 2", ...],
  "wordCount": number
}`, promptText)
}
