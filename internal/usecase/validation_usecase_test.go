package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScorer returns a canned evaluation or error and records invocations.
type fakeScorer struct {
	evaluation *model.Evaluation
	err        error
	calls      int
}

func (f *fakeScorer) Score(ctx context.Context, essayContent, promptText string) (*model.Evaluation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.evaluation, nil
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestValidateEssayRejectsEmptyBeforeOracle(t *testing.T) {
	scorer := &fakeScorer{}
	uc := NewValidationUsecase(scorer, zerolog.Nop())

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := uc.ValidateEssay(context.Background(), content, "prompt")
		assert.ErrorIs(t, err, ErrEssayEmpty)
	}
	assert.Zero(t, scorer.calls)
}

func TestValidateEssayRejectsShortEssayBeforeOracle(t *testing.T) {
	scorer := &fakeScorer{}
	uc := NewValidationUsecase(scorer, zerolog.Nop())

	_, err := uc.ValidateEssay(context.Background(), words(100), "prompt")
	assert.ErrorIs(t, err, ErrEssayTooShort)
	assert.Zero(t, scorer.calls)

	_, err = uc.ValidateEssay(context.Background(), words(249), "prompt")
	assert.ErrorIs(t, err, ErrEssayTooShort)
	assert.Zero(t, scorer.calls)
}

func TestValidateEssayInvokesOracleFor250Words(t *testing.T) {
	want := &model.Evaluation{
		Score: 7, TaskResponse: 7, CoherenceCohesion: 7,
		LexicalResource: 7, GrammaticalRange: 7,
		Feedback: "solid", Strengths: []string{}, Improvements: []string{}, WordCount: 250,
	}
	scorer := &fakeScorer{evaluation: want}
	uc := NewValidationUsecase(scorer, zerolog.Nop())

	got, err := uc.ValidateEssay(context.Background(), words(250), "prompt")
	require.NoError(t, err)
	assert.Equal(t, 1, scorer.calls)
	// the evaluation comes back verbatim, nothing recomputed
	assert.Equal(t, want, got)
}

func TestValidateEssayPropagatesOracleFailure(t *testing.T) {
	scorer := &fakeScorer{err: errors.New("oracle unreachable")}
	uc := NewValidationUsecase(scorer, zerolog.Nop())

	_, err := uc.ValidateEssay(context.Background(), words(300), "prompt")
	assert.Error(t, err)
	assert.Equal(t, 1, scorer.calls)
}

func TestValidateEssayKeepsMismatchedOverallScore(t *testing.T) {
	// overall differs from the mean of the sub-scores; the permissive
	// behavior keeps the reported value
	want := &model.Evaluation{
		Score: 8.5, TaskResponse: 6, CoherenceCohesion: 6,
		LexicalResource: 6, GrammaticalRange: 6,
		Feedback: "x", Strengths: []string{}, Improvements: []string{}, WordCount: 260,
	}
	scorer := &fakeScorer{evaluation: want}
	uc := NewValidationUsecase(scorer, zerolog.Nop())

	got, err := uc.ValidateEssay(context.Background(), words(260), "prompt")
	require.NoError(t, err)
	assert.Equal(t, 8.5, got.Score)
}
