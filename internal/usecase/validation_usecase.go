package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/fadilmartias/ielts-writer/internal/service"
	"github.com/fadilmartias/ielts-writer/internal/util"
	"github.com/rs/zerolog"
)

// MinEssayWords is the IELTS Writing Task 2 minimum. Shorter essays are
// rejected before any oracle call.
const MinEssayWords = 250

var (
	ErrEssayEmpty    = errors.New("please write your essay before submitting for validation")
	ErrEssayTooShort = errors.New("your essay should be at least 250 words for IELTS Task 2")
)

// ValidationUsecase runs the scoring contract: enforce the caller-facing
// preconditions, delegate judgment to the oracle, and hand back the validated
// evaluation untouched.
type ValidationUsecase struct {
	scorer service.Scorer
	logger zerolog.Logger
}

func NewValidationUsecase(scorer service.Scorer, logger zerolog.Logger) *ValidationUsecase {
	return &ValidationUsecase{scorer: scorer, logger: logger}
}

func (uc *ValidationUsecase) ValidateEssay(ctx context.Context, content, prompt string) (*model.Evaluation, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEssayEmpty
	}
	if util.CountWords(content) < MinEssayWords {
		return nil, ErrEssayTooShort
	}

	evaluation, err := uc.scorer.Score(ctx, content, prompt)
	if err != nil {
		return nil, err
	}

	// The overall score is trusted as reported. A mismatch against the mean
	// of the sub-scores is only logged, never corrected.
	if mean := evaluation.SubScoreMean(); math.Abs(evaluation.Score-mean) > 0.25 {
		uc.logger.Warn().
			Float64("score", evaluation.Score).
			Float64("sub_score_mean", mean).
			Msg("overall band score deviates from mean of criteria scores")
	}

	return evaluation, nil
}
