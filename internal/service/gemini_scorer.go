package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/ielts-writer/internal/config"
	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// GeminiScorer is the alternative oracle backend, selected with
// SCORER_BACKEND=gemini.
type GeminiScorer struct {
	client *genai.Client
	model  string
	logger zerolog.Logger
}

func NewGeminiScorer(ctx context.Context, cfg *config.GeminiConfig, logger zerolog.Logger) (*GeminiScorer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiScorer{client: client, model: cfg.Model, logger: logger}, nil
}

func (s *GeminiScorer) Score(ctx context.Context, essayContent, promptText string) (*model.Evaluation, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(0.3)),
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(examinerInstructions(promptText), genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(essayContent), genConfig)
	if err != nil {
		return nil, fmt.Errorf("scoring request failed: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty candidate", ErrInvalidOracleResponse)
	}

	text := result.Text()
	evaluation, err := model.ParseEvaluation(text)
	if err != nil {
		s.logger.Error().Err(err).Str("content", text).Msg("oracle answer failed validation")
		return nil, err
	}
	return evaluation, nil
}
