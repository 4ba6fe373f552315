package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/ielts-writer/internal/config"
	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// OpenAIScorer scores essays through an OpenAI-compatible chat-completions
// endpoint. Temperature is biased low so near-identical essays get stable
// scores, and the response is requested as a JSON object rather than free
// text.
type OpenAIScorer struct {
	client  *resty.Client
	apiKey  string
	model   string
	baseURL string
	logger  zerolog.Logger
}

func NewOpenAIScorer(cfg *config.OpenAIConfig, logger zerolog.Logger) (*OpenAIScorer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}
	return &OpenAIScorer{
		client:  resty.New(),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		logger:  logger,
	}, nil
}

func (s *OpenAIScorer) Score(ctx context.Context, essayContent, promptText string) (*model.Evaluation, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "system", "content": examinerInstructions(promptText)},
				{"role": "user", "content": essayContent},
			},
			"response_format": map[string]string{"type": "json_object"},
			"temperature":     0.3,
		}).
		Post(s.baseURL + "/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("scoring request failed: %w", err)
	}
	if resp.IsError() {
		s.logger.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("scoring request rejected")
		return nil, fmt.Errorf("scoring request failed: status %d", resp.StatusCode())
	}

	content := gjson.Get(resp.String(), "choices.0.message.content")
	if !content.Exists() || content.String() == "" {
		return nil, fmt.Errorf("%w: no content in completion", ErrInvalidOracleResponse)
	}

	evaluation, err := model.ParseEvaluation(content.String())
	if err != nil {
		s.logger.Error().Err(err).Str("content", content.String()).Msg("oracle answer failed validation")
		return nil, err
	}
	return evaluation, nil
}
