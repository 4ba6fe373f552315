package usecase

import (
	"context"

	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/fadilmartias/ielts-writer/internal/repository"
	"github.com/rs/zerolog"
)

// EssayUsecase wraps the record store behind the operations the HTTP surface
// needs. It owns no state of its own.
type EssayUsecase struct {
	essayRepo  repository.EssayRepository
	promptRepo repository.PromptRepository
	logger     zerolog.Logger
}

func NewEssayUsecase(essayRepo repository.EssayRepository, promptRepo repository.PromptRepository, logger zerolog.Logger) *EssayUsecase {
	return &EssayUsecase{essayRepo: essayRepo, promptRepo: promptRepo, logger: logger}
}

func (uc *EssayUsecase) CreateEssay(ctx context.Context, insert model.InsertEssay) (*model.Essay, error) {
	essay, err := uc.essayRepo.Create(ctx, insert)
	if err != nil {
		return nil, err
	}
	uc.logger.Info().Int("id", essay.ID).Int("word_count", essay.WordCount).Msg("essay created")
	return essay, nil
}

func (uc *EssayUsecase) GetEssay(ctx context.Context, id int) (*model.Essay, error) {
	return uc.essayRepo.Get(ctx, id)
}

func (uc *EssayUsecase) ListEssays(ctx context.Context) ([]model.Essay, error) {
	return uc.essayRepo.List(ctx)
}

func (uc *EssayUsecase) UpdateEssay(ctx context.Context, id int, updates model.EssayUpdate) (*model.Essay, error) {
	essay, err := uc.essayRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	uc.logger.Info().Int("id", essay.ID).Msg("essay updated")
	return essay, nil
}

func (uc *EssayUsecase) DeleteEssay(ctx context.Context, id int) (bool, error) {
	deleted, err := uc.essayRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		uc.logger.Info().Int("id", id).Msg("essay deleted")
	}
	return deleted, nil
}

func (uc *EssayUsecase) GetPrompt(ctx context.Context, id int) (*model.Prompt, error) {
	return uc.promptRepo.Get(ctx, id)
}

// ListPrompts returns the whole catalog, or only one category when category
// is non-empty. The match is exact and case-sensitive.
func (uc *EssayUsecase) ListPrompts(ctx context.Context, category string) ([]model.Prompt, error) {
	if category != "" {
		return uc.promptRepo.ListByCategory(ctx, category)
	}
	return uc.promptRepo.List(ctx)
}
