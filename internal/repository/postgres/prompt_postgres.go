package postgres

import (
	"context"
	"errors"

	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/fadilmartias/ielts-writer/internal/repository"
	"gorm.io/gorm"
)

type PromptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) *PromptRepository {
	return &PromptRepository{db}
}

// SeedIfEmpty loads the default catalog once; an already-populated table is
// left alone.
func (r *PromptRepository) SeedIfEmpty(ctx context.Context, prompts []model.InsertPrompt) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Prompt{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, p := range prompts {
		if _, err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *PromptRepository) Create(ctx context.Context, insert model.InsertPrompt) (*model.Prompt, error) {
	prompt := model.Prompt{
		Category:   insert.Category,
		Title:      insert.Title,
		Content:    insert.Content,
		Difficulty: insert.Difficulty,
		TimeLimit:  insert.TimeLimit,
	}
	if err := r.db.WithContext(ctx).Create(&prompt).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *PromptRepository) Get(ctx context.Context, id int) (*model.Prompt, error) {
	var prompt model.Prompt
	err := r.db.WithContext(ctx).First(&prompt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrPromptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *PromptRepository) List(ctx context.Context) ([]model.Prompt, error) {
	var prompts []model.Prompt
	err := r.db.WithContext(ctx).Order("id").Find(&prompts).Error
	return prompts, err
}

func (r *PromptRepository) ListByCategory(ctx context.Context, category string) ([]model.Prompt, error) {
	var prompts []model.Prompt
	err := r.db.WithContext(ctx).Where("category = ?", category).Order("id").Find(&prompts).Error
	return prompts, err
}
