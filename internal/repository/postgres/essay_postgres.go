package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/fadilmartias/ielts-writer/internal/repository"
	"gorm.io/gorm"
)

type EssayRepository struct {
	db *gorm.DB
}

func NewEssayRepository(db *gorm.DB) *EssayRepository {
	return &EssayRepository{db}
}

func (r *EssayRepository) Create(ctx context.Context, insert model.InsertEssay) (*model.Essay, error) {
	now := time.Now()
	essay := model.Essay{
		Title:     insert.Title,
		Content:   insert.Content,
		Prompt:    insert.Prompt,
		WordCount: insert.WordCount,
		TimeSpent: insert.TimeSpent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(&essay).Error; err != nil {
		return nil, err
	}
	return &essay, nil
}

func (r *EssayRepository) Get(ctx context.Context, id int) (*model.Essay, error) {
	var essay model.Essay
	err := r.db.WithContext(ctx).First(&essay, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrEssayNotFound
	}
	if err != nil {
		return nil, err
	}
	return &essay, nil
}

func (r *EssayRepository) List(ctx context.Context) ([]model.Essay, error) {
	var essays []model.Essay
	err := r.db.WithContext(ctx).Order("id").Find(&essays).Error
	return essays, err
}

func (r *EssayRepository) Update(ctx context.Context, id int, updates model.EssayUpdate) (*model.Essay, error) {
	essay, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{"updated_at": time.Now()}
	if updates.Title != nil {
		fields["title"] = *updates.Title
	}
	if updates.Content != nil {
		fields["content"] = *updates.Content
	}
	if updates.Prompt != nil {
		fields["prompt"] = *updates.Prompt
	}
	if updates.WordCount != nil {
		fields["word_count"] = *updates.WordCount
	}
	if updates.TimeSpent != nil {
		fields["time_spent"] = *updates.TimeSpent
	}

	if err := r.db.WithContext(ctx).Model(essay).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *EssayRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Essay{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
