package dto

import (
	"fmt"

	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/fadilmartias/ielts-writer/internal/util"
)

// CreateEssayRequest is the POST /api/essays body: essay fields minus id and
// timestamps. The store assumes pre-validated input, so all schema checks
// happen here.
type CreateEssayRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Prompt    string `json:"prompt"`
	WordCount *int   `json:"word_count"`
	TimeSpent *int   `json:"time_spent"`
}

func (r *CreateEssayRequest) Validate() (model.InsertEssay, error) {
	if r.Title == "" {
		return model.InsertEssay{}, fmt.Errorf("title is required")
	}
	if r.Content == "" {
		return model.InsertEssay{}, fmt.Errorf("content is required")
	}
	if r.Prompt == "" {
		return model.InsertEssay{}, fmt.Errorf("prompt is required")
	}
	insert := model.InsertEssay{
		Title:   r.Title,
		Content: r.Content,
		Prompt:  r.Prompt,
	}
	if r.WordCount != nil {
		if *r.WordCount < 0 {
			return model.InsertEssay{}, fmt.Errorf("word_count must not be negative")
		}
		insert.WordCount = *r.WordCount
	} else {
		insert.WordCount = util.CountWords(r.Content)
	}
	if r.TimeSpent != nil {
		if *r.TimeSpent < 0 {
			return model.InsertEssay{}, fmt.Errorf("time_spent must not be negative")
		}
		insert.TimeSpent = *r.TimeSpent
	}
	return insert, nil
}

// UpdateEssayRequest is the PATCH body; absent fields stay untouched.
type UpdateEssayRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Prompt    *string `json:"prompt"`
	WordCount *int    `json:"word_count"`
	TimeSpent *int    `json:"time_spent"`
}

func (r *UpdateEssayRequest) Validate() (model.EssayUpdate, error) {
	if r.Title != nil && *r.Title == "" {
		return model.EssayUpdate{}, fmt.Errorf("title must not be empty")
	}
	if r.Content != nil && *r.Content == "" {
		return model.EssayUpdate{}, fmt.Errorf("content must not be empty")
	}
	if r.WordCount != nil && *r.WordCount < 0 {
		return model.EssayUpdate{}, fmt.Errorf("word_count must not be negative")
	}
	if r.TimeSpent != nil && *r.TimeSpent < 0 {
		return model.EssayUpdate{}, fmt.Errorf("time_spent must not be negative")
	}
	return model.EssayUpdate{
		Title:     r.Title,
		Content:   r.Content,
		Prompt:    r.Prompt,
		WordCount: r.WordCount,
		TimeSpent: r.TimeSpent,
	}, nil
}

// ValidateEssayRequest is the POST /api/validate-essay body.
type ValidateEssayRequest struct {
	Content string `json:"content"`
	Prompt  string `json:"prompt"`
}
