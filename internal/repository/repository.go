package repository

import (
	"context"
	"errors"

	"github.com/fadilmartias/ielts-writer/internal/model"
)

var (
	ErrEssayNotFound  = errors.New("essay not found")
	ErrPromptNotFound = errors.New("prompt not found")
)

// EssayRepository owns essay records. Input is assumed pre-validated by the
// DTO layer; implementations perform no defensive validation. Identifiers are
// assigned on create and never reused within a process lifetime.
type EssayRepository interface {
	Create(ctx context.Context, essay model.InsertEssay) (*model.Essay, error)
	Get(ctx context.Context, id int) (*model.Essay, error)
	List(ctx context.Context) ([]model.Essay, error)
	// Update merges the non-nil fields of updates onto the stored record and
	// refreshes updated_at. Returns ErrEssayNotFound for an absent id.
	Update(ctx context.Context, id int, updates model.EssayUpdate) (*model.Essay, error)
	// Delete reports whether a record was actually removed.
	Delete(ctx context.Context, id int) (bool, error)
}

// PromptRepository is read-only after seeding; prompts have no update or
// delete operations.
type PromptRepository interface {
	Create(ctx context.Context, prompt model.InsertPrompt) (*model.Prompt, error)
	Get(ctx context.Context, id int) (*model.Prompt, error)
	List(ctx context.Context) ([]model.Prompt, error)
	// ListByCategory matches the category exactly, case-sensitive, and
	// returns prompts in creation order.
	ListByCategory(ctx context.Context, category string) ([]model.Prompt, error)
}
