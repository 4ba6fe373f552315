package memory

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/fadilmartias/ielts-writer/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	var lastID int
	for i := 0; i < 5; i++ {
		essay, err := store.Create(ctx, model.InsertEssay{Title: "t", Content: "c", Prompt: "p"})
		require.NoError(t, err)
		assert.Greater(t, essay.ID, lastID)
		lastID = essay.ID
	}

	// ids are never reused, even after a delete
	deleted, err := store.Delete(ctx, lastID)
	require.NoError(t, err)
	require.True(t, deleted)

	essay, err := store.Create(ctx, model.InsertEssay{Title: "t", Content: "c", Prompt: "p"})
	require.NoError(t, err)
	assert.Greater(t, essay.ID, lastID)
}

func TestCreateStampsTimestamps(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(WithClock(func() time.Time { return now }))

	essay, err := store.Create(ctx, model.InsertEssay{Title: "t", Content: "c", Prompt: "p", WordCount: 3})
	require.NoError(t, err)
	assert.Equal(t, now, essay.CreatedAt)
	assert.Equal(t, now, essay.UpdatedAt)
	assert.Equal(t, 3, essay.WordCount)
}

func TestGetMissingEssay(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Get(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrEssayNotFound)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(WithClock(func() time.Time { return now }))

	essay, err := store.Create(ctx, model.InsertEssay{
		Title: "Original", Content: "body", Prompt: "question", WordCount: 1, TimeSpent: 30,
	})
	require.NoError(t, err)

	now = now.Add(time.Minute)
	updated, err := store.Update(ctx, essay.ID, model.EssayUpdate{
		Content:   strPtr("longer body"),
		WordCount: intPtr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "longer body", updated.Content)
	assert.Equal(t, "question", updated.Prompt)
	assert.Equal(t, 2, updated.WordCount)
	assert.Equal(t, 30, updated.TimeSpent)
	assert.Equal(t, essay.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(essay.UpdatedAt))
}

func TestUpdateMissingEssay(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Update(ctx, 7, model.EssayUpdate{Title: strPtr("x")})
	assert.ErrorIs(t, err, repository.ErrEssayNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	essay, err := store.Create(ctx, model.InsertEssay{Title: "t", Content: "c", Prompt: "p"})
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, essay.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = store.Get(ctx, essay.ID)
	assert.ErrorIs(t, err, repository.ErrEssayNotFound)

	// deleting again, or deleting an id that never existed, reports false
	deleted, err = store.Delete(ctx, essay.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = store.Delete(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListReturnsAllEssaysInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	for _, title := range []string{"a", "b", "c"} {
		_, err := store.Create(ctx, model.InsertEssay{Title: title, Content: "c", Prompt: "p"})
		require.NoError(t, err)
	}

	essays, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, essays, 3)
	assert.Equal(t, "a", essays[0].Title)
	assert.Equal(t, "c", essays[2].Title)
}

func TestPromptCounterIsSeparateNamespace(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	essay, err := store.Create(ctx, model.InsertEssay{Title: "t", Content: "c", Prompt: "p"})
	require.NoError(t, err)
	prompt, err := store.CreatePrompt(ctx, model.InsertPrompt{Category: "Education", Title: "x", Content: "y", Difficulty: model.DifficultyBeginner, TimeLimit: 40})
	require.NoError(t, err)

	assert.Equal(t, 1, essay.ID)
	assert.Equal(t, 1, prompt.ID)
}

func TestListPromptsByCategory(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.CreatePrompt(ctx, model.InsertPrompt{Category: "Education", Title: "first", Difficulty: model.DifficultyBeginner, TimeLimit: 40})
	require.NoError(t, err)
	_, err = store.CreatePrompt(ctx, model.InsertPrompt{Category: "Environment", Title: "other", Difficulty: model.DifficultyIntermediate, TimeLimit: 40})
	require.NoError(t, err)
	_, err = store.CreatePrompt(ctx, model.InsertPrompt{Category: "Education", Title: "second", Difficulty: model.DifficultyAdvanced, TimeLimit: 40})
	require.NoError(t, err)

	prompts, err := store.ListPromptsByCategory(ctx, "Education")
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	assert.Equal(t, "first", prompts[0].Title)
	assert.Equal(t, "second", prompts[1].Title)

	// exact, case-sensitive match
	none, err := store.ListPromptsByCategory(ctx, "education")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSeedLoadsDefaultCatalog(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Seed(ctx, model.SeedPrompts()))

	prompts, err := store.ListPrompts(ctx)
	require.NoError(t, err)
	require.Len(t, prompts, 5)
	assert.Equal(t, "Technology & Society", prompts[0].Category)
	assert.Equal(t, 40, prompts[0].TimeLimit)

	prompt, err := store.GetPrompt(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Education", prompt.Category)

	_, err = store.GetPrompt(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrPromptNotFound)
}
