package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/fadilmartias/ielts-writer/internal/repository"
)

// Store keeps essays and prompts in process memory. It is volatile by
// design: a restart discards all essays and reseeds the prompt catalog.
// Essay and prompt counters are separate namespaces and only ever increase.
type Store struct {
	mu           sync.Mutex
	essays       map[int]model.Essay
	prompts      map[int]model.Prompt
	nextEssayID  int
	nextPromptID int
	now          func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		essays:       make(map[int]model.Essay),
		prompts:      make(map[int]model.Prompt),
		nextEssayID:  1,
		nextPromptID: 1,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed loads the given prompts into the store, in order.
func (s *Store) Seed(ctx context.Context, prompts []model.InsertPrompt) error {
	for _, p := range prompts {
		if _, err := s.CreatePrompt(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Create(ctx context.Context, insert model.InsertEssay) (*model.Essay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextEssayID
	s.nextEssayID++

	now := s.now()
	essay := model.Essay{
		ID:        id,
		Title:     insert.Title,
		Content:   insert.Content,
		Prompt:    insert.Prompt,
		WordCount: insert.WordCount,
		TimeSpent: insert.TimeSpent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.essays[id] = essay
	return &essay, nil
}

func (s *Store) Get(ctx context.Context, id int) (*model.Essay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	essay, ok := s.essays[id]
	if !ok {
		return nil, repository.ErrEssayNotFound
	}
	return &essay, nil
}

func (s *Store) List(ctx context.Context) ([]model.Essay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	essays := make([]model.Essay, 0, len(s.essays))
	for _, e := range s.essays {
		essays = append(essays, e)
	}
	sort.Slice(essays, func(i, j int) bool { return essays[i].ID < essays[j].ID })
	return essays, nil
}

func (s *Store) Update(ctx context.Context, id int, updates model.EssayUpdate) (*model.Essay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	essay, ok := s.essays[id]
	if !ok {
		return nil, repository.ErrEssayNotFound
	}

	if updates.Title != nil {
		essay.Title = *updates.Title
	}
	if updates.Content != nil {
		essay.Content = *updates.Content
	}
	if updates.Prompt != nil {
		essay.Prompt = *updates.Prompt
	}
	if updates.WordCount != nil {
		essay.WordCount = *updates.WordCount
	}
	if updates.TimeSpent != nil {
		essay.TimeSpent = *updates.TimeSpent
	}
	essay.UpdatedAt = s.now()

	s.essays[id] = essay
	return &essay, nil
}

func (s *Store) Delete(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.essays[id]; !ok {
		return false, nil
	}
	delete(s.essays, id)
	return true, nil
}

func (s *Store) CreatePrompt(ctx context.Context, insert model.InsertPrompt) (*model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextPromptID
	s.nextPromptID++

	prompt := model.Prompt{
		ID:         id,
		Category:   insert.Category,
		Title:      insert.Title,
		Content:    insert.Content,
		Difficulty: insert.Difficulty,
		TimeLimit:  insert.TimeLimit,
	}
	s.prompts[id] = prompt
	return &prompt, nil
}

func (s *Store) GetPrompt(ctx context.Context, id int) (*model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompt, ok := s.prompts[id]
	if !ok {
		return nil, repository.ErrPromptNotFound
	}
	return &prompt, nil
}

func (s *Store) ListPrompts(ctx context.Context) ([]model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedPrompts(func(model.Prompt) bool { return true }), nil
}

func (s *Store) ListPromptsByCategory(ctx context.Context, category string) ([]model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedPrompts(func(p model.Prompt) bool { return p.Category == category }), nil
}

func (s *Store) sortedPrompts(keep func(model.Prompt) bool) []model.Prompt {
	prompts := make([]model.Prompt, 0, len(s.prompts))
	for _, p := range s.prompts {
		if keep(p) {
			prompts = append(prompts, p)
		}
	}
	sort.Slice(prompts, func(i, j int) bool { return prompts[i].ID < prompts[j].ID })
	return prompts
}

// Essays and Prompts expose the store through the repository interfaces.
// Both views share the same underlying maps.
func (s *Store) Essays() repository.EssayRepository { return s }

func (s *Store) Prompts() repository.PromptRepository { return promptRepoAdapter{s} }

type promptRepoAdapter struct{ store *Store }

func (a promptRepoAdapter) Create(ctx context.Context, p model.InsertPrompt) (*model.Prompt, error) {
	return a.store.CreatePrompt(ctx, p)
}

func (a promptRepoAdapter) Get(ctx context.Context, id int) (*model.Prompt, error) {
	return a.store.GetPrompt(ctx, id)
}

func (a promptRepoAdapter) List(ctx context.Context) ([]model.Prompt, error) {
	return a.store.ListPrompts(ctx)
}

func (a promptRepoAdapter) ListByCategory(ctx context.Context, category string) ([]model.Prompt, error) {
	return a.store.ListPromptsByCategory(ctx, category)
}
