package editor

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DraftKey is the single slot the current draft lives in, read back on
// startup.
const DraftKey = "ielts-essay-content"

// DraftStore persists draft text under a slot key.
type DraftStore interface {
	Save(key, content string) error
	Load(key string) (string, error)
}

// FileDraftStore keeps each slot in a file under dir, the editor's analogue
// of browser local storage.
type FileDraftStore struct {
	dir string
}

func NewFileDraftStore(dir string) (*FileDraftStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileDraftStore{dir: dir}, nil
}

func (s *FileDraftStore) Save(key, content string) error {
	return os.WriteFile(filepath.Join(s.dir, key+".txt"), []byte(content), 0o644)
}

// Load returns an empty string for a slot that was never written.
func (s *FileDraftStore) Load(key string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, key+".txt"))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// AutoSaver debounces draft writes: every edit resets the pending timer, so
// only the most recent content after a quiet period reaches the store.
type AutoSaver struct {
	store DraftStore
	key   string
	delay time.Duration

	mu        sync.Mutex
	pending   *time.Timer
	content   string
	lastSaved time.Time
	onSaved   func(time.Time)
}

// NewAutoSaver creates a saver for one slot. onSaved, if non-nil, is called
// after each successful write with the save time; it runs on the debounce
// timer's goroutine.
func NewAutoSaver(store DraftStore, key string, delay time.Duration, onSaved func(time.Time)) *AutoSaver {
	return &AutoSaver{store: store, key: key, delay: delay, onSaved: onSaved}
}

// Notify records the latest content and restarts the quiet-period timer.
// Whitespace-only drafts are not persisted.
func (a *AutoSaver) Notify(content string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.content = content
	if a.pending != nil {
		a.pending.Stop()
	}
	a.pending = time.AfterFunc(a.delay, a.flushPending)
}

func (a *AutoSaver) flushPending() {
	a.mu.Lock()
	content := a.content
	a.pending = nil
	a.mu.Unlock()

	a.save(content)
}

// Flush writes the current content immediately, for explicit saves.
func (a *AutoSaver) Flush() {
	a.mu.Lock()
	if a.pending != nil {
		a.pending.Stop()
		a.pending = nil
	}
	content := a.content
	a.mu.Unlock()

	a.save(content)
}

func (a *AutoSaver) save(content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	if err := a.store.Save(a.key, content); err != nil {
		return
	}
	now := time.Now()
	a.mu.Lock()
	a.lastSaved = now
	a.mu.Unlock()
	if a.onSaved != nil {
		a.onSaved(now)
	}
}

// Stop cancels any pending write without flushing it.
func (a *AutoSaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending != nil {
		a.pending.Stop()
		a.pending = nil
	}
}

// LastSaved reports when the slot was last written, zero if never.
func (a *AutoSaver) LastSaved() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastSaved
}
