package editor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	mu     sync.Mutex
	writes []string
	saved  chan struct{}
}

func newRecordingStore() *recordingStore {
	return &recordingStore{saved: make(chan struct{}, 16)}
}

func (s *recordingStore) Save(key, content string) error {
	s.mu.Lock()
	s.writes = append(s.writes, content)
	s.mu.Unlock()
	s.saved <- struct{}{}
	return nil
}

func (s *recordingStore) Load(key string) (string, error) { return "", nil }

func (s *recordingStore) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.writes...)
}

func waitForSave(t *testing.T, s *recordingStore) {
	t.Helper()
	select {
	case <-s.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for save")
	}
}

func TestAutoSaverDebouncesRapidEdits(t *testing.T) {
	store := newRecordingStore()
	saver := NewAutoSaver(store, DraftKey, 30*time.Millisecond, nil)
	defer saver.Stop()

	saver.Notify("draft v1")
	saver.Notify("draft v2")
	saver.Notify("draft v3")

	waitForSave(t, store)
	writes := store.snapshot()
	require.Len(t, writes, 1)
	assert.Equal(t, "draft v3", writes[0])
}

func TestAutoSaverSavesAgainAfterQuietPeriod(t *testing.T) {
	store := newRecordingStore()
	saver := NewAutoSaver(store, DraftKey, 20*time.Millisecond, nil)
	defer saver.Stop()

	saver.Notify("first")
	waitForSave(t, store)
	saver.Notify("second")
	waitForSave(t, store)

	assert.Equal(t, []string{"first", "second"}, store.snapshot())
}

func TestAutoSaverFlushWritesImmediately(t *testing.T) {
	store := newRecordingStore()
	saver := NewAutoSaver(store, DraftKey, time.Hour, nil)
	defer saver.Stop()

	saver.Notify("content")
	saver.Flush()

	waitForSave(t, store)
	assert.Equal(t, []string{"content"}, store.snapshot())
	assert.False(t, saver.LastSaved().IsZero())
}

func TestAutoSaverSkipsWhitespaceOnlyDrafts(t *testing.T) {
	store := newRecordingStore()
	saver := NewAutoSaver(store, DraftKey, time.Hour, nil)
	defer saver.Stop()

	saver.Notify("   \n ")
	saver.Flush()

	assert.Empty(t, store.snapshot())
	assert.True(t, saver.LastSaved().IsZero())
}

func TestAutoSaverNotifiesCallback(t *testing.T) {
	store := newRecordingStore()
	got := make(chan time.Time, 1)
	saver := NewAutoSaver(store, DraftKey, time.Hour, func(at time.Time) { got <- at })
	defer saver.Stop()

	saver.Notify("content")
	saver.Flush()

	select {
	case at := <-got:
		assert.False(t, at.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
}

func TestFileDraftStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileDraftStore(dir)
	require.NoError(t, err)

	// missing slot reads back empty
	content, err := store.Load(DraftKey)
	require.NoError(t, err)
	assert.Equal(t, "", content)

	require.NoError(t, store.Save(DraftKey, "my essay draft"))
	content, err = store.Load(DraftKey)
	require.NoError(t, err)
	assert.Equal(t, "my essay draft", content)
}
