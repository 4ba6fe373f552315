package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

type EditorConfig struct {
	// ServerURL is the API the editor talks to.
	ServerURL string
	// TimerSeconds is the countdown used when a prompt has no time limit.
	TimerSeconds int
	// AutosaveDelay is the debounce quiet period before a draft write.
	AutosaveDelay time.Duration
	// DraftDir holds the draft slot files.
	DraftDir string
}

var (
	editorConfig *EditorConfig
	editorOnce   sync.Once
)

func LoadEditorConfig() *EditorConfig {
	editorOnce.Do(func() {
		serverURL := os.Getenv("EDITOR_SERVER_URL")
		if serverURL == "" {
			serverURL = "http://localhost:5000"
		}
		timerSeconds := 1200 // 20 minutes
		if v, err := strconv.Atoi(os.Getenv("EDITOR_TIMER_SECONDS")); err == nil && v > 0 {
			timerSeconds = v
		}
		delay := 2 * time.Second
		if v, err := strconv.Atoi(os.Getenv("EDITOR_AUTOSAVE_MS")); err == nil && v > 0 {
			delay = time.Duration(v) * time.Millisecond
		}
		draftDir := os.Getenv("EDITOR_DRAFT_DIR")
		if draftDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				home = "."
			}
			draftDir = filepath.Join(home, ".ielts-writer")
		}
		editorConfig = &EditorConfig{
			ServerURL:     serverURL,
			TimerSeconds:  timerSeconds,
			AutosaveDelay: delay,
			DraftDir:      draftDir,
		}
	})
	return editorConfig
}
