package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fadilmartias/ielts-writer/internal/client"
	"github.com/fadilmartias/ielts-writer/internal/config"
	"github.com/fadilmartias/ielts-writer/internal/editor"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadEditorConfig()

	store, err := editor.NewFileDraftStore(cfg.DraftDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open draft dir: %v\n", err)
		os.Exit(1)
	}
	draft, err := store.Load(editor.DraftKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load draft: %v\n", err)
		os.Exit(1)
	}

	api := client.New(cfg.ServerURL)

	p := tea.NewProgram(initialModel(cfg, api, store, draft), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "editor exited with error: %v\n", err)
		os.Exit(1)
	}
}
