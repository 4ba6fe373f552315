package config

import (
	"os"
	"sync"
)

type ScorerConfig struct {
	// Backend selects the oracle client: "openai" (default) or "gemini".
	Backend string
}

var (
	scorerConfig *ScorerConfig
	scorerOnce   sync.Once
)

func LoadScorerConfig() *ScorerConfig {
	scorerOnce.Do(func() {
		backend := os.Getenv("SCORER_BACKEND")
		if backend == "" {
			backend = "openai"
		}
		scorerConfig = &ScorerConfig{Backend: backend}
	})
	return scorerConfig
}
