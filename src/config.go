package src

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Provider selects which generation backend the process talks to.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultOllamaModel = "llama3.2"
	defaultOllamaURL   = "http://localhost:11434"
)

// BackendConfig is the process-wide backend configuration. It is built once
// at startup from the environment and passed to every component that needs
// it; nothing re-reads the environment after that.
type BackendConfig struct {
	Provider    Provider
	Model       string
	Temperature float32
	APIKey      string
	BaseURL     string
}

// LoadConfig reads backend settings from a .env file (if present) and the
// process environment. Unset values fall back to the local provider with
// its default model.
func LoadConfig() (BackendConfig, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := BackendConfig{
		Provider:    Provider(strings.ToLower(envOr("LLM_PROVIDER", string(ProviderOllama)))),
		Temperature: 0.7,
		BaseURL:     envOr("OLLAMA_BASE_URL", defaultOllamaURL),
		APIKey:      os.Getenv("OPENAI_API_KEY"),
	}

	if raw := os.Getenv("LLM_TEMPERATURE"); raw != "" {
		t, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return BackendConfig{}, fmt.Errorf("parse LLM_TEMPERATURE: %w", err)
		}
		cfg.Temperature = float32(t)
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		cfg.Model = envOr("LLM_MODEL", defaultOpenAIModel)
		if cfg.APIKey == "" {
			return BackendConfig{}, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
	case ProviderOllama:
		cfg.Model = envOr("LLM_MODEL", defaultOllamaModel)
	default:
		return BackendConfig{}, fmt.Errorf("unknown LLM_PROVIDER %q (want openai or ollama)", cfg.Provider)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
