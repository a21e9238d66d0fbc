package config

import (
	"errors"
	"time"
)

// LLMConfig contains settings for the OpenAI-compatible gateway used for
// chunk evaluation, entity extraction, and embeddings.
type LLMConfig struct {
	// BaseURL is the gateway endpoint. Any OpenAI-compatible server works
	// (vLLM, Ollama's compat API, a hosted provider).
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`

	// ReasonerModel handles evaluation and extraction prompts.
	ReasonerModel string `yaml:"reasoner_model"`

	// EmbedderModel produces dense vectors for chunk content.
	EmbedderModel string `yaml:"embedder_model"`

	// Temperature for reasoning calls. Kept low: responses must be
	// parseable JSON, not prose.
	Temperature float64 `yaml:"temperature"`

	// ReasonerTimeout bounds a single evaluation or extraction call.
	ReasonerTimeout time.Duration `yaml:"reasoner_timeout"`

	// EmbedderTimeout bounds a single embedding batch call.
	EmbedderTimeout time.Duration `yaml:"embedder_timeout"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		BaseURL:         "http://localhost:11434/v1",
		ReasonerModel:   "qwen2.5:14b",
		EmbedderModel:   "nomic-embed-text",
		Temperature:     0.1,
		ReasonerTimeout: 300 * time.Second,
		EmbedderTimeout: 120 * time.Second,
	}
}

// LoadLLMConfigFromEnv returns the defaults overlaid with any LLM_*
// environment overrides.
func LoadLLMConfigFromEnv() (*LLMConfig, error) {
	cfg := DefaultLLMConfig()
	cfg.BaseURL = getEnv("LLM_BASE_URL", cfg.BaseURL)
	cfg.APIKey = getEnv("LLM_API_KEY", cfg.APIKey)
	cfg.ReasonerModel = getEnv("LLM_REASONER_MODEL", cfg.ReasonerModel)
	cfg.EmbedderModel = getEnv("LLM_EMBEDDER_MODEL", cfg.EmbedderModel)

	var err error
	if cfg.Temperature, err = getEnvFloat("LLM_TEMPERATURE", cfg.Temperature); err != nil {
		return nil, err
	}
	if cfg.ReasonerTimeout, err = getEnvDuration("LLM_REASONER_TIMEOUT", cfg.ReasonerTimeout); err != nil {
		return nil, err
	}
	if cfg.EmbedderTimeout, err = getEnvDuration("LLM_EMBEDDER_TIMEOUT", cfg.EmbedderTimeout); err != nil {
		return nil, err
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("LLM_BASE_URL is required")
	}
	return cfg, nil
}
