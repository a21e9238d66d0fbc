// Package config holds the runtime configuration for the refinery and its
// built-in defaults. Values load from the environment; a .env file is read
// by main before Load runs.
package config

import "fmt"

// Config is the umbrella configuration object used throughout the
// application.
type Config struct {
	Pipeline  *PipelineConfig
	Redis     *RedisConfig
	Blob      *BlobConfig
	LLM       *LLMConfig
	Retention *RetentionConfig
}

// Load builds the full configuration from the environment, applying
// built-in defaults for anything unset.
func Load() (*Config, error) {
	pipeline, err := LoadPipelineConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("pipeline config: %w", err)
	}
	redis, err := LoadRedisConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("redis config: %w", err)
	}
	blob, err := LoadBlobConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("blob config: %w", err)
	}
	llm, err := LoadLLMConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}
	retention, err := LoadRetentionConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("retention config: %w", err)
	}

	return &Config{
		Pipeline:  pipeline,
		Redis:     redis,
		Blob:      blob,
		LLM:       llm,
		Retention: retention,
	}, nil
}
