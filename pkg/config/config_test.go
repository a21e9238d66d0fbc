package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range keys {
			os.Unsetenv(key)
		}
	})
}

func TestDefaultPipelineConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()

	assert.Equal(t, 500, cfg.ChunkSize)
	assert.Equal(t, 50, cfg.ChunkOverlap)
	assert.Equal(t, 768, cfg.EmbeddingDim)
	assert.Equal(t, 0.3, cfg.RelevanceGate)
	assert.Equal(t, 5*time.Second, cfg.QueuePopTimeout)
	assert.Equal(t, 10*time.Minute, cfg.ReaperThreshold)
	assert.NoError(t, cfg.Validate())

	for _, stage := range []string{"crawl", "chunk", "embed", "evaluate", "extract", "resolve"} {
		assert.Greater(t, cfg.Workers[stage], 0, "stage %s must have workers", stage)
	}
}

func TestLoadPipelineConfigFromEnv_Overrides(t *testing.T) {
	clearEnv(t,
		"PIPELINE_CHUNK_SIZE", "PIPELINE_CHUNK_OVERLAP",
		"PIPELINE_RELEVANCE_GATE", "PIPELINE_WORKERS_EXTRACT",
	)

	os.Setenv("PIPELINE_CHUNK_SIZE", "1000")
	os.Setenv("PIPELINE_CHUNK_OVERLAP", "100")
	os.Setenv("PIPELINE_RELEVANCE_GATE", "0.5")
	os.Setenv("PIPELINE_WORKERS_EXTRACT", "8")

	cfg, err := LoadPipelineConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.ChunkSize)
	assert.Equal(t, 100, cfg.ChunkOverlap)
	assert.Equal(t, 0.5, cfg.RelevanceGate)
	assert.Equal(t, 8, cfg.Workers["extract"])
	// Untouched values keep defaults.
	assert.Equal(t, 768, cfg.EmbeddingDim)
}

func TestPipelineConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PipelineConfig)
		wantErr string
	}{
		{
			name:    "zero chunk size",
			mutate:  func(c *PipelineConfig) { c.ChunkSize = 0 },
			wantErr: "chunk size",
		},
		{
			name:    "overlap equals chunk size",
			mutate:  func(c *PipelineConfig) { c.ChunkOverlap = c.ChunkSize },
			wantErr: "chunk overlap",
		},
		{
			name:    "negative overlap",
			mutate:  func(c *PipelineConfig) { c.ChunkOverlap = -1 },
			wantErr: "chunk overlap",
		},
		{
			name:    "relevance gate above one",
			mutate:  func(c *PipelineConfig) { c.RelevanceGate = 1.5 },
			wantErr: "relevance gate",
		},
		{
			name:    "zero workers",
			mutate:  func(c *PipelineConfig) { c.Workers["embed"] = 0 },
			wantErr: "worker count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPipelineConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadBlobConfigFromEnv_RequiresCredentials(t *testing.T) {
	clearEnv(t, "BLOB_ENDPOINT", "BLOB_ACCESS_KEY", "BLOB_SECRET_KEY", "BLOB_BUCKET")

	_, err := LoadBlobConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BLOB_ACCESS_KEY")

	os.Setenv("BLOB_ACCESS_KEY", "minio")
	os.Setenv("BLOB_SECRET_KEY", "minio123")

	cfg, err := LoadBlobConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "documents", cfg.Bucket)
	assert.True(t, cfg.UsePathStyle)
}

func TestLoadLLMConfigFromEnv(t *testing.T) {
	clearEnv(t, "LLM_BASE_URL", "LLM_REASONER_MODEL", "LLM_TEMPERATURE")

	cfg, err := LoadLLMConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.Temperature)
	assert.Equal(t, 300*time.Second, cfg.ReasonerTimeout)
	assert.Equal(t, 120*time.Second, cfg.EmbedderTimeout)

	os.Setenv("LLM_TEMPERATURE", "bogus")
	_, err = LoadLLMConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_TEMPERATURE")
}
