package config

import (
	"fmt"
	"time"
)

// PipelineConfig contains pipeline and worker pool configuration.
// These values control how jobs are popped, processed, and recovered.
type PipelineConfig struct {
	// Workers is the number of worker goroutines per stage.
	Workers map[string]int `yaml:"workers"`

	// QueuePopTimeout is the blocking-pop timeout on an empty queue.
	// Workers wake at this interval to observe shutdown.
	QueuePopTimeout time.Duration `yaml:"queue_pop_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// ReaperInterval is how often to scan for documents stuck mid-stage.
	ReaperInterval time.Duration `yaml:"reaper_interval"`

	// ReaperThreshold is how long a document can sit in a non-terminal
	// stage without progress before it is re-enqueued.
	ReaperThreshold time.Duration `yaml:"reaper_threshold"`

	// ChunkSize is the target chunk length in characters.
	ChunkSize int `yaml:"chunk_size"`

	// ChunkOverlap is the character overlap between consecutive chunks.
	ChunkOverlap int `yaml:"chunk_overlap"`

	// EmbeddingDim is the expected embedding vector dimension.
	EmbeddingDim int `yaml:"embedding_dim"`

	// RelevanceGate is the minimum relevance score (inclusive) for a chunk
	// to reach extraction and resolution.
	RelevanceGate float64 `yaml:"relevance_gate"`

	// MaxCrawlDepth limits link-following from a seed URL.
	MaxCrawlDepth int `yaml:"max_crawl_depth"`

	// FetchRetries is the retry count for transient (5xx/network) fetch
	// failures. Client errors are never retried.
	FetchRetries int `yaml:"fetch_retries"`

	// FetchRetryDelay is the base delay between fetch retries.
	FetchRetryDelay time.Duration `yaml:"fetch_retry_delay"`
}

// Stage worker pool defaults. Extraction and evaluation dominate wall time
// so they get the larger pools.
const (
	defaultCrawlWorkers    = 2
	defaultChunkWorkers    = 2
	defaultEmbedWorkers    = 4
	defaultEvaluateWorkers = 4
	defaultExtractWorkers  = 4
	defaultResolveWorkers  = 1
)

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		Workers: map[string]int{
			"crawl":    defaultCrawlWorkers,
			"chunk":    defaultChunkWorkers,
			"embed":    defaultEmbedWorkers,
			"evaluate": defaultEvaluateWorkers,
			"extract":  defaultExtractWorkers,
			"resolve":  defaultResolveWorkers,
		},
		QueuePopTimeout:         5 * time.Second,
		GracefulShutdownTimeout: 30 * time.Second,
		ReaperInterval:          5 * time.Minute,
		ReaperThreshold:         10 * time.Minute,
		ChunkSize:               500,
		ChunkOverlap:            50,
		EmbeddingDim:            768,
		RelevanceGate:           0.3,
		MaxCrawlDepth:           1,
		FetchRetries:            3,
		FetchRetryDelay:         2 * time.Second,
	}
}

// LoadPipelineConfigFromEnv returns the defaults overlaid with any
// PIPELINE_* environment overrides.
func LoadPipelineConfigFromEnv() (*PipelineConfig, error) {
	cfg := DefaultPipelineConfig()

	var err error
	if cfg.QueuePopTimeout, err = getEnvDuration("PIPELINE_QUEUE_POP_TIMEOUT", cfg.QueuePopTimeout); err != nil {
		return nil, err
	}
	if cfg.GracefulShutdownTimeout, err = getEnvDuration("PIPELINE_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout); err != nil {
		return nil, err
	}
	if cfg.ReaperInterval, err = getEnvDuration("PIPELINE_REAPER_INTERVAL", cfg.ReaperInterval); err != nil {
		return nil, err
	}
	if cfg.ReaperThreshold, err = getEnvDuration("PIPELINE_REAPER_THRESHOLD", cfg.ReaperThreshold); err != nil {
		return nil, err
	}
	if cfg.ChunkSize, err = getEnvInt("PIPELINE_CHUNK_SIZE", cfg.ChunkSize); err != nil {
		return nil, err
	}
	if cfg.ChunkOverlap, err = getEnvInt("PIPELINE_CHUNK_OVERLAP", cfg.ChunkOverlap); err != nil {
		return nil, err
	}
	if cfg.EmbeddingDim, err = getEnvInt("PIPELINE_EMBEDDING_DIM", cfg.EmbeddingDim); err != nil {
		return nil, err
	}
	if cfg.RelevanceGate, err = getEnvFloat("PIPELINE_RELEVANCE_GATE", cfg.RelevanceGate); err != nil {
		return nil, err
	}
	if cfg.MaxCrawlDepth, err = getEnvInt("PIPELINE_MAX_CRAWL_DEPTH", cfg.MaxCrawlDepth); err != nil {
		return nil, err
	}
	if cfg.FetchRetries, err = getEnvInt("PIPELINE_FETCH_RETRIES", cfg.FetchRetries); err != nil {
		return nil, err
	}
	if cfg.FetchRetryDelay, err = getEnvDuration("PIPELINE_FETCH_RETRY_DELAY", cfg.FetchRetryDelay); err != nil {
		return nil, err
	}

	for _, stage := range []string{"crawl", "chunk", "embed", "evaluate", "extract", "resolve"} {
		key := "PIPELINE_WORKERS_" + toEnvSuffix(stage)
		n, err := getEnvInt(key, cfg.Workers[stage])
		if err != nil {
			return nil, err
		}
		cfg.Workers[stage] = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that would wedge or corrupt the pipeline.
func (c *PipelineConfig) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("chunk overlap must be in [0, chunk size), got %d", c.ChunkOverlap)
	}
	if c.EmbeddingDim <= 0 {
		return fmt.Errorf("embedding dimension must be positive, got %d", c.EmbeddingDim)
	}
	if c.RelevanceGate < 0 || c.RelevanceGate > 1 {
		return fmt.Errorf("relevance gate must be in [0, 1], got %v", c.RelevanceGate)
	}
	if c.MaxCrawlDepth < 0 {
		return fmt.Errorf("max crawl depth must be non-negative, got %d", c.MaxCrawlDepth)
	}
	for stage, n := range c.Workers {
		if n <= 0 {
			return fmt.Errorf("worker count for stage %q must be positive, got %d", stage, n)
		}
	}
	return nil
}

func toEnvSuffix(stage string) string {
	out := make([]byte, len(stage))
	for i := 0; i < len(stage); i++ {
		ch := stage[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		out[i] = ch
	}
	return string(out)
}
