package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// ProcessingLogTTL is the maximum age of processing log rows before
	// deletion. The logs are append-only and grow without bound otherwise.
	ProcessingLogTTL time.Duration `yaml:"processing_log_ttl"`

	// ResolutionLogTTL is the maximum age of resolution log rows before
	// deletion. Zero disables resolution log cleanup.
	ResolutionLogTTL time.Duration `yaml:"resolution_log_ttl"`

	// CrawlRequestTTL is the maximum age of settled (completed or failed)
	// crawl requests before deletion.
	CrawlRequestTTL time.Duration `yaml:"crawl_request_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ProcessingLogTTL: 30 * 24 * time.Hour,
		ResolutionLogTTL: 90 * 24 * time.Hour,
		CrawlRequestTTL:  7 * 24 * time.Hour,
		CleanupInterval:  12 * time.Hour,
	}
}

// LoadRetentionConfigFromEnv returns the defaults overlaid with any
// RETENTION_* environment overrides.
func LoadRetentionConfigFromEnv() (*RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	var err error
	if cfg.ProcessingLogTTL, err = getEnvDuration("RETENTION_PROCESSING_LOG_TTL", cfg.ProcessingLogTTL); err != nil {
		return nil, err
	}
	if cfg.ResolutionLogTTL, err = getEnvDuration("RETENTION_RESOLUTION_LOG_TTL", cfg.ResolutionLogTTL); err != nil {
		return nil, err
	}
	if cfg.CrawlRequestTTL, err = getEnvDuration("RETENTION_CRAWL_REQUEST_TTL", cfg.CrawlRequestTTL); err != nil {
		return nil, err
	}
	if cfg.CleanupInterval, err = getEnvDuration("RETENTION_CLEANUP_INTERVAL", cfg.CleanupInterval); err != nil {
		return nil, err
	}
	return cfg, nil
}
