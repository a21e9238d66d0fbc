package config

import "errors"

// BlobConfig contains settings for the S3-compatible blob store holding
// raw document text.
type BlobConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`

	// UsePathStyle must stay on for MinIO and most self-hosted gateways.
	UsePathStyle bool `yaml:"use_path_style"`
}

// DefaultBlobConfig returns the built-in blob store defaults.
func DefaultBlobConfig() *BlobConfig {
	return &BlobConfig{
		Endpoint:     "http://localhost:9000",
		Region:       "us-east-1",
		Bucket:       "documents",
		UsePathStyle: true,
	}
}

// LoadBlobConfigFromEnv returns the defaults overlaid with any BLOB_*
// environment overrides.
func LoadBlobConfigFromEnv() (*BlobConfig, error) {
	cfg := DefaultBlobConfig()
	cfg.Endpoint = getEnv("BLOB_ENDPOINT", cfg.Endpoint)
	cfg.Region = getEnv("BLOB_REGION", cfg.Region)
	cfg.AccessKey = getEnv("BLOB_ACCESS_KEY", cfg.AccessKey)
	cfg.SecretKey = getEnv("BLOB_SECRET_KEY", cfg.SecretKey)
	cfg.Bucket = getEnv("BLOB_BUCKET", cfg.Bucket)

	usePathStyle, err := getEnvBool("BLOB_USE_PATH_STYLE", cfg.UsePathStyle)
	if err != nil {
		return nil, err
	}
	cfg.UsePathStyle = usePathStyle

	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("BLOB_ACCESS_KEY and BLOB_SECRET_KEY are required")
	}
	return cfg, nil
}
