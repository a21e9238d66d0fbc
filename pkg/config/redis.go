package config

// RedisConfig contains connection settings for the Redis job queues.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DefaultRedisConfig returns the built-in Redis defaults.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr: "localhost:6379",
		DB:   0,
	}
}

// LoadRedisConfigFromEnv returns the defaults overlaid with any REDIS_*
// environment overrides.
func LoadRedisConfigFromEnv() (*RedisConfig, error) {
	cfg := DefaultRedisConfig()
	cfg.Addr = getEnv("REDIS_ADDR", cfg.Addr)
	cfg.Password = getEnv("REDIS_PASSWORD", cfg.Password)

	db, err := getEnvInt("REDIS_DB", cfg.DB)
	if err != nil {
		return nil, err
	}
	cfg.DB = db
	return cfg, nil
}
