package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogFormat       string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Per client IP token bucket; RateLimitRPS <= 0 disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	// BatchLimit caps the items accepted by one batch request.
	BatchLimit       int
	BatchConcurrency int

	// Redis, when its URL is set, shares rate limit counters between instances.
	Redis RedisConfig
}

// RedisConfig configures the optional Redis connection.
type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// yamlServer is the on-disk shape of Server. Zero values mean "keep default".
type yamlServer struct {
	Addr             string  `yaml:"addr"`
	LogFormat        string  `yaml:"log_format"`
	LogLevel         string  `yaml:"log_level"`
	ShutdownTimeout  string  `yaml:"shutdown_timeout"`
	RateLimitRPS     float64 `yaml:"rate_limit_rps"`
	RateLimitBurst   int     `yaml:"rate_limit_burst"`
	BatchLimit       int     `yaml:"batch_limit"`
	BatchConcurrency int     `yaml:"batch_concurrency"`
	RedisURL         string  `yaml:"redis_url"`
	RedisPoolSize    int     `yaml:"redis_pool_size"`
}

// Default returns the configuration used when nothing is set.
func Default() Server {
	return Server{
		Addr:             ":8080",
		LogFormat:        "json",
		LogLevel:         "info",
		ShutdownTimeout:  10 * time.Second,
		RateLimitRPS:     50,
		RateLimitBurst:   100,
		BatchLimit:       100,
		BatchConcurrency: 8,
		Redis: RedisConfig{
			PoolSize:     10,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Default()
	applyEnv(&cfg, os.LookupEnv)
	return cfg
}

// Load reads an optional YAML file over the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Server, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Server{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := applyYAML(&cfg, b); err != nil {
			return Server{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	applyEnv(&cfg, os.LookupEnv)
	return cfg, cfg.Validate()
}

// Validate rejects settings the server cannot run with.
func (s Server) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("config: addr is required")
	}
	if s.LogFormat != "json" && s.LogFormat != "text" {
		return fmt.Errorf("config: log_format must be json or text, got %q", s.LogFormat)
	}
	if s.BatchLimit <= 0 {
		return fmt.Errorf("config: batch_limit must be positive")
	}
	if s.BatchConcurrency <= 0 {
		return fmt.Errorf("config: batch_concurrency must be positive")
	}
	if s.RateLimitRPS > 0 && s.RateLimitBurst <= 0 {
		return fmt.Errorf("config: rate_limit_burst must be positive when rate limiting is enabled")
	}
	if s.Redis.URL != "" && s.Redis.PoolSize <= 0 {
		return fmt.Errorf("config: redis_pool_size must be positive")
	}
	return nil
}

func applyYAML(cfg *Server, b []byte) error {
	var dto yamlServer
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return err
	}
	if dto.Addr != "" {
		cfg.Addr = dto.Addr
	}
	if dto.LogFormat != "" {
		cfg.LogFormat = dto.LogFormat
	}
	if dto.LogLevel != "" {
		cfg.LogLevel = dto.LogLevel
	}
	if dto.ShutdownTimeout != "" {
		d, err := time.ParseDuration(dto.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("shutdown_timeout: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	if dto.RateLimitRPS != 0 {
		cfg.RateLimitRPS = dto.RateLimitRPS
	}
	if dto.RateLimitBurst != 0 {
		cfg.RateLimitBurst = dto.RateLimitBurst
	}
	if dto.BatchLimit != 0 {
		cfg.BatchLimit = dto.BatchLimit
	}
	if dto.BatchConcurrency != 0 {
		cfg.BatchConcurrency = dto.BatchConcurrency
	}
	if dto.RedisURL != "" {
		cfg.Redis.URL = dto.RedisURL
	}
	if dto.RedisPoolSize != 0 {
		cfg.Redis.PoolSize = dto.RedisPoolSize
	}
	return nil
}

// applyEnv ignores values that fail to parse and keeps the previous setting.
func applyEnv(cfg *Server, lookup func(string) (string, bool)) {
	if v, ok := lookup("ROIDENT_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("ROIDENT_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup("ROIDENT_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("ROIDENT_SHUTDOWN_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ShutdownTimeout = d
		}
	}
	if v, ok := lookup("ROIDENT_RATE_LIMIT_RPS"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v, ok := lookup("ROIDENT_RATE_LIMIT_BURST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		}
	}
	if v, ok := lookup("ROIDENT_BATCH_LIMIT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BatchLimit = n
		}
	}
	if v, ok := lookup("ROIDENT_BATCH_CONCURRENCY"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BatchConcurrency = n
		}
	}
	if v, ok := lookup("ROIDENT_REDIS_URL"); ok {
		cfg.Redis.URL = v
	}
}
