package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roident.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
log_format: text
shutdown_timeout: 3s
batch_limit: 25
`), 0o600))

	t.Setenv("ROIDENT_BATCH_LIMIT", "40")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 40, cfg.BatchLimit)
	assert.Equal(t, Default().RateLimitBurst, cfg.RateLimitBurst)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shutdown_timeout: soon\n"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)

	path = filepath.Join(t.TempDir(), "format.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_format: xml\n"), 0o600))
	_, err = Load(path)
	assert.ErrorContains(t, err, "log_format")
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	cfg := Default()
	env := map[string]string{
		"ROIDENT_ADDR":           ":7000",
		"ROIDENT_RATE_LIMIT_RPS": "not-a-number",
	}
	applyEnv(&cfg, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, Default().RateLimitRPS, cfg.RateLimitRPS)
}

func TestRedisSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "redis.yaml")
	require.NoError(t, os.WriteFile(path, []byte("redis_url: redis://cache:6379/0\nredis_pool_size: 4\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis://cache:6379/0", cfg.Redis.URL)
	assert.Equal(t, 4, cfg.Redis.PoolSize)
	assert.Equal(t, Default().Redis.DialTimeout, cfg.Redis.DialTimeout)

	t.Setenv("ROIDENT_REDIS_URL", "redis://other:6379/1")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis://other:6379/1", cfg.Redis.URL)

	cfg = Default()
	cfg.Redis = RedisConfig{URL: "redis://x"}
	assert.ErrorContains(t, cfg.Validate(), "redis_pool_size")
}
