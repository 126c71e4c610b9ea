package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ADDR", "DB_DSN", "DB_MAX_CONNS", "DB_QUERY_TIMEOUT", "RATE_LIMIT_RPS", "ENABLE_HSTS", "TRUSTED_PROXIES"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, DefaultDSN, cfg.DatabaseDSN)
	assert.Equal(t, int32(4), cfg.DBMaxConns)
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.False(t, cfg.EnableHSTS)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":8081")
	t.Setenv("DB_QUERY_TIMEOUT", "0s")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("ENABLE_HSTS", "true")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, ,10.0.0.2 ")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.Zero(t, cfg.QueryTimeout)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.True(t, cfg.EnableHSTS)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BOOKSHELF_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("BOOKSHELF_TEST_KEY", "fallback"))

	t.Setenv("BOOKSHELF_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("BOOKSHELF_TEST_KEY", "fallback"))
}

func TestLoad_InvalidValuesAreReportedTogether(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "many")
	t.Setenv("DB_QUERY_TIMEOUT", "soon")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
	assert.Contains(t, err.Error(), "DB_QUERY_TIMEOUT")
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")

	if err := os.WriteFile(p, []byte("DB_DSN=from_file\nAPP_ADDR=:9999\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("DB_DSN", "from_env")
	t.Setenv("APP_ADDR", "")
	os.Unsetenv("APP_ADDR")

	t.Chdir(tmp)

	LoadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("DB_DSN"))
	assert.Equal(t, ":9999", os.Getenv("APP_ADDR"))
}
