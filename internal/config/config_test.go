package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	cfg := LoadFrom("")

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, 10, cfg.AuthRateLimit)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadSize)
	assert.False(t, cfg.UploadsEnabled())
}

func TestLoadFrom_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("IDEAHUB_TEST_PORT_UNUSED=1\nJWT_EXPIRY=2h\n"), 0o600))
	t.Setenv("JWT_EXPIRY", "")
	os.Unsetenv("JWT_EXPIRY")
	t.Cleanup(func() { os.Unsetenv("IDEAHUB_TEST_PORT_UNUSED") })

	cfg := LoadFrom(path)

	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
}

func TestLoadFrom_BadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "7 days")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
	t.Setenv("MINIO_USE_SSL", "maybe")

	cfg := LoadFrom("")

	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.False(t, cfg.MinIOUseSSL)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "5433", DBSSLMode: "require"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5433 sslmode=require TimeZone=UTC", cfg.DSN())
}
