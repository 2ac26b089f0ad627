package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "storefront", cfg.DBName)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	assert.False(t, cfg.TracingEnabled)
	assert.True(t, cfg.IsDevelopment())
	assert.Nil(t, cfg.Brokers())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.TracingEnabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Brokers())

	db := cfg.Database()
	assert.Equal(t, 50, db.MaxOpenConns)
	assert.Equal(t, 90*time.Second, db.ConnMaxLifetime)

	tc := cfg.Tracing("1.2.3")
	assert.Equal(t, "storefront", tc.ServiceName)
	assert.Equal(t, "1.2.3", tc.ServiceVersion)
	assert.True(t, tc.Enabled)
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_NAME=shop_from_file\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")
	t.Cleanup(func() { os.Unsetenv("DB_NAME") })

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "shop_from_file", cfg.DBName)
	assert.Equal(t, "warn", cfg.LogLevel, "process environment wins over the file")
}
